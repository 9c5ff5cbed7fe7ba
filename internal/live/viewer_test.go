package live

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"vms-gateway/internal/domain"
)

type stubSignaler struct {
	err    error
	answer domain.OfferAnswer
	offers []string
}

func (s *stubSignaler) ExchangeOffer(ctx context.Context, cameraID string, offerSDP string) (domain.OfferAnswer, error) {
	s.offers = append(s.offers, offerSDP)
	if s.err != nil {
		return domain.OfferAnswer{}, s.err
	}
	return s.answer, nil
}

func newTestViewer() *Viewer {
	return NewViewer("probe-1", "cam-entrance", "stun:stun.l.google.com:19302", zerolog.Nop())
}

func TestConnectSignalingFailureIsTerminal(t *testing.T) {
	v := newTestViewer()
	defer v.Disconnect()

	sig := &stubSignaler{err: errors.New("upstream returned 500 Internal Server Error")}
	if err := v.Connect(context.Background(), sig); err == nil {
		t.Fatalf("expected connect error")
	}
	state, msg := v.State()
	if state != StateError {
		t.Fatalf("state = %v, want error (never left hanging in connecting)", state)
	}
	if msg == "" {
		t.Fatalf("error state must carry a message")
	}
	if len(sig.offers) != 1 || sig.offers[0] == "" {
		t.Fatalf("a non-empty local offer must reach the signaler: %q", sig.offers)
	}
}

func TestTerminalErrorReleasesPeerConnection(t *testing.T) {
	v := newTestViewer()

	sig := &stubSignaler{err: errors.New("upstream returned 500 Internal Server Error")}
	if err := v.Connect(context.Background(), sig); err == nil {
		t.Fatalf("expected connect error")
	}
	v.mu.Lock()
	pc := v.pc
	v.mu.Unlock()
	if pc != nil {
		t.Fatalf("viewer in terminal error still holds the peer connection")
	}
	// cleanup contract unchanged
	v.Disconnect()
}

func TestDisconnectIdempotent(t *testing.T) {
	v := newTestViewer()
	// never connected
	v.Disconnect()
	v.Disconnect()

	sig := &stubSignaler{err: errors.New("boom")}
	_ = v.Connect(context.Background(), sig)
	v.Disconnect()
	v.Disconnect()
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		name   string
		events []event
		want   State
	}{
		{"track connects", []event{evTrack}, StateConnected},
		{"ice failure kills connecting", []event{evICEFailed}, StateError},
		{"disconnect treated like failure", []event{evICEDisconnected}, StateError},
		{"closed treated like failure", []event{evICEClosed}, StateError},
		{"failure after connect", []event{evTrack, evICEFailed}, StateError},
		{"error is absorbing", []event{evSignalingFailed, evTrack}, StateError},
		{"duplicate track ignored", []event{evTrack, evTrack}, StateConnected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := newTestViewer()
			for _, ev := range tc.events {
				v.dispatch(ev, "event "+string(ev))
			}
			state, _ := v.State()
			if state != tc.want {
				t.Fatalf("state = %v, want %v", state, tc.want)
			}
		})
	}
}

func TestErrorKeepsFirstMessage(t *testing.T) {
	v := newTestViewer()
	v.dispatch(evSignalingFailed, "first failure")
	v.dispatch(evICEFailed, "second failure")
	_, msg := v.State()
	if msg != "first failure" {
		t.Fatalf("msg = %q, want the first failure preserved", msg)
	}
}

func TestOnStateCallback(t *testing.T) {
	v := newTestViewer()
	var states []State
	v.OnState = func(s State, _ string) { states = append(states, s) }
	v.dispatch(evTrack, "")
	v.dispatch(evICEClosed, "closed")
	if len(states) != 2 || states[0] != StateConnected || states[1] != StateError {
		t.Fatalf("states = %v", states)
	}
}
