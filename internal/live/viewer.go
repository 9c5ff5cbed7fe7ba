// Package live establishes one real-time inbound stream per camera via
// offer/answer/ICE signaling against the VMS, modeled as a small state
// machine instead of raw connection callbacks.
package live

import (
	"context"
	"fmt"
	"sync"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog"

	"vms-gateway/internal/domain"
)

// Signaler exchanges a local SDP offer for the VMS's answer and ICE
// candidates. Implemented by the upstream client and by the fixture source.
type Signaler interface {
	ExchangeOffer(ctx context.Context, cameraID string, offerSDP string) (domain.OfferAnswer, error)
}

// Viewer negotiates and holds exactly one peer connection for one camera.
type Viewer struct {
	ID       string
	CameraID string

	stun string
	log  zerolog.Logger

	// OnTrack receives the first remote media track. OnState fires on every
	// transition. Set before Connect; not synchronized afterwards.
	OnTrack func(track *webrtc.TrackRemote)
	OnState func(s State, errMsg string)

	mu     sync.Mutex
	state  State
	errMsg string
	pc     *webrtc.PeerConnection
}

func NewViewer(id, cameraID, stunServer string, log zerolog.Logger) *Viewer {
	return &Viewer{
		ID:       id,
		CameraID: cameraID,
		stun:     stunServer,
		log:      log.With().Str("viewer", id).Str("camera", cameraID).Logger(),
		state:    StateConnecting,
	}
}

// Connect performs the whole setup: peer connection with the configured STUN
// server, recvonly video+audio transceivers, local offer, signaling exchange,
// remote answer, then each ICE candidate in turn. Any failure transitions to
// error with a human-readable message; the viewer is then dead.
func (v *Viewer) Connect(ctx context.Context, sig Signaler) error {
	pc, err := webrtc.NewPeerConnection(webrtc.Configuration{
		ICEServers: []webrtc.ICEServer{{URLs: []string{v.stun}}},
	})
	if err != nil {
		return v.fail(evSetupFailed, fmt.Errorf("create peer connection: %w", err))
	}
	v.mu.Lock()
	v.pc = pc
	v.mu.Unlock()

	for _, kind := range []webrtc.RTPCodecType{webrtc.RTPCodecTypeVideo, webrtc.RTPCodecTypeAudio} {
		if _, err := pc.AddTransceiverFromKind(kind, webrtc.RTPTransceiverInit{
			Direction: webrtc.RTPTransceiverDirectionRecvonly,
		}); err != nil {
			return v.fail(evSetupFailed, fmt.Errorf("add %s transceiver: %w", kind, err))
		}
	}

	pc.OnTrack(func(track *webrtc.TrackRemote, _ *webrtc.RTPReceiver) {
		v.dispatch(evTrack, "")
		if v.OnTrack != nil {
			v.OnTrack(track)
		}
	})
	pc.OnICEConnectionStateChange(func(s webrtc.ICEConnectionState) {
		switch s {
		case webrtc.ICEConnectionStateFailed:
			v.dispatch(evICEFailed, "ice connection failed")
		case webrtc.ICEConnectionStateDisconnected:
			v.dispatch(evICEDisconnected, "ice connection lost")
		case webrtc.ICEConnectionStateClosed:
			v.dispatch(evICEClosed, "ice connection closed")
		}
	})

	offer, err := pc.CreateOffer(nil)
	if err != nil {
		return v.fail(evSetupFailed, fmt.Errorf("create offer: %w", err))
	}
	if err := pc.SetLocalDescription(offer); err != nil {
		return v.fail(evSetupFailed, fmt.Errorf("set local description: %w", err))
	}

	answer, err := sig.ExchangeOffer(ctx, v.CameraID, offer.SDP)
	if err != nil {
		return v.fail(evSignalingFailed, fmt.Errorf("signaling exchange: %w", err))
	}
	if err := pc.SetRemoteDescription(webrtc.SessionDescription{
		Type: webrtc.SDPTypeAnswer,
		SDP:  answer.SDP,
	}); err != nil {
		return v.fail(evSetupFailed, fmt.Errorf("set remote description: %w", err))
	}
	for _, c := range answer.ICE {
		if err := pc.AddICECandidate(webrtc.ICECandidateInit{
			Candidate:     c.Candidate,
			SDPMid:        c.SDPMid,
			SDPMLineIndex: c.SDPMLineIndex,
		}); err != nil {
			return v.fail(evSetupFailed, fmt.Errorf("add ice candidate: %w", err))
		}
	}
	return nil
}

// Disconnect closes the peer connection and releases its resources. This is
// the viewer's only cleanup contract; it is safe to call twice and safe to
// call on a viewer that never connected.
func (v *Viewer) Disconnect() {
	v.mu.Lock()
	pc := v.pc
	v.pc = nil
	v.mu.Unlock()
	if pc != nil {
		if err := pc.Close(); err != nil {
			v.log.Debug().Err(err).Msg("peer connection close")
		}
	}
}

// State returns the current state and, in error, its message.
func (v *Viewer) State() (State, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state, v.errMsg
}

func (v *Viewer) dispatch(ev event, msg string) {
	v.mu.Lock()
	next, ok := transitions[v.state][ev]
	if !ok {
		v.mu.Unlock()
		return
	}
	v.state = next
	if next == StateError && v.errMsg == "" {
		v.errMsg = msg
	}
	errMsg := v.errMsg
	// error is terminal: release the peer connection right here instead of
	// waiting for the owner's Disconnect, which stays a safe no-op after.
	var pc *webrtc.PeerConnection
	if next == StateError {
		pc = v.pc
		v.pc = nil
	}
	v.mu.Unlock()

	if pc != nil {
		if err := pc.Close(); err != nil {
			v.log.Debug().Err(err).Msg("peer connection close")
		}
	}
	if next == StateError {
		v.log.Warn().Str("event", string(ev)).Str("error", errMsg).Msg("live viewer failed")
	} else {
		v.log.Debug().Str("event", string(ev)).Str("state", string(next)).Msg("live viewer transition")
	}
	if v.OnState != nil {
		v.OnState(next, errMsg)
	}
}

func (v *Viewer) fail(ev event, err error) error {
	v.dispatch(ev, err.Error())
	return err
}
