// Package fixtures is the static data source used when a request carries no
// VMS credentials. It lets the dashboard run in demo mode against canned
// cameras, events and archive data without a live backend.
package fixtures

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vms-gateway/internal/domain"
	"vms-gateway/pkg/shared/id"
)

type session struct {
	cameraID string
	current  time.Time
}

// Source serves canned payloads and simulates the archive session clock so
// demo playback actually advances.
type Source struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func New() *Source {
	return &Source{sessions: make(map[string]*session)}
}

func (s *Source) ListCameras(ctx context.Context) ([]domain.Camera, error) {
	return append([]domain.Camera(nil), cameras...), nil
}

func (s *Source) Snapshot(ctx context.Context, cameraID string) ([]byte, string, error) {
	if !knownCamera(cameraID) {
		return nil, "", fmt.Errorf("snapshot: unknown camera %q", cameraID)
	}
	return frameJPEG, "image/jpeg", nil
}

func (s *Source) ListEvents(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if !from.IsZero() && e.Ts.Before(from) {
			continue
		}
		if !to.IsZero() && e.Ts.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// ListSequences fabricates two recorded intervals on the requested day:
// 06:00-07:30 and 12:15-13:45.
func (s *Source) ListSequences(ctx context.Context, cameraID string, day time.Time) ([]domain.ArchiveSequence, error) {
	if !knownCamera(cameraID) {
		return nil, fmt.Errorf("list sequences: unknown camera %q", cameraID)
	}
	d := day.UTC()
	at := func(h, m int) time.Time {
		return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, time.UTC)
	}
	return []domain.ArchiveSequence{
		{Start: at(6, 0), End: at(7, 30), Reason: "recording"},
		{Start: at(12, 15), End: at(13, 45), Reason: "motion"},
	}, nil
}

func (s *Source) StartSession(ctx context.Context, cameraID string, at time.Time, dir domain.Direction) (string, error) {
	if !knownCamera(cameraID) {
		return "", fmt.Errorf("start session: unknown camera %q", cameraID)
	}
	sid := id.New()
	s.mu.Lock()
	s.sessions[sid] = &session{cameraID: cameraID, current: at.UTC()}
	s.mu.Unlock()
	return sid, nil
}

// StopSession tolerates unknown ids: already-stopped is not an error.
func (s *Source) StopSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *Source) SetSpeed(ctx context.Context, sessionID string, speed float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return fmt.Errorf("set speed: unknown session %q", sessionID)
	}
	return nil
}

// Frame returns the canned JPEG and advances the session clock by one
// speed-scaled second, mirroring how far the real server would decode per
// polled frame. Speed 0 leaves the clock alone.
func (s *Source) Frame(ctx context.Context, sessionID string, speed float64) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("frame: unknown session %q", sessionID)
	}
	if speed > 0 {
		sess.current = sess.current.Add(time.Duration(speed * float64(time.Second)))
	}
	return frameJPEG, nil
}

func (s *Source) CurrentTime(ctx context.Context, sessionID string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return time.Time{}, fmt.Errorf("current time: unknown session %q", sessionID)
	}
	return sess.current, nil
}

// ExchangeOffer returns a canned answer. A demo dashboard cannot negotiate
// real media with it; the UI shows its placeholder instead.
func (s *Source) ExchangeOffer(ctx context.Context, cameraID string, offerSDP string) (domain.OfferAnswer, error) {
	if !knownCamera(cameraID) {
		return domain.OfferAnswer{}, fmt.Errorf("offer exchange: unknown camera %q", cameraID)
	}
	return domain.OfferAnswer{SDP: answerSDP}, nil
}

func knownCamera(id string) bool {
	for _, c := range cameras {
		if c.ID == id {
			return true
		}
	}
	return false
}
