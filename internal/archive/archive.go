// Package archive drives time-indexed playback of recorded video for one
// camera against a remote VMS session API. A Player owns at most one remote
// session at a time; re-positioning always releases the previous session
// before requesting a new one.
package archive

import (
	"context"
	"errors"
	"time"

	"vms-gateway/internal/domain"
)

var (
	// ErrNoRecordings means the requested day has no archive sequences.
	// Callers must not attempt to start a session in that case.
	ErrNoRecordings = errors.New("no recordings for the requested day")
	// ErrBadSpeed rejects non-positive playback rates. Direction is fixed
	// at open; speed only scales forward progress per frame.
	ErrBadSpeed = errors.New("speed must be positive")
	// ErrClosed is returned by operations on a closed player.
	ErrClosed = errors.New("player is closed")
)

// SessionAPI is the slice of the upstream surface a Player needs. Both the
// live VMS client and the fixture source satisfy it.
type SessionAPI interface {
	ListSequences(ctx context.Context, cameraID string, day time.Time) ([]domain.ArchiveSequence, error)
	StartSession(ctx context.Context, cameraID string, at time.Time, dir domain.Direction) (string, error)
	StopSession(ctx context.Context, sessionID string) error
	SetSpeed(ctx context.Context, sessionID string, speed float64) error
	Frame(ctx context.Context, sessionID string, speed float64) ([]byte, error)
	CurrentTime(ctx context.Context, sessionID string) (time.Time, error)
}
