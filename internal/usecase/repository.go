package usecase

import (
	"context"
	"time"

	"vms-gateway/internal/archive"
	"vms-gateway/internal/domain"
	"vms-gateway/internal/live"
)

// DataSource is everything the gateway reads from a VMS, live or canned.
// It subsumes archive.SessionAPI and live.Signaler.
type DataSource interface {
	ListCameras(ctx context.Context) ([]domain.Camera, error)
	Snapshot(ctx context.Context, cameraID string) ([]byte, string, error)
	ListEvents(ctx context.Context, from, to time.Time) ([]domain.Event, error)

	ListSequences(ctx context.Context, cameraID string, day time.Time) ([]domain.ArchiveSequence, error)
	StartSession(ctx context.Context, cameraID string, at time.Time, dir domain.Direction) (string, error)
	StopSession(ctx context.Context, sessionID string) error
	SetSpeed(ctx context.Context, sessionID string, speed float64) error
	Frame(ctx context.Context, sessionID string, speed float64) ([]byte, error)
	CurrentTime(ctx context.Context, sessionID string) (time.Time, error)

	ExchangeOffer(ctx context.Context, cameraID string, offerSDP string) (domain.OfferAnswer, error)
}

// PlayerRepository holds the open archive players.
type PlayerRepository interface {
	Put(p *archive.Player) error
	Get(id string) (*archive.Player, bool)
	Delete(id string) (*archive.Player, bool)
	List() []*archive.Player
	CloseAll(ctx context.Context)
}

// ViewerRepository holds the gateway-side live stream probes.
type ViewerRepository interface {
	PutViewer(v *live.Viewer)
	GetViewer(id string) (*live.Viewer, bool)
	DeleteViewer(id string) (*live.Viewer, bool)
	DisconnectAll()
}
