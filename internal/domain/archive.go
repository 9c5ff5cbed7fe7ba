package domain

import "time"

// Direction of archive playback, chosen once at session start.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

func (d Direction) Valid() bool {
	return d == DirectionForward || d == DirectionBackward
}

// ArchiveSequence is a contiguous recorded interval for one camera.
// Immutable once fetched; an empty list for a day is valid, not an error.
type ArchiveSequence struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Reason string    `json:"reason"`
}

// PlayerState is the lifecycle state of a gateway-side archive player.
type PlayerState string

const (
	PlayerPaused  PlayerState = "paused"
	PlayerPlaying PlayerState = "playing"
	PlayerClosed  PlayerState = "closed"
)

// PlayerInfo is the wire representation of an archive player.
type PlayerInfo struct {
	ID          string      `json:"id"`
	CameraID    string      `json:"cameraId"`
	SessionID   string      `json:"sessionId"`
	Direction   Direction   `json:"direction"`
	Speed       float64     `json:"speed"`
	State       PlayerState `json:"state"`
	StartedAt   time.Time   `json:"startedAt"`
	LastShownAt *time.Time  `json:"lastShownAt,omitempty"`
}
