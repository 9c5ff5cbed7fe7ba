package domain

import "time"

// Event is one access-control or analytics log entry from the VMS.
type Event struct {
	ID          string    `json:"id"`
	Ts          time.Time `json:"ts"`
	Type        string    `json:"type"`
	CameraID    string    `json:"cameraId,omitempty"`
	Description string    `json:"description"`
}
