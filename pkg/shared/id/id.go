package id

import "github.com/google/uuid"

// New returns a random identifier for players, viewers and cache-busting tokens.
func New() string {
	return uuid.NewString()
}
