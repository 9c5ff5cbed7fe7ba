package httpapi

import (
	"encoding/json"
	"net/http"
)

type settingsDTO struct {
	FramePollIntervalMs int `json:"framePollIntervalMs"`
}

// handleSettings reads or updates runtime settings. Only the frame polling
// cadence is adjustable; changes apply to players opened afterwards.
func (d *Deps) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeOK(w, map[string]any{"settings": settingsDTO{FramePollIntervalMs: d.framePollIntervalMs()}})
	case http.MethodPost:
		var in settingsDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if in.FramePollIntervalMs < 100 || in.FramePollIntervalMs > 60000 {
			writeError(w, http.StatusBadRequest, "framePollIntervalMs must be in [100, 60000]")
			return
		}
		d.framePollMs.Store(int64(in.FramePollIntervalMs))
		writeOK(w, map[string]any{"settings": settingsDTO{FramePollIntervalMs: d.framePollIntervalMs()}})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
