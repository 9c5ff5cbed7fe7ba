package httpapi

import (
	"net/http"
	"strings"
	"time"

	"vms-gateway/internal/archive"
)

func (d *Deps) handleListCameras(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	src := d.Svc.Source(credentialFrom(r))
	cameras, err := src.ListCameras(r.Context())
	if err != nil {
		d.Metrics.UpstreamErrorsTotal.WithLabelValues("cameras").Inc()
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeOK(w, map[string]any{"cameras": cameras})
}

// handleCameraByID serves /api/v1/cameras/{id}/snapshot and
// /api/v1/cameras/{id}/sequences.
func (d *Deps) handleCameraByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/cameras/")
	parts := strings.SplitN(rest, "/", 2)
	if parts[0] == "" || len(parts) < 2 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	cameraID := parts[0]
	src := d.Svc.Source(credentialFrom(r))

	switch parts[1] {
	case "snapshot":
		img, ct, err := src.Snapshot(r.Context(), cameraID)
		if err != nil {
			d.Metrics.UpstreamErrorsTotal.WithLabelValues("snapshot").Inc()
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		w.Header().Set("Content-Type", ct)
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(img)
	case "sequences":
		day, err := parseDay(r.URL.Query().Get("date"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		seqs, err := src.ListSequences(r.Context(), cameraID, day)
		if err != nil {
			d.Metrics.UpstreamErrorsTotal.WithLabelValues("sequences").Inc()
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		// Timeline fractions ride along so the dashboard renders the
		// clickable 24h bar without re-doing the math.
		spans := make([]archive.TimelineSpan, len(seqs))
		for i, s := range seqs {
			spans[i] = archive.Timeline(s)
		}
		writeOK(w, map[string]any{"sequences": seqs, "timeline": spans})
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (d *Deps) handleListEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var from, to time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "from must be RFC3339")
			return
		}
		from = t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "to must be RFC3339")
			return
		}
		to = t
	}
	src := d.Svc.Source(credentialFrom(r))
	events, err := src.ListEvents(r.Context(), from, to)
	if err != nil {
		d.Metrics.UpstreamErrorsTotal.WithLabelValues("events").Inc()
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeOK(w, map[string]any{"events": events})
}

func parseDay(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}
