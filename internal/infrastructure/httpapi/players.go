package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vms-gateway/internal/archive"
	"vms-gateway/internal/domain"
	"vms-gateway/pkg/shared/id"
)

type createPlayerRequest struct {
	CameraID  string           `json:"cameraId"`
	Time      time.Time        `json:"time"`
	Direction domain.Direction `json:"direction"`
}

func (d *Deps) handlePlayers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		players := d.Svc.Players.List()
		infos := make([]domain.PlayerInfo, len(players))
		for i, p := range players {
			infos[i] = p.Info()
		}
		writeOK(w, map[string]any{"players": infos})
	case http.MethodPost:
		d.handleCreatePlayer(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (d *Deps) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var in createPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.CameraID == "" || in.Time.IsZero() {
		writeError(w, http.StatusBadRequest, "cameraId and time are required")
		return
	}
	if in.Direction != "" && !in.Direction.Valid() {
		writeError(w, http.StatusBadRequest, "direction must be forward or backward")
		return
	}

	src := d.Svc.Source(credentialFrom(r))
	p, err := archive.Open(r.Context(), archive.Options{
		ID:        id.New(),
		Source:    src,
		CameraID:  in.CameraID,
		At:        in.Time,
		Direction: in.Direction,
		Interval:  d.framePollInterval(),
		Logger:    *d.Logger,
	})
	if err != nil {
		if errors.Is(err, archive.ErrNoRecordings) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		d.Metrics.UpstreamErrorsTotal.WithLabelValues("archive_open").Inc()
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if err := d.Svc.Players.Put(p); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	d.Metrics.ActivePlayers.Inc()
	d.Monitor.Broadcast(MonitorEvent{Type: "player_opened", ID: p.ID(), Ref: p.CameraID()})
	writeOK(w, map[string]any{"player": p.Info()})
}

// handlePlayerByID serves /api/v1/players/{id} and its sub-operations:
// play, pause, speed, seek, frame, time.
func (d *Deps) handlePlayerByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/players/")
	parts := strings.SplitN(rest, "/", 2)
	playerID := parts[0]
	op := ""
	if len(parts) == 2 {
		op = parts[1]
	}
	if playerID == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	p, ok := d.Svc.Players.Get(playerID)
	if !ok {
		// Stopping something already gone is fine; everything else is 404.
		if r.Method == http.MethodDelete && op == "" {
			writeOK(w, map[string]any{"stopped": true})
			return
		}
		writeError(w, http.StatusNotFound, "unknown player")
		return
	}

	switch {
	case op == "" && r.Method == http.MethodGet:
		writeOK(w, map[string]any{"player": p.Info()})
	case op == "" && r.Method == http.MethodDelete:
		d.stopPlayer(r, p)
		writeOK(w, map[string]any{"stopped": true})
	case op == "play" && r.Method == http.MethodPost:
		err := p.Play(func(frame []byte, shownAt time.Time) {
			d.Metrics.FramesTotal.WithLabelValues("ok").Inc()
			ref := ""
			if !shownAt.IsZero() {
				ref = shownAt.UTC().Format(time.RFC3339)
			}
			d.Monitor.Broadcast(MonitorEvent{Type: "frame_ready", ID: p.ID(), Ref: ref})
		})
		if err != nil {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeOK(w, map[string]any{"player": p.Info()})
	case op == "pause" && r.Method == http.MethodPost:
		if err := p.Pause(r.Context()); err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeOK(w, map[string]any{"player": p.Info()})
	case op == "speed" && r.Method == http.MethodPost:
		var in struct {
			Speed float64 `json:"speed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := p.SetSpeed(r.Context(), in.Speed); err != nil {
			if errors.Is(err, archive.ErrBadSpeed) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			d.Metrics.UpstreamErrorsTotal.WithLabelValues("speed").Inc()
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeOK(w, map[string]any{"player": p.Info()})
	case op == "seek" && r.Method == http.MethodPost:
		var in struct {
			Time time.Time `json:"time"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Time.IsZero() {
			writeError(w, http.StatusBadRequest, "time is required")
			return
		}
		if err := p.Seek(r.Context(), in.Time); err != nil {
			d.Metrics.UpstreamErrorsTotal.WithLabelValues("seek").Inc()
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeOK(w, map[string]any{"player": p.Info()})
	case op == "frame" && r.Method == http.MethodGet:
		d.servePlayerFrame(w, r, p)
	case op == "time" && r.Method == http.MethodGet:
		shownAt, err := p.ShownAt(r.Context())
		if err != nil {
			d.Metrics.UpstreamErrorsTotal.WithLabelValues("time").Inc()
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeOK(w, map[string]any{"time": shownAt.UTC().Format(time.RFC3339)})
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (d *Deps) servePlayerFrame(w http.ResponseWriter, r *http.Request, p *archive.Player) {
	var (
		frame []byte
		err   error
	)
	if q := r.URL.Query().Get("speed"); q != "" {
		speed, derr := archive.DecodeSpeed(q)
		if derr != nil {
			writeError(w, http.StatusBadRequest, "speed must be numeric")
			return
		}
		frame, _, err = p.FetchFrame(r.Context(), speed)
	} else {
		frame, _, err = p.Frame(r.Context())
	}
	if err != nil {
		if errors.Is(err, archive.ErrBadSpeed) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		d.Metrics.FramesTotal.WithLabelValues("error").Inc()
		d.Metrics.UpstreamErrorsTotal.WithLabelValues("frame").Inc()
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(frame)
}

func (d *Deps) stopPlayer(r *http.Request, p *archive.Player) {
	if _, ok := d.Svc.Players.Delete(p.ID()); !ok {
		return
	}
	if err := p.Close(r.Context()); err != nil {
		d.Logger.Warn().Err(err).Str("player", p.ID()).Msg("player close failed")
	}
	d.Metrics.ActivePlayers.Dec()
	d.Monitor.Broadcast(MonitorEvent{Type: "player_stopped", ID: p.ID()})
}
