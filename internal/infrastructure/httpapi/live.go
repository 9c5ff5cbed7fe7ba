package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"vms-gateway/internal/live"
	"vms-gateway/pkg/shared/id"
)

// handleLive serves:
//
//	POST   /api/v1/live/{cameraId}/offer  - signaling pass-through
//	POST   /api/v1/live/{cameraId}/probe  - gateway-side stream health probe
//	GET    /api/v1/live/probes/{id}       - probe state
//	DELETE /api/v1/live/probes/{id}       - disconnect probe
func (d *Deps) handleLive(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/live/")
	if pid, ok := strings.CutPrefix(rest, "probes/"); ok {
		d.handleProbeByID(w, r, pid)
		return
	}
	parts := strings.SplitN(rest, "/", 2)
	if parts[0] == "" || len(parts) < 2 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	cameraID := parts[0]
	switch parts[1] {
	case "offer":
		d.handleOfferExchange(w, r, cameraID)
	case "probe":
		d.handleStartProbe(w, r, cameraID)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

// handleOfferExchange forwards the dashboard's SDP offer to the VMS and
// relays the answer plus ICE candidates.
func (d *Deps) handleOfferExchange(w http.ResponseWriter, r *http.Request, cameraID string) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		SDP string `json:"sdp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.SDP == "" {
		writeError(w, http.StatusBadRequest, "sdp is required")
		return
	}
	src := d.Svc.Source(credentialFrom(r))
	answer, err := src.ExchangeOffer(r.Context(), cameraID, in.SDP)
	if err != nil {
		d.Metrics.UpstreamErrorsTotal.WithLabelValues("signaling").Inc()
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeOK(w, map[string]any{"sdp": answer.SDP, "ice": answer.ICE})
}

// handleStartProbe negotiates a gateway-side peer connection for the camera
// and reports how far it got. Useful for checking stream health without a
// browser in the loop. The probe's state machine is terminal on error; the
// caller deletes and re-creates a probe to retry.
func (d *Deps) handleStartProbe(w http.ResponseWriter, r *http.Request, cameraID string) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	src := d.Svc.Source(credentialFrom(r))
	v := live.NewViewer(id.New(), cameraID, d.Cfg.STUNServer, *d.Logger)
	v.OnState = func(s live.State, errMsg string) {
		d.Metrics.LiveStateTotal.WithLabelValues(string(s)).Inc()
		d.Monitor.Broadcast(MonitorEvent{Type: "live_state", ID: v.ID, Ref: string(s)})
	}
	d.Svc.Viewers.PutViewer(v)

	if err := v.Connect(r.Context(), src); err != nil {
		d.Metrics.UpstreamErrorsTotal.WithLabelValues("signaling").Inc()
	}
	state, errMsg := v.State()
	writeOK(w, map[string]any{"probe": probeDTO(v.ID, cameraID, state, errMsg)})
}

func (d *Deps) handleProbeByID(w http.ResponseWriter, r *http.Request, probeID string) {
	switch r.Method {
	case http.MethodGet:
		v, ok := d.Svc.Viewers.GetViewer(probeID)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown probe")
			return
		}
		state, errMsg := v.State()
		writeOK(w, map[string]any{"probe": probeDTO(v.ID, v.CameraID, state, errMsg)})
	case http.MethodDelete:
		// Disconnect is idempotent; deleting an unknown probe is fine.
		if v, ok := d.Svc.Viewers.DeleteViewer(probeID); ok {
			v.Disconnect()
		}
		writeOK(w, map[string]any{"disconnected": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func probeDTO(id, cameraID string, state live.State, errMsg string) map[string]any {
	out := map[string]any{"id": id, "cameraId": cameraID, "state": state}
	if errMsg != "" {
		out["error"] = errMsg
	}
	return out
}
