package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"vms-gateway/internal/domain"
	"vms-gateway/internal/infrastructure/config"
	obs "vms-gateway/internal/infrastructure/observability"
	"vms-gateway/internal/usecase"
)

type Deps struct {
	Cfg     *config.Config
	Logger  *zerolog.Logger
	Metrics *obs.Metrics
	Svc     *usecase.Service
	Monitor *MonitorHub

	// runtime override of the configured poll interval, set via the
	// settings route while create-player reads it concurrently
	framePollMs atomic.Int64
}

// framePollInterval is the current polling cadence for new players: the
// runtime override when set, the configured default otherwise.
func (d *Deps) framePollInterval() time.Duration {
	if v := d.framePollMs.Load(); v > 0 {
		return time.Duration(v) * time.Millisecond
	}
	return d.Cfg.FramePollInterval()
}

func (d *Deps) framePollIntervalMs() int {
	if v := d.framePollMs.Load(); v > 0 {
		return int(v)
	}
	return d.Cfg.FramePollIntervalMs
}

func NewRouter(d *Deps) http.Handler {
	return withCORS(d.Cfg, buildBaseMux(d))
}

func buildBaseMux(d *Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	mux.Handle("/metrics", promhttp.HandlerFor(d.Metrics.Registry(), promhttp.HandlerOpts{}))

	mux.HandleFunc("/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name":    "vms-gateway",
			"version": obs.Version,
			"time":    time.Now().UTC(),
		})
	})

	// Resource catalog
	mux.HandleFunc("/api/v1/cameras", d.handleListCameras)
	// Single handler for /api/v1/cameras/* to avoid duplicate registrations
	mux.HandleFunc("/api/v1/cameras/", d.handleCameraByID)
	mux.HandleFunc("/api/v1/events", d.handleListEvents)

	// Archive players
	mux.HandleFunc("/api/v1/players", d.handlePlayers)
	mux.HandleFunc("/api/v1/players/", d.handlePlayerByID)

	// Live view
	mux.HandleFunc("/api/v1/live/", d.handleLive)

	// Monitor WS: playback/live lifecycle events for the dashboard
	mux.HandleFunc("/api/v1/monitor/ws", d.Monitor.HandleWS)

	// Runtime settings
	mux.HandleFunc("/api/v1/settings", d.handleSettings)

	// Generic credentialed pass-through to the VMS (layouts, notification
	// channels/rules and the rest of the uniform CRUD surface).
	mux.HandleFunc("/api/v1/proxy", d.handleVMSProxy)
	mux.HandleFunc("/api/v1/proxy/", d.handleVMSProxy)

	return mux
}

func withCORS(cfg *config.Config, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Server-Url")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// credentialFrom builds the per-request credential from the incoming proxy
// headers. Absent headers are valid: the caller gets the fixture source.
func credentialFrom(r *http.Request) domain.Credential {
	return domain.Credential{
		ServerURL:     strings.TrimRight(r.Header.Get("Server-Url"), "/"),
		Authorization: r.Header.Get("Authorization"),
	}
}
