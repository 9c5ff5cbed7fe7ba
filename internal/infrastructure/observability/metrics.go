package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry            *prometheus.Registry
	ActivePlayers       prometheus.Gauge
	FramesTotal         *prometheus.CounterVec
	UpstreamErrorsTotal *prometheus.CounterVec
	LiveStateTotal      *prometheus.CounterVec
	EvictionsTotal      prometheus.Counter
}

func NewMetrics() *Metrics {
	r := prometheus.NewRegistry()
	m := &Metrics{
		registry: r,
		ActivePlayers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "vms_gateway",
			Name:      "active_players",
			Help:      "Number of open archive players",
		}),
		FramesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vms_gateway",
			Name:      "frames_total",
			Help:      "Total archive frames fetched",
		}, []string{"result"}),
		UpstreamErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vms_gateway",
			Name:      "upstream_errors_total",
			Help:      "Total upstream VMS errors by stage",
		}, []string{"stage"}),
		LiveStateTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vms_gateway",
			Name:      "live_state_total",
			Help:      "Live viewer state transitions",
		}, []string{"state"}),
		EvictionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vms_gateway",
			Name:      "evictions_total",
			Help:      "Total evicted archive players",
		}),
	}
	r.MustRegister(m.ActivePlayers, m.FramesTotal, m.UpstreamErrorsTotal, m.LiveStateTotal, m.EvictionsTotal)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
