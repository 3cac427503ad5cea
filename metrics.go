package orrery

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects per-frame engine counters. Registration is against the
// provided registerer so tests can use throwaway registries.
type Metrics struct {
	framesTotal        prometheus.Counter
	frameDuration      prometheus.Histogram
	bodiesCulled       prometheus.Counter
	keplerNonConverged *prometheus.CounterVec
}

// NewMetrics registers the engine metrics. A nil registerer uses the
// process-wide default.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		framesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_frames_total",
			Help: "Total simulation frames computed",
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "orrery_frame_duration_seconds",
			Help:    "Time spent computing one frame of body states",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 8),
		}),
		bodiesCulled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_bodies_culled_total",
			Help: "Bodies skipped by the LOD gate",
		}),
		keplerNonConverged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orrery_kepler_nonconverged_total",
			Help: "Kepler solves that hit the iteration bound",
		}, []string{"body"}),
	}
	reg.MustRegister(m.framesTotal, m.frameDuration, m.bodiesCulled, m.keplerNonConverged)
	return m
}

func (m *Metrics) recordFrame(d time.Duration) {
	if m == nil {
		return
	}
	m.framesTotal.Inc()
	m.frameDuration.Observe(d.Seconds())
}

func (m *Metrics) recordCulled() {
	if m == nil {
		return
	}
	m.bodiesCulled.Inc()
}

func (m *Metrics) recordNonConverged(body string) {
	if m == nil {
		return
	}
	m.keplerNonConverged.WithLabelValues(body).Inc()
}
