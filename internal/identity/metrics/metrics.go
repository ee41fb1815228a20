package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks credential resolution.
type Metrics struct {
	ResolveDuration prometheus.Histogram
	ResolveFailures *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ResolveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ims_identity_resolve_duration_seconds",
			Help:    "Duration of credential resolution (first call per request)",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		ResolveFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ims_identity_resolve_failures_total",
			Help: "Credential resolution failures by reason",
		}, []string{"reason"}),
	}
}

func (m *Metrics) ObserveResolve(start time.Time) {
	m.ResolveDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncResolveFailure(reason string) {
	m.ResolveFailures.WithLabelValues(reason).Inc()
}
