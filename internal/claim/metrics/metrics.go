package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Filed       *prometheus.CounterVec
	Adjudicated *prometheus.CounterVec
	Amount      prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Filed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ims_claims_filed_total",
			Help: "Claims filed, by filer role",
		}, []string{"filed_by"}),
		Adjudicated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ims_claims_adjudicated_total",
			Help: "Claims moved out of pending, by decision",
		}, []string{"decision"}),
		Amount: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ims_claim_amount",
			Help:    "Amount claimed per filed claim",
			Buckets: prometheus.ExponentialBuckets(100, 4, 8),
		}),
	}
}
