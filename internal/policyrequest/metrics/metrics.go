package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Submitted   prometheus.Counter
	Adjudicated *prometheus.CounterVec
	Issued      prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Submitted: f.NewCounter(prometheus.CounterOpts{
			Name: "ims_policy_requests_submitted_total",
			Help: "Policy requests submitted",
		}),
		Adjudicated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ims_policy_requests_adjudicated_total",
			Help: "Policy requests moved out of pending, by decision",
		}, []string{"decision"}),
		Issued: f.NewCounter(prometheus.CounterOpts{
			Name: "ims_policies_issued_total",
			Help: "Policies issued on approval",
		}),
	}
}
