package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Dispatched     *prometheus.CounterVec
	Failed         prometheus.Counter
	PublishFailed  prometheus.Counter
	PublishSkipped prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Dispatched: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ims_notifications_dispatched_total",
			Help: "Notifications stored, by recipient kind",
		}, []string{"recipient"}),
		Failed: f.NewCounter(prometheus.CounterOpts{
			Name: "ims_notifications_failed_total",
			Help: "Notifications that could not be stored",
		}),
		PublishFailed: f.NewCounter(prometheus.CounterOpts{
			Name: "ims_notifications_publish_failed_total",
			Help: "Notification events that could not be published",
		}),
		PublishSkipped: f.NewCounter(prometheus.CounterOpts{
			Name: "ims_notifications_publish_skipped_total",
			Help: "Notification events skipped while the publish breaker is open",
		}),
	}
}
