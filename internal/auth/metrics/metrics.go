package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks login activity and user creation.
type Metrics struct {
	LoginAttempts *prometheus.CounterVec
	Logouts       prometheus.Counter
	UsersCreated  *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LoginAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ims_auth_login_attempts_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		Logouts: f.NewCounter(prometheus.CounterOpts{
			Name: "ims_auth_logouts_total",
			Help: "Credentials revoked through logout",
		}),
		UsersCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ims_auth_users_created_total",
			Help: "Users created by role",
		}, []string{"role"}),
	}
}

func (m *Metrics) IncLogin(outcome string) {
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncLogout() {
	m.Logouts.Inc()
}

// IncrementUsersCreated increments the users created counter for role.
func (m *Metrics) IncrementUsersCreated(role string) {
	m.UsersCreated.WithLabelValues(role).Inc()
}
