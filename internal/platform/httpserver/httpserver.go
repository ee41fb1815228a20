// Package httpserver builds the *http.Server the ims binary listens with.
package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

// Option tweaks the server before it is returned.
type Option func(*http.Server)

// WithRequestTimeout sizes the write timeout to outlast the per-request
// handler deadline so timed-out handlers can still write their 503.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *http.Server) {
		if d > 0 {
			s.WriteTimeout = d + 5*time.Second
		}
	}
}

// WithErrorLog routes net/http's internal errors through the structured logger.
func WithErrorLog(log *slog.Logger) Option {
	return func(s *http.Server) {
		if log != nil {
			s.ErrorLog = slog.NewLogLogger(log.Handler(), slog.LevelWarn)
		}
	}
}

// New returns a server bound to addr. Header reads are capped at 5s and idle
// keep-alives at 2m; the body read and write limits default to 15s and 60s.
func New(addr string, handler http.Handler, opts ...Option) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    64 << 10,
	}
	for _, opt := range opts {
		opt(srv)
	}
	return srv
}
