package models

import (
	"time"
)

// EndpointClass groups routes that share a request budget.
type EndpointClass string

const (
	// ClassAuth covers login and registration.
	ClassAuth EndpointClass = "auth"
	// ClassWrite covers mutating calls on the role-scoped routes.
	ClassWrite EndpointClass = "write"
)

// IsValid checks if the endpoint class is one of the supported values.
func (c EndpointClass) IsValid() bool {
	switch c {
	case ClassAuth, ClassWrite:
		return true
	}
	return false
}

// Limit is a sliding-window budget: at most Requests per Window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// DefaultLimits returns the per-minute budgets used when none are configured.
func DefaultLimits() map[EndpointClass]Limit {
	return map[EndpointClass]Limit{
		ClassAuth:  {Requests: 10, Window: time.Minute},
		ClassWrite: {Requests: 60, Window: time.Minute},
	}
}

// RateLimitResult represents the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter int // seconds, only set when not allowed
}

// RetryAfterSeconds rounds the wait until resetAt up to whole seconds, never below one.
func RetryAfterSeconds(now, resetAt time.Time) int {
	d := resetAt.Sub(now)
	if d <= 0 {
		return 1
	}
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
