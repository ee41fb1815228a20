package domain

import (
	dErrors "ims/pkg/domain-errors"
)

// Status is the lifecycle shared by policy requests and claims.
//
// Transitions: pending → approved | pending → rejected. Approved and rejected
// are terminal and kept for audit; nothing moves back to pending.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.IsTerminal()
}

func (s Status) String() string { return string(s) }

// Transition is the single place illegal lifecycle moves are rejected. Stores
// call it under their write lock or inside the conditional update so that the
// guard also holds for concurrent adjudications.
func Transition(from, to Status) error {
	if !to.IsValid() || !from.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "unknown status")
	}
	if !from.CanTransitionTo(to) {
		return dErrors.New(dErrors.CodeInvalidTransition, "cannot move from "+string(from)+" to "+string(to))
	}
	return nil
}
