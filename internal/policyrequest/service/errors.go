package service

import (
	"errors"

	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/sentinel"
)

const (
	msgRequestNotFound       = "policy request not found"
	msgNotificationsFailed   = "failed to add notifications"
	msgNotificationFailed    = "failed to add notification"
	msgNoLongerPending       = "policy request is no longer pending"
	msgAvailablePolicyAbsent = "available policy not found"
)

// statusWriteErr translates a failed conditional status write.
func statusWriteErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, msgRequestNotFound)
	case errors.Is(err, sentinel.ErrInvalidState):
		return dErrors.Wrap(err, dErrors.CodeInvalidTransition, msgNoLongerPending)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update policy request")
}

func loadErr(err error, notFound, internal string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, notFound)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, internal)
}
