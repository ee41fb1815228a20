package service

import (
	"errors"

	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/sentinel"
)

const (
	msgClaimNotFound  = "claim not found"
	msgPolicyNotFound = "policy not found"
)

func statusWriteErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, msgClaimNotFound)
	case errors.Is(err, sentinel.ErrInvalidState):
		return dErrors.Wrap(err, dErrors.CodeInvalidTransition, "claim is no longer pending")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update claim")
}

func loadErr(err error, notFound, internal string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, notFound)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, internal)
}
