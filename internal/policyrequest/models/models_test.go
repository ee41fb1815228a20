package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
)

func TestGuards(t *testing.T) {
	r := NewPolicyRequest(1, 2, time.Now())
	assert.Equal(t, domain.StatusPending, r.Status)
	assert.NoError(t, r.CanApprove())

	for _, terminal := range []domain.Status{domain.StatusApproved, domain.StatusRejected} {
		r.Status = terminal
		assert.True(t, dErrors.HasCode(r.CanApprove(), dErrors.CodeInvalidTransition), terminal)
	}
}
