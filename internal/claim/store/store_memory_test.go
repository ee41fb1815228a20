package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ims/internal/claim/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
)

func fileClaim(t *testing.T, s *InMemoryStore, customer domain.CustomerID, agent *domain.AgentID) *models.Claim {
	t.Helper()
	c := models.NewClaim(models.FileRequest{PolicyID: 1, CustomerID: customer, Amount: decimal.NewFromInt(10)}, agent, time.Now())
	require.NoError(t, s.Create(context.Background(), c))
	return c
}

func TestUpdateStatusSingleWinner(t *testing.T) {
	s := NewInMemory()
	c := fileClaim(t, s, 1, nil)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(approve bool) {
			defer wg.Done()
			to := domain.StatusRejected
			if approve {
				to = domain.StatusApproved
			}
			if err := s.UpdateStatus(context.Background(), c.ID, domain.StatusPending, to); err == nil {
				wins.Add(1)
			} else {
				assert.True(t, errors.Is(err, sentinel.ErrInvalidState))
			}
		}(i%2 == 0)
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}

func TestUpdateStatusMissing(t *testing.T) {
	err := NewInMemory().UpdateStatus(context.Background(), 9, domain.StatusPending, domain.StatusApproved)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestListByAgentSkipsCustomerFiled(t *testing.T) {
	s := NewInMemory()
	agent := domain.AgentID(3)
	fileClaim(t, s, 1, nil)
	byAgent := fileClaim(t, s, 2, &agent)

	got, err := s.ListByAgent(context.Background(), agent)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, byAgent.ID, got[0].ID)

	// returned copies do not alias stored state
	*got[0].AgentID = 99
	again, err := s.FindByID(context.Background(), byAgent.ID)
	require.NoError(t, err)
	assert.Equal(t, agent, *again.AgentID)
}
