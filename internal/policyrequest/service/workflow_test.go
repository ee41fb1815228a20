package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountModels "ims/internal/account/models"
	agentStore "ims/internal/account/store/agent"
	catalogueModels "ims/internal/catalogue/models"
	catalogueStore "ims/internal/catalogue/store"
	notificationService "ims/internal/notification/service"
	notificationStore "ims/internal/notification/store"
	policyStore "ims/internal/policy/store"
	requestStore "ims/internal/policyrequest/store"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	txcontext "ims/pkg/platform/tx"
	"ims/pkg/requestcontext"
)

type fixture struct {
	svc           *Service
	requests      *requestStore.InMemoryStore
	policies      *policyStore.InMemoryStore
	notifications *notificationStore.InMemoryStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	catalogue := catalogueStore.NewInMemory()
	// ids 1 and 2; entry 2 is the 24 month product
	require.NoError(t, catalogue.Create(ctx, &catalogueModels.AvailablePolicy{Name: "Basic", BasePremium: decimal.NewFromInt(5000), ValidityPeriod: 12}))
	require.NoError(t, catalogue.Create(ctx, &catalogueModels.AvailablePolicy{Name: "Comprehensive", BasePremium: decimal.NewFromInt(10000), ValidityPeriod: 24}))

	agents := agentStore.New()
	for range 3 {
		require.NoError(t, agents.Create(ctx, &accountModels.Agent{UserID: domain.NewUserID(), Name: "agent"}))
	}

	notifications := notificationStore.NewInMemory()
	notifier, err := notificationService.New(notifications)
	require.NoError(t, err)

	f := fixture{
		requests:      requestStore.NewInMemory(),
		policies:      policyStore.NewInMemory(),
		notifications: notifications,
	}
	f.svc, err = New(f.requests, catalogue, agents, f.policies, notifier, txcontext.NewLockRunner())
	require.NoError(t, err)
	return f
}

func TestApproveIssuesPolicyAndNotifiesBoth(t *testing.T) {
	f := newFixture(t)
	at := time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), at)

	submitted := f.svc.Submit(ctx, customer(5), 5, 2)
	require.True(t, submitted.IsSuccess(), submitted.Message)

	approved := f.svc.Approve(ctx, admin, submitted.Data.ID, 3)
	require.True(t, approved.IsSuccess(), approved.Message)
	assert.Equal(t, at.AddDate(2, 0, 0), approved.Data.ExpiryDate)

	stored, err := f.requests.FindByID(ctx, submitted.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, stored.Status)

	sent := f.notifications.All()
	require.Len(t, sent, 2)
	require.NotNil(t, sent[0].CustomerID)
	assert.Equal(t, domain.CustomerID(5), *sent[0].CustomerID)
	require.NotNil(t, sent[1].AgentID)
	assert.Equal(t, domain.AgentID(3), *sent[1].AgentID)
	assert.Equal(t, 1, f.policies.CountByAvailablePolicy(2))
}

func TestTerminalRequestsAreImmutable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.svc.Submit(ctx, customer(1), 1, 1)
	require.True(t, first.IsSuccess())
	require.True(t, f.svc.Approve(ctx, admin, first.Data.ID, 1).IsSuccess())

	again := f.svc.Approve(ctx, admin, first.Data.ID, 2)
	assert.Equal(t, dErrors.CodeInvalidTransition, again.Code())
	rejected := f.svc.Reject(ctx, admin, first.Data.ID)
	assert.Equal(t, dErrors.CodeInvalidTransition, rejected.Code())

	second := f.svc.Submit(ctx, customer(1), 1, 1)
	require.True(t, second.IsSuccess())
	require.True(t, f.svc.Reject(ctx, admin, second.Data.ID).IsSuccess())
	assert.Equal(t, dErrors.CodeInvalidTransition, f.svc.Approve(ctx, admin, second.Data.ID, 1).Code())
	assert.Equal(t, dErrors.CodeInvalidTransition, f.svc.Reject(ctx, admin, second.Data.ID).Code())

	stored, err := f.requests.FindByID(ctx, second.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, stored.Status)
	assert.Equal(t, 1, f.policies.CountByAvailablePolicy(1))
	// approve: 2, reject: 1
	assert.Len(t, f.notifications.All(), 3)
}
