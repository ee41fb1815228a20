package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Publisher

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ims/internal/identity"
	"ims/internal/notification/metrics"
	"ims/internal/notification/models"
	"ims/internal/notification/service/mocks"
	"ims/internal/notification/store"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/circuit"
)

type ServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockPublisher *mocks.MockPublisher
	store         *store.InMemoryStore
	metrics       *metrics.Metrics
	service       *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPublisher = mocks.NewMockPublisher(s.ctrl)
	s.store = store.NewInMemory()
	s.metrics = metrics.New(prometheus.NewRegistry())
	svc, err := New(s.store,
		WithPublisher(s.mockPublisher, "notifications"),
		WithBreaker(circuit.New(2, time.Hour)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) TestDispatch() {
	ctx := context.Background()
	now := time.Now()

	s.Run("stores then publishes keyed by recipient", func() {
		s.mockPublisher.EXPECT().Publish(ctx, "notifications", []byte("customer:4"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, value []byte) error {
				var ev Event
				s.Require().NoError(json.Unmarshal(value, &ev))
				s.Equal("hello", ev.Message)
				s.Equal(domain.NotificationID(1), ev.ID)
				return nil
			})

		s.Require().NoError(s.service.Dispatch(ctx, models.ForCustomer(4, "hello", now)))
		s.Len(s.store.All(), 1)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.Dispatched.WithLabelValues("customer")))
	})

	s.Run("publish failure is not returned", func() {
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("broker down")).Times(2)

		s.NoError(s.service.Dispatch(ctx, models.ForAgent(1, "a", now)))
		s.NoError(s.service.Dispatch(ctx, models.ForAgent(1, "b", now)))
		s.Equal(float64(2), testutil.ToFloat64(s.metrics.PublishFailed))
	})

	s.Run("open breaker skips publishing but still stores", func() {
		s.NoError(s.service.Dispatch(ctx, models.ForAgent(1, "c", now)))
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.PublishSkipped))
		s.Len(s.store.All(), 4)
	})
}

func (s *ServiceSuite) TestDispatchStoreFailure() {
	mockStore := mocks.NewMockStore(s.ctrl)
	svc, err := New(mockStore, WithMetrics(s.metrics))
	s.Require().NoError(err)
	mockStore.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	err = svc.Dispatch(context.Background(), models.ForCustomer(1, "x", time.Now()))
	s.True(dErrors.HasCode(err, dErrors.CodeDependencyFailure))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.Failed))
}

func (s *ServiceSuite) TestList() {
	ctx := context.Background()
	now := time.Now()
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.Require().NoError(s.service.Dispatch(ctx, models.ForCustomer(4, "first", now)))
	s.Require().NoError(s.service.Dispatch(ctx, models.ForCustomer(4, "second", now)))

	s.Run("newest first", func() {
		id := int64(4)
		res := s.service.ListForCustomer(ctx, identity.Principal{Role: domain.RoleCustomer, ScopedID: &id})
		s.Require().True(res.IsSuccess())
		s.Equal("second", res.Data[0].Message)
	})

	s.Run("empty is not found", func() {
		id := int64(2)
		res := s.service.ListForAgent(ctx, identity.Principal{Role: domain.RoleAgent, ScopedID: &id})
		s.Equal(dErrors.CodeNotFound, res.Code())
	})
}
