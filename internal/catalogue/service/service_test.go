package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ims/internal/catalogue/models"
	"ims/internal/catalogue/service/mocks"
	"ims/internal/identity"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/audit"
	"ims/pkg/platform/sentinel"
)

type ServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockStore   *mocks.MockStore
	mockAuditor *mocks.MockAuditPublisher
	service     *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockStore(s.ctrl)
	s.mockAuditor = mocks.NewMockAuditPublisher(s.ctrl)
	svc, err := New(s.mockStore, WithAuditPublisher(s.mockAuditor))
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

var admin = identity.Principal{SubjectID: domain.NewUserID(), Role: domain.RoleAdmin}

func input() models.AvailablePolicyInput {
	return models.AvailablePolicyInput{Name: "Motor", BasePremium: decimal.NewFromInt(300), ValidityPeriod: 12}
}

func (s *ServiceSuite) TestCreate() {
	ctx := context.Background()

	s.Run("admin creates entry and emits audit", func() {
		s.mockStore.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.AvailablePolicy) error {
			p.ID = 7
			return nil
		})
		s.mockAuditor.EXPECT().Emit(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
			s.Equal("available_policy:7", e.Subject)
			s.Equal("created", e.Decision)
			return nil
		})

		res := s.service.Create(ctx, admin, input())
		s.Require().True(res.IsSuccess())
		s.Equal(domain.AvailablePolicyID(7), res.Data.ID)
	})

	s.Run("non-admin is forbidden", func() {
		res := s.service.Create(ctx, identity.Principal{Role: domain.RoleAgent}, input())
		s.Equal(dErrors.CodeForbidden, res.Code())
	})

	s.Run("invalid input", func() {
		in := input()
		in.ValidityPeriod = 0
		res := s.service.Create(ctx, admin, in)
		s.Equal(dErrors.CodeValidation, res.Code())
	})
}

func (s *ServiceSuite) TestUpdateAndDelete() {
	ctx := context.Background()

	s.Run("unknown entry is not found", func() {
		s.mockStore.EXPECT().Update(ctx, gomock.Any()).Return(sentinel.ErrNotFound)
		res := s.service.Update(ctx, admin, 9, input())
		s.Equal(dErrors.CodeNotFound, res.Code())
	})

	s.Run("delete", func() {
		s.mockStore.EXPECT().Delete(ctx, domain.AvailablePolicyID(3)).Return(nil)
		s.mockAuditor.EXPECT().Emit(ctx, gomock.Any()).Return(nil)
		res := s.service.Delete(ctx, admin, 3)
		s.True(res.Data)
	})
}

func (s *ServiceSuite) TestBrowse() {
	ctx := context.Background()

	s.Run("get by id", func() {
		s.mockStore.EXPECT().FindByID(ctx, domain.AvailablePolicyID(2)).Return(&models.AvailablePolicy{ID: 2, Name: "Home"}, nil)
		res := s.service.Get(ctx, 2)
		s.Require().True(res.IsSuccess())
		s.Equal("Home", res.Data.Name)
	})

	s.Run("non-positive id is rejected before the store", func() {
		res := s.service.Get(ctx, 0)
		s.Equal(dErrors.CodeValidation, res.Code())
	})

	s.Run("list pages through entries", func() {
		all := []*models.AvailablePolicy{{ID: 1}, {ID: 2}, {ID: 3}}
		s.mockStore.EXPECT().ListAll(ctx).Return(all, nil)
		res := s.service.List(ctx, 1, 2)
		s.Require().True(res.IsSuccess())
		s.Len(res.Data.Items, 2)
	})

	s.Run("storage error", func() {
		s.mockStore.EXPECT().ListAll(ctx).Return(nil, errors.New("db down"))
		res := s.service.List(ctx, 1, 2)
		s.Equal(dErrors.CodeInternal, res.Code())
	})
}
