package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks UserStore,RevocationList,ScopeResolver,TokenGenerator,AuditPublisher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"ims/internal/auth/metrics"
	"ims/internal/auth/models"
	"ims/internal/auth/service/mocks"
	"ims/internal/identity"
	jwttoken "ims/internal/jwt_token"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/audit"
	"ims/pkg/platform/sentinel"
)

type ServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserStore   *mocks.MockUserStore
	mockRevocations *mocks.MockRevocationList
	mockScopes      *mocks.MockScopeResolver
	mockTokens      *mocks.MockTokenGenerator
	mockAuditor     *mocks.MockAuditPublisher
	metrics         *metrics.Metrics
	now             time.Time
	service         *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUserStore = mocks.NewMockUserStore(s.ctrl)
	s.mockRevocations = mocks.NewMockRevocationList(s.ctrl)
	s.mockScopes = mocks.NewMockScopeResolver(s.ctrl)
	s.mockTokens = mocks.NewMockTokenGenerator(s.ctrl)
	s.mockAuditor = mocks.NewMockAuditPublisher(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	svc, err := New(s.mockUserStore, s.mockRevocations, s.mockScopes, s.mockTokens,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
		WithAuditPublisher(s.mockAuditor),
		WithHashCost(bcrypt.MinCost),
		WithTokenTTL(30*time.Minute),
		WithClock(func() time.Time { return s.now }),
	)
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) hashed(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return string(h)
}

func (s *ServiceSuite) TestNew() {
	_, err := New(nil, s.mockRevocations, s.mockScopes, s.mockTokens)
	s.EqualError(err, "user store is required")
	_, err = New(s.mockUserStore, nil, s.mockScopes, s.mockTokens)
	s.EqualError(err, "revocation list is required")
}

func (s *ServiceSuite) TestLogin() {
	ctx := context.Background()
	userID := domain.NewUserID()
	customer := &models.User{
		ID:           userID,
		Username:     "jane",
		PasswordHash: s.hashed("correct-horse"),
		Role:         domain.RoleCustomer,
	}
	scoped := int64(12)
	claims := &jwttoken.Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(s.now.Add(30 * time.Minute)),
	}}

	s.Run("valid password issues credential with scoped id", func() {
		s.mockUserStore.EXPECT().FindByUsername(ctx, "jane").Return(customer, nil)
		s.mockScopes.EXPECT().ScopedIDForUser(ctx, userID, domain.RoleCustomer).Return(&scoped, nil)
		s.mockTokens.EXPECT().GenerateAccessToken(gomock.Any(), domain.RoleCustomer, &scoped, 30*time.Minute).
			Return("signed", claims, nil)
		s.mockAuditor.EXPECT().Emit(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
			s.Equal(string(audit.EventLoginSucceeded), e.Action)
			return nil
		})

		res, err := s.service.Login(ctx, models.LoginRequest{Username: "  jane ", Password: "correct-horse"})
		s.Require().NoError(err)
		s.Equal("signed", res.Token)
		s.Equal(domain.RoleCustomer, res.Role)
		s.Equal(s.now.Add(30*time.Minute), res.ExpiresAt)
	})

	s.Run("missing fields are a validation failure", func() {
		_, err := s.service.Login(ctx, models.LoginRequest{Username: "jane"})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown user and wrong password look the same", func() {
		s.mockUserStore.EXPECT().FindByUsername(ctx, "ghost").Return(nil, sentinel.ErrNotFound)
		s.mockUserStore.EXPECT().FindByUsername(ctx, "jane").Return(customer, nil)
		s.mockAuditor.EXPECT().Emit(ctx, gomock.Any()).Return(nil).Times(2)

		_, errUnknown := s.service.Login(ctx, models.LoginRequest{Username: "ghost", Password: "x"})
		_, errBad := s.service.Login(ctx, models.LoginRequest{Username: "jane", Password: "wrong"})
		s.True(dErrors.HasCode(errUnknown, dErrors.CodeUnauthorized))
		s.Equal(dErrors.MessageOf(errUnknown), dErrors.MessageOf(errBad))
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.LoginAttempts.WithLabelValues("bad_password")))
	})

	s.Run("deleted user cannot log in", func() {
		gone := *customer
		gone.Deleted = true
		s.mockUserStore.EXPECT().FindByUsername(ctx, "jane").Return(&gone, nil)
		s.mockAuditor.EXPECT().Emit(ctx, gomock.Any()).Return(nil)

		_, err := s.service.Login(ctx, models.LoginRequest{Username: "jane", Password: "correct-horse"})
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("missing profile row issues credential without scoped id", func() {
		s.mockUserStore.EXPECT().FindByUsername(ctx, "jane").Return(customer, nil)
		s.mockScopes.EXPECT().ScopedIDForUser(ctx, userID, domain.RoleCustomer).Return(nil, sentinel.ErrNotFound)
		s.mockTokens.EXPECT().GenerateAccessToken(gomock.Any(), domain.RoleCustomer, gomock.Nil(), gomock.Any()).
			Return("signed", claims, nil)
		s.mockAuditor.EXPECT().Emit(ctx, gomock.Any()).Return(nil)

		_, err := s.service.Login(ctx, models.LoginRequest{Username: "jane", Password: "correct-horse"})
		s.NoError(err)
	})

	s.Run("store failure is internal", func() {
		s.mockUserStore.EXPECT().FindByUsername(ctx, "jane").Return(nil, errors.New("db down"))

		_, err := s.service.Login(ctx, models.LoginRequest{Username: "jane", Password: "x"})
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestLogout() {
	ctx := context.Background()
	p := identity.Principal{
		SubjectID: domain.NewUserID(),
		Role:      domain.RoleAgent,
		TokenID:   "jti-9",
		ExpiresAt: s.now.Add(10 * time.Minute),
	}

	s.Run("revokes for the remaining lifetime", func() {
		s.mockRevocations.EXPECT().RevokeToken(ctx, "jti-9", 10*time.Minute).Return(nil)
		s.mockAuditor.EXPECT().Emit(ctx, gomock.Any()).Return(nil)

		s.Require().NoError(s.service.Logout(ctx, p))
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.Logouts))
	})

	s.Run("expired credential needs no revocation", func() {
		expired := p
		expired.ExpiresAt = s.now.Add(-time.Minute)
		s.mockAuditor.EXPECT().Emit(ctx, gomock.Any()).Return(nil)

		s.NoError(s.service.Logout(ctx, expired))
	})

	s.Run("revocation failure is a dependency failure", func() {
		s.mockRevocations.EXPECT().RevokeToken(ctx, "jti-9", gomock.Any()).Return(errors.New("redis down"))

		err := s.service.Logout(ctx, p)
		s.True(dErrors.HasCode(err, dErrors.CodeDependencyFailure))
	})

	s.Equal(domain.RoleAgent, s.service.Role(p))
}

func (s *ServiceSuite) TestCreateUser() {
	ctx := context.Background()

	s.Run("stores bcrypt hash", func() {
		s.mockUserStore.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			s.Equal("agent007", u.Username)
			s.NoError(bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("licensed-to")))
			s.Equal(s.now, u.CreatedAt)
			return nil
		})

		id, err := s.service.CreateUser(ctx, "agent007", "licensed-to", domain.RoleAgent)
		s.Require().NoError(err)
		s.False(id.IsNil())
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.UsersCreated.WithLabelValues("Agent")))
	})

	s.Run("short password rejected before storage", func() {
		_, err := s.service.CreateUser(ctx, "agent007", "short", domain.RoleAgent)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("taken username is a conflict", func() {
		s.mockUserStore.EXPECT().Create(ctx, gomock.Any()).Return(sentinel.ErrAlreadyUsed)

		_, err := s.service.CreateUser(ctx, "agent007", "licensed-to", domain.RoleAgent)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})
}

func (s *ServiceSuite) TestListUsers() {
	ctx := context.Background()

	s.Run("empty list is not found", func() {
		s.mockUserStore.EXPECT().ListAll(ctx).Return(nil, nil)
		_, err := s.service.ListUsers(ctx)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("ordered by creation", func() {
		late := &models.User{ID: domain.NewUserID(), Username: "b", Role: domain.RoleAgent, CreatedAt: s.now}
		early := &models.User{ID: domain.NewUserID(), Username: "a", Role: domain.RoleAdmin, CreatedAt: s.now.Add(-time.Hour)}
		s.mockUserStore.EXPECT().ListAll(ctx).Return([]*models.User{late, early}, nil)

		out, err := s.service.ListUsers(ctx)
		s.Require().NoError(err)
		s.Require().Len(out, 2)
		s.Equal("a", out[0].Username)
	})
}

func (s *ServiceSuite) TestDeleteAccount() {
	ctx := context.Background()
	p := identity.Principal{SubjectID: domain.NewUserID(), Role: domain.RoleCustomer, TokenID: "jti", ExpiresAt: s.now.Add(time.Minute)}

	s.Run("soft deletes and revokes", func() {
		s.mockUserStore.EXPECT().MarkDeleted(ctx, p.SubjectID).Return(nil)
		s.mockRevocations.EXPECT().RevokeToken(ctx, "jti", time.Minute).Return(nil)
		s.NoError(s.service.DeleteAccount(ctx, p))
	})

	s.Run("unknown user", func() {
		s.mockUserStore.EXPECT().MarkDeleted(ctx, p.SubjectID).Return(sentinel.ErrNotFound)
		err := s.service.DeleteAccount(ctx, p)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestSeedAdmin() {
	ctx := context.Background()

	s.Run("existing admin is left alone", func() {
		s.mockUserStore.EXPECT().FindByUsername(ctx, "root").Return(&models.User{}, nil)
		s.NoError(s.service.SeedAdmin(ctx, "root", "rootpassword"))
	})

	s.Run("missing admin is created", func() {
		s.mockUserStore.EXPECT().FindByUsername(ctx, "root").Return(nil, sentinel.ErrNotFound)
		s.mockUserStore.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			s.Equal(domain.RoleAdmin, u.Role)
			return nil
		})
		s.NoError(s.service.SeedAdmin(ctx, "root", "rootpassword"))
	})

	s.Run("no username configured", func() {
		s.NoError(s.service.SeedAdmin(ctx, "", ""))
	})
}
