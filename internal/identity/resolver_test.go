package identity_test

//go:generate mockgen -source=resolver.go -destination=mocks/mocks.go -package=mocks CredentialValidator,RevocationChecker,AuditPublisher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ims/internal/identity"
	"ims/internal/identity/metrics"
	"ims/internal/identity/mocks"
	jwttoken "ims/internal/jwt_token"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
)

// Resolution is the only place a credential is trusted; tests pin the failure
// taxonomy and the once-per-request cache.

type ResolverSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	validator   *mocks.MockCredentialValidator
	revocations *mocks.MockRevocationChecker
	auditor     *mocks.MockAuditPublisher
	metrics     *metrics.Metrics
	resolver    *identity.Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.validator = mocks.NewMockCredentialValidator(s.ctrl)
	s.revocations = mocks.NewMockRevocationChecker(s.ctrl)
	s.auditor = mocks.NewMockAuditPublisher(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.resolver = identity.NewResolver(s.validator,
		identity.WithRevocationChecker(s.revocations),
		identity.WithAuditPublisher(s.auditor),
		identity.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		identity.WithMetrics(s.metrics),
	)
}

func (s *ResolverSuite) TearDownTest() {
	s.ctrl.Finish()
}

func scoped(v int64) *int64 { return &v }

func (s *ResolverSuite) TestResolve() {
	userID := domain.NewUserID()

	s.Run("customer credential yields scoped principal", func() {
		ctx := identity.WithCredential(context.Background(), "tok")
		s.validator.EXPECT().Validate("tok").Return(&identity.Claims{
			SubjectID: userID, Role: domain.RoleCustomer, ScopedID: scoped(5), TokenID: "jti-1",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		s.revocations.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, nil)

		p, err := s.resolver.Resolve(ctx)
		s.Require().NoError(err)
		s.Equal(userID, p.SubjectID)
		id, ok := p.CustomerID()
		s.True(ok)
		s.Equal(domain.CustomerID(5), id)
		_, ok = p.AgentID()
		s.False(ok)
	})

	s.Run("resolves at most once per request scope", func() {
		ctx := identity.WithCredential(context.Background(), "tok")
		s.validator.EXPECT().Validate("tok").Return(&identity.Claims{
			SubjectID: userID, Role: domain.RoleAdmin, TokenID: "jti-2",
		}, nil).Times(1)
		s.revocations.EXPECT().IsRevoked(gomock.Any(), "jti-2").Return(false, nil).Times(1)

		first, err := s.resolver.Resolve(ctx)
		s.Require().NoError(err)
		second, err := s.resolver.Resolve(ctx)
		s.Require().NoError(err)
		s.Equal(first, second)
	})

	s.Run("separate requests do not share the cache", func() {
		s.validator.EXPECT().Validate("tok").Return(&identity.Claims{
			SubjectID: userID, Role: domain.RoleAdmin,
		}, nil).Times(2)

		_, err := s.resolver.Resolve(identity.WithCredential(context.Background(), "tok"))
		s.Require().NoError(err)
		_, err = s.resolver.Resolve(identity.WithCredential(context.Background(), "tok"))
		s.Require().NoError(err)
	})

	s.Run("no scope is NoCredential", func() {
		_, err := s.resolver.Resolve(context.Background())
		s.ErrorIs(err, identity.ErrNoCredential)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("empty token is NoCredential without validation", func() {
		_, err := s.resolver.Resolve(identity.WithCredential(context.Background(), "  "))
		s.ErrorIs(err, identity.ErrNoCredential)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.ResolveFailures.WithLabelValues("missing")))
	})

	s.Run("validator failure is Invalid and cached", func() {
		ctx := identity.WithCredential(context.Background(), "bad")
		s.validator.EXPECT().Validate("bad").
			Return(nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")).Times(1)
		s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := s.resolver.Resolve(ctx)
		s.ErrorIs(err, identity.ErrInvalidCredential)
		s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))

		_, again := s.resolver.Resolve(ctx)
		s.Equal(err, again)
	})

	s.Run("malformed credential is NoCredential", func() {
		ctx := identity.WithCredential(context.Background(), "garbage")
		s.validator.EXPECT().Validate("garbage").
			Return(nil, fmt.Errorf("%w: bad segments", identity.ErrMalformedCredential))
		s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.resolver.Resolve(ctx)
		s.ErrorIs(err, identity.ErrNoCredential)
		s.NotErrorIs(err, identity.ErrInvalidCredential)
		s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(err))
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.ResolveFailures.WithLabelValues("malformed")))
	})

	s.Run("revoked token is Invalid", func() {
		ctx := identity.WithCredential(context.Background(), "tok")
		s.validator.EXPECT().Validate("tok").Return(&identity.Claims{
			SubjectID: userID, Role: domain.RoleAgent, ScopedID: scoped(3), TokenID: "jti-3",
		}, nil)
		s.revocations.EXPECT().IsRevoked(gomock.Any(), "jti-3").Return(true, nil)
		s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.resolver.Resolve(ctx)
		s.ErrorIs(err, identity.ErrInvalidCredential)
	})

	s.Run("revocation backend failure is internal", func() {
		ctx := identity.WithCredential(context.Background(), "tok")
		s.validator.EXPECT().Validate("tok").Return(&identity.Claims{
			SubjectID: userID, Role: domain.RoleAdmin, TokenID: "jti-4",
		}, nil)
		s.revocations.EXPECT().IsRevoked(gomock.Any(), "jti-4").Return(false, errors.New("redis down"))
		s.auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.resolver.Resolve(ctx)
		s.Equal(dErrors.CodeInternal, dErrors.CodeOf(err))
	})

	s.Run("missing scoped claim resolves with absent scoped id", func() {
		ctx := identity.WithCredential(context.Background(), "tok")
		s.validator.EXPECT().Validate("tok").Return(&identity.Claims{
			SubjectID: userID, Role: domain.RoleAgent,
		}, nil)

		p, err := s.resolver.Resolve(ctx)
		s.Require().NoError(err)
		_, ok := p.AgentID()
		s.False(ok)

		_, err = p.RequireAgent()
		s.ErrorIs(err, dErrors.New(dErrors.CodeUnauthorized, identity.MsgCannotResolveScopedID))
	})
}

func (s *ResolverSuite) TestResolveWithSignedCredentials() {
	tokens := jwttoken.NewJWTService("resolver-key", "ims", "ims-api")
	resolver := identity.NewResolver(jwttoken.NewAdapter(tokens),
		identity.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	s.Run("non-token string is NoCredential", func() {
		_, err := resolver.Resolve(identity.WithCredential(context.Background(), "not-a-jwt"))
		s.ErrorIs(err, identity.ErrNoCredential)
		s.NotErrorIs(err, identity.ErrInvalidCredential)
	})

	s.Run("expired token is Invalid", func() {
		token, _, err := tokens.GenerateAccessToken(uuid.New(), domain.RoleCustomer, scoped(5), -time.Minute)
		s.Require().NoError(err)

		_, err = resolver.Resolve(identity.WithCredential(context.Background(), token))
		s.ErrorIs(err, identity.ErrInvalidCredential)
		s.NotErrorIs(err, identity.ErrNoCredential)
	})

	s.Run("foreign signature is Invalid", func() {
		other := jwttoken.NewJWTService("other-key", "ims", "ims-api")
		token, _, err := other.GenerateAccessToken(uuid.New(), domain.RoleAdmin, nil, time.Hour)
		s.Require().NoError(err)

		_, err = resolver.Resolve(identity.WithCredential(context.Background(), token))
		s.ErrorIs(err, identity.ErrInvalidCredential)
	})

	s.Run("valid token resolves", func() {
		token, _, err := tokens.GenerateAccessToken(uuid.New(), domain.RoleAgent, scoped(3), time.Hour)
		s.Require().NoError(err)

		p, err := resolver.Resolve(identity.WithCredential(context.Background(), token))
		s.Require().NoError(err)
		id, ok := p.AgentID()
		s.True(ok)
		s.Equal(domain.AgentID(3), id)
	})
}

func (s *ResolverSuite) TestWithPrincipal() {
	p := identity.Principal{SubjectID: domain.NewUserID(), Role: domain.RoleAdmin}
	got, err := s.resolver.Resolve(identity.WithPrincipal(context.Background(), p))
	s.Require().NoError(err)
	s.Equal(p, got)
}
