package httptransport

//go:generate mockgen -source=services.go -destination=mocks/mocks.go -package=mocks AuthService,AccountService,CatalogueService,PolicyService,PolicyRequestService,ClaimService,NotificationService

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	authModels "ims/internal/auth/models"
	claimModels "ims/internal/claim/models"
	"ims/internal/identity"
	"ims/internal/platform/metrics"
	policyModels "ims/internal/policy/models"
	policyRequestModels "ims/internal/policyrequest/models"
	ratelimit "ims/internal/ratelimit/middleware"
	ratelimitModels "ims/internal/ratelimit/models"
	"ims/internal/ratelimit/store/bucket"
	"ims/internal/transport/http/mocks"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/paging"
	"ims/pkg/platform/middleware/auth"
	"ims/pkg/result"
)

// tokens maps bearer strings to claims so tests choose a caller by header.
type tokens map[string]*identity.Claims

func (t tokens) Validate(token string) (*identity.Claims, error) {
	c, ok := t[token]
	if !ok {
		return nil, errors.New("signature mismatch")
	}
	return c, nil
}

func scoped(id int64) *int64 { return &id }

type RouterSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	auth           *mocks.MockAuthService
	accounts       *mocks.MockAccountService
	catalogue      *mocks.MockCatalogueService
	policies       *mocks.MockPolicyService
	policyRequests *mocks.MockPolicyRequestService
	claims         *mocks.MockClaimService
	notifications  *mocks.MockNotificationService
	router         http.Handler
	newRouter      func(Config) http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.auth = mocks.NewMockAuthService(s.ctrl)
	s.accounts = mocks.NewMockAccountService(s.ctrl)
	s.catalogue = mocks.NewMockCatalogueService(s.ctrl)
	s.policies = mocks.NewMockPolicyService(s.ctrl)
	s.policyRequests = mocks.NewMockPolicyRequestService(s.ctrl)
	s.claims = mocks.NewMockClaimService(s.ctrl)
	s.notifications = mocks.NewMockNotificationService(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := identity.NewResolver(tokens{
		"admin":      {SubjectID: domain.NewUserID(), Role: domain.RoleAdmin, TokenID: "jti-admin"},
		"customer-5": {SubjectID: domain.NewUserID(), Role: domain.RoleCustomer, ScopedID: scoped(5), TokenID: "jti-c5"},
		"agent-3":    {SubjectID: domain.NewUserID(), Role: domain.RoleAgent, ScopedID: scoped(3), TokenID: "jti-a3"},
	}, identity.WithLogger(logger))

	services := Services{
		Auth:           s.auth,
		Accounts:       s.accounts,
		Catalogue:      s.catalogue,
		Policies:       s.policies,
		PolicyRequests: s.policyRequests,
		Claims:         s.claims,
		Notifications:  s.notifications,
	}
	s.newRouter = func(cfg Config) http.Handler {
		h, err := NewHandler(services, resolver, logger, cfg)
		s.Require().NoError(err)
		reg := prometheus.NewRegistry()
		return NewRouter(h, metrics.New(reg), reg)
	}
	s.router = s.newRouter(Config{CORSAllowedOrigins: []string{"http://localhost:3000"}, RequestTimeout: 5 * time.Second})
}

func (s *RouterSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterSuite) do(method, path, token, body string) (*httptest.ResponseRecorder, result.Envelope) {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	var env result.Envelope
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &env))
	}
	return rr, env
}

func isAdmin(p identity.Principal) bool { return p.Role == domain.RoleAdmin }

func (s *RouterSuite) TestLogin() {
	s.Run("sets the jwt cookie and returns the token", func() {
		expires := time.Now().Add(time.Hour).UTC()
		s.auth.EXPECT().Login(gomock.Any(), authModels.LoginRequest{Username: "alice", Password: "s3cret-pass"}).
			Return(&authModels.LoginResult{Token: "tok", Role: domain.RoleCustomer, ExpiresAt: expires}, nil)

		rr, env := s.do(http.MethodPost, "/auth/login", "", `{"username":" alice ","password":"s3cret-pass"}`)
		s.Equal(http.StatusOK, rr.Code)
		s.True(env.IsSuccess)
		var cookie *http.Cookie
		for _, c := range rr.Result().Cookies() {
			if c.Name == auth.CookieName {
				cookie = c
			}
		}
		s.Require().NotNil(cookie)
		s.Equal("tok", cookie.Value)
		s.True(cookie.HttpOnly)
	})

	s.Run("bad json", func() {
		rr, env := s.do(http.MethodPost, "/auth/login", "", `{bad`)
		s.Equal(http.StatusBadRequest, rr.Code)
		s.Equal("bad_request", env.Error)
	})

	s.Run("wrong password", func() {
		s.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeUnauthorized, "invalid username or password"))
		rr, env := s.do(http.MethodPost, "/auth/login", "", `{"username":"alice","password":"wrong-pass"}`)
		s.Equal(http.StatusUnauthorized, rr.Code)
		s.Equal("invalid username or password", env.Message)
	})
}

func (s *RouterSuite) TestLoginIsRateLimitedPerClient() {
	limiter := ratelimit.New(bucket.NewInMemoryBucketStore(), nil,
		ratelimit.WithLimit(ratelimitModels.ClassAuth, ratelimitModels.Limit{Requests: 2, Window: time.Minute}))
	s.router = s.newRouter(Config{RateLimit: limiter})

	s.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeUnauthorized, "invalid username or password")).Times(2)

	for range 2 {
		rr, _ := s.do(http.MethodPost, "/auth/login", "", `{"username":"alice","password":"wrong-pass"}`)
		s.Equal(http.StatusUnauthorized, rr.Code)
	}
	rr, env := s.do(http.MethodPost, "/auth/login", "", `{"username":"alice","password":"wrong-pass"}`)
	s.Equal(http.StatusTooManyRequests, rr.Code)
	s.Equal("rate_limited", env.Error)
	s.NotEmpty(rr.Header().Get("Retry-After"))

	s.Run("reads on role routes are not limited", func() {
		s.claims.EXPECT().ListForCustomer(gomock.Any(), gomock.Any()).
			Return(result.OK([]*claimModels.Claim{}, "")).Times(3)
		for range 3 {
			rr, _ := s.do(http.MethodGet, "/customer/claims", "customer-5", "")
			s.Equal(http.StatusOK, rr.Code)
		}
	})
}

func (s *RouterSuite) TestAuthentication() {
	s.Run("missing credential", func() {
		rr, env := s.do(http.MethodGet, "/customer/claims", "", "")
		s.Equal(http.StatusUnauthorized, rr.Code)
		s.False(env.IsSuccess)
	})

	s.Run("invalid credential", func() {
		rr, _ := s.do(http.MethodGet, "/customer/claims", "forged", "")
		s.Equal(http.StatusUnauthorized, rr.Code)
	})

	s.Run("wrong role", func() {
		rr, env := s.do(http.MethodGet, "/customer/claims", "agent-3", "")
		s.Equal(http.StatusForbidden, rr.Code)
		s.Equal("forbidden", env.Error)
	})

	s.Run("cookie credential", func() {
		s.claims.EXPECT().ListForCustomer(gomock.Any(), gomock.Any()).
			Return(result.OK([]*claimModels.Claim{{ID: 1}}, "claims retrieved successfully"))
		req := httptest.NewRequest(http.MethodGet, "/customer/claims", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "customer-5"})
		rr := httptest.NewRecorder()
		s.router.ServeHTTP(rr, req)
		s.Equal(http.StatusOK, rr.Code)
	})

	s.Run("role endpoint", func() {
		rr, env := s.do(http.MethodGet, "/auth/role", "agent-3", "")
		s.Equal(http.StatusOK, rr.Code)
		s.Equal(map[string]any{"role": "Agent"}, env.Data)
	})
}

func (s *RouterSuite) TestLogoutClearsCookie() {
	s.auth.EXPECT().Logout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, p identity.Principal) error {
		s.Equal("jti-c5", p.TokenID)
		return nil
	})
	rr, env := s.do(http.MethodPost, "/auth/logout", "customer-5", "")
	s.Equal(http.StatusOK, rr.Code)
	s.True(env.IsSuccess)
	s.Contains(rr.Header().Get("Set-Cookie"), "jwt=;")
}

func (s *RouterSuite) TestSubmitDefaultsToCallerCustomerID() {
	s.policyRequests.EXPECT().Submit(gomock.Any(), gomock.Any(), domain.CustomerID(5), domain.AvailablePolicyID(2)).
		Return(result.OK(&policyRequestModels.PolicyRequest{ID: 11}, "policy request submitted successfully"))

	rr, env := s.do(http.MethodPost, "/customer/policy-requests", "customer-5", `{"availablePolicyId":2}`)
	s.Equal(http.StatusCreated, rr.Code)
	s.True(env.IsSuccess)
}

func (s *RouterSuite) TestFileClaimRoutesByRole() {
	s.claims.EXPECT().File(gomock.Any(), gomock.Any(), gomock.Any(), domain.RoleAgent).
		Return(result.OK(&claimModels.Claim{ID: 8}, "claim filed successfully"))
	rr, _ := s.do(http.MethodPost, "/agent/claims", "agent-3", `{"policyId":4,"customerId":5,"amount":"1000","details":"hail"}`)
	s.Equal(http.StatusCreated, rr.Code)

	rr, env := s.do(http.MethodPost, "/customer/claims", "customer-5", `{"policyId":4,"customerId":5,"amount":"0"}`)
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("validation_error", env.Error)
}

func (s *RouterSuite) TestAdjudicateClaim() {
	s.Run("approve", func() {
		s.claims.EXPECT().Adjudicate(gomock.Any(), gomock.Cond(isAdmin), domain.ClaimID(8), claimModels.DecisionApprove).
			Return(result.OK(true, "claim approved successfully"))
		rr, env := s.do(http.MethodPost, "/admin/claims/8/adjudicate", "admin", `{"decision":"approve"}`)
		s.Equal(http.StatusOK, rr.Code)
		s.Equal("claim approved successfully", env.Message)
	})

	s.Run("unknown decision", func() {
		rr, _ := s.do(http.MethodPost, "/admin/claims/8/adjudicate", "admin", `{"decision":"maybe"}`)
		s.Equal(http.StatusBadRequest, rr.Code)
	})

	s.Run("negative id reaches the workflow", func() {
		s.claims.EXPECT().Adjudicate(gomock.Any(), gomock.Any(), domain.ClaimID(-1), claimModels.DecisionApprove).
			Return(result.Failf[bool](dErrors.CodeValidation, "claim id must be positive"))
		rr, env := s.do(http.MethodPost, "/admin/claims/-1/adjudicate", "admin", `{"decision":"approve"}`)
		s.Equal(http.StatusBadRequest, rr.Code)
		s.Equal("claim id must be positive", env.Message)
	})

	s.Run("customers cannot adjudicate", func() {
		rr, _ := s.do(http.MethodPost, "/admin/claims/8/adjudicate", "customer-5", `{"decision":"approve"}`)
		s.Equal(http.StatusForbidden, rr.Code)
	})
}

func (s *RouterSuite) TestApprovePolicyRequest() {
	s.policyRequests.EXPECT().Approve(gomock.Any(), gomock.Any(), domain.PolicyRequestID(42), domain.AgentID(3)).
		Return(result.Failf[*policyModels.Policy](dErrors.CodeInvalidTransition, "policy request is no longer pending"))
	rr, env := s.do(http.MethodPost, "/admin/policy-requests/42/approve", "admin", `{"agentId":3}`)
	s.Equal(http.StatusConflict, rr.Code)
	s.Equal("invalid_transition", env.Error)

	rr, _ = s.do(http.MethodPost, "/admin/policy-requests/abc/approve", "admin", `{"agentId":3}`)
	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *RouterSuite) TestListPolicyRequestsParsesQuery() {
	s.policyRequests.EXPECT().ListAll(gomock.Any(), gomock.Any(), 3, 10, domain.StatusPending, domain.StatusApproved).
		Return(result.OK(paging.Page[*policyRequestModels.PolicyRequest]{PageNumber: 3, PageSize: 10}, "ok"))
	rr, _ := s.do(http.MethodGet, "/admin/policy-requests?page=3&status=Pending,approved", "admin", "")
	s.Equal(http.StatusOK, rr.Code)

	rr, env := s.do(http.MethodGet, "/admin/policy-requests?page=x", "admin", "")
	s.Equal(http.StatusBadRequest, rr.Code)
	s.Equal("page must be an integer", env.Message)
}

func (s *RouterSuite) TestMetricsEndpoint() {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	s.Equal(http.StatusOK, rr.Code)
}

func (s *RouterSuite) TestHealthReportsDependencies() {
	s.Run("all healthy", func() {
		s.router = s.newRouter(Config{HealthChecks: map[string]func(context.Context) error{
			"postgres": func(context.Context) error { return nil },
		}})
		rr := httptest.NewRecorder()
		s.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		s.Equal(http.StatusOK, rr.Code)
		var body map[string]string
		s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
		s.Equal(map[string]string{"status": "ok", "postgres": "ok"}, body)
	})

	s.Run("one failing", func() {
		s.router = s.newRouter(Config{HealthChecks: map[string]func(context.Context) error{
			"postgres": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return errors.New("connection refused") },
		}})
		rr := httptest.NewRecorder()
		s.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		s.Equal(http.StatusServiceUnavailable, rr.Code)
		var body map[string]string
		s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
		s.Equal("degraded", body["status"])
		s.Equal("unavailable", body["redis"])
		s.Equal("ok", body["postgres"])
	})
}
