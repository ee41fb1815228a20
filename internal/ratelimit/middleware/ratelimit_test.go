package middleware

//go:generate mockgen -source=ratelimit.go -destination=mocks/mocks.go -package=mocks BucketStore

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ims/internal/ratelimit/metrics"
	"ims/internal/ratelimit/middleware/mocks"
	"ims/internal/ratelimit/models"
	"ims/pkg/requestcontext"
	"ims/pkg/result"
)

type RateLimitSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	buckets *mocks.MockBucketStore
	metrics *metrics.Metrics
	calls   int
	next    http.Handler
}

func TestRateLimitSuite(t *testing.T) {
	suite.Run(t, new(RateLimitSuite))
}

func (s *RateLimitSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.buckets = mocks.NewMockBucketStore(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.calls = 0
	s.next = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.calls++
		w.WriteHeader(http.StatusNoContent)
	})
}

func (s *RateLimitSuite) request(method string) *http.Request {
	r := httptest.NewRequest(method, "/auth/login", nil)
	ctx := requestcontext.WithClientMetadata(r.Context(), "203.0.113.7", "curl/8.0", "")
	return r.WithContext(ctx)
}

func (s *RateLimitSuite) TestAllowedRequestPassesWithHeaders() {
	reset := time.Date(2026, 3, 1, 9, 1, 0, 0, time.UTC)
	s.buckets.EXPECT().
		Allow(gomock.Any(), "ims:rl:auth:203.0.113.7", 10, time.Minute).
		Return(&models.RateLimitResult{Allowed: true, Limit: 10, Remaining: 9, ResetAt: reset}, nil)

	m := New(s.buckets, nil, WithMetrics(s.metrics))
	rec := httptest.NewRecorder()
	m.RateLimit(models.ClassAuth)(s.next).ServeHTTP(rec, s.request(http.MethodPost))

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(1, s.calls)
	s.Equal("10", rec.Header().Get("X-RateLimit-Limit"))
	s.Equal("9", rec.Header().Get("X-RateLimit-Remaining"))
}

func (s *RateLimitSuite) TestExhaustedBudgetIsRejected() {
	s.buckets.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RateLimitResult{Allowed: false, Limit: 10, RetryAfter: 42, ResetAt: time.Now()}, nil)

	m := New(s.buckets, nil, WithMetrics(s.metrics))
	rec := httptest.NewRecorder()
	m.RateLimit(models.ClassAuth)(s.next).ServeHTTP(rec, s.request(http.MethodPost))

	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal(0, s.calls)
	s.Equal("42", rec.Header().Get("Retry-After"))

	var body result.Envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.False(body.IsSuccess)
	s.Equal("rate_limited", body.Error)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Rejected.WithLabelValues("auth")))
}

func (s *RateLimitSuite) TestStoreFailureFailsOpen() {
	s.buckets.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	m := New(s.buckets, nil, WithMetrics(s.metrics))
	rec := httptest.NewRecorder()
	m.RateLimit(models.ClassAuth)(s.next).ServeHTTP(rec, s.request(http.MethodPost))

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(1, s.calls)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.CheckErrors))
}

func (s *RateLimitSuite) TestWritesOnlySkipsReads() {
	m := New(s.buckets, nil)
	rec := httptest.NewRecorder()
	m.RateLimitWrites(models.ClassWrite)(s.next).ServeHTTP(rec, s.request(http.MethodGet))

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(1, s.calls)
}

func (s *RateLimitSuite) TestConfiguredLimitOverridesDefault() {
	s.buckets.EXPECT().
		Allow(gomock.Any(), "ims:rl:write:203.0.113.7", 3, 10*time.Second).
		Return(&models.RateLimitResult{Allowed: true, Limit: 3, Remaining: 2}, nil)

	m := New(s.buckets, nil, WithLimit(models.ClassWrite, models.Limit{Requests: 3, Window: 10 * time.Second}))
	rec := httptest.NewRecorder()
	m.RateLimitWrites(models.ClassWrite)(s.next).ServeHTTP(rec, s.request(http.MethodPost))

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *RateLimitSuite) TestDisabledNeverConsultsStore() {
	m := New(s.buckets, nil, WithDisabled(true))
	rec := httptest.NewRecorder()
	m.RateLimit(models.ClassAuth)(s.next).ServeHTTP(rec, s.request(http.MethodPost))

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(1, s.calls)
}
