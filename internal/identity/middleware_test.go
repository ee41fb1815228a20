package identity_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ims/internal/identity"
	"ims/internal/identity/mocks"
	"ims/pkg/domain"
)

func TestRequireRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mocks.NewMockCredentialValidator(ctrl)
	resolver := identity.NewResolver(validator)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var seen identity.Principal
	handler := identity.Middleware(identity.RequireRole(resolver, logger, domain.RoleAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// second resolve in the same request hits the cache
			seen, _ = resolver.Resolve(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})))

	t.Run("missing credential is 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong role is 403", func(t *testing.T) {
		validator.EXPECT().Validate("cust").Return(&identity.Claims{
			SubjectID: domain.NewUserID(), Role: domain.RoleCustomer,
		}, nil)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer cust")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin via cookie passes and validates once", func(t *testing.T) {
		validator.EXPECT().Validate("adm").Return(&identity.Claims{
			SubjectID: domain.NewUserID(), Role: domain.RoleAdmin,
		}, nil).Times(1)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: "adm"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, domain.RoleAdmin, seen.Role)
	})
}
