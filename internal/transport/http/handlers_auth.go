package httptransport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	accountModels "ims/internal/account/models"
	authModels "ims/internal/auth/models"
	"ims/internal/identity"
	"ims/pkg/platform/httputil"
	"ims/pkg/platform/middleware/auth"
	"ims/pkg/requestcontext"
	"ims/pkg/result"
)

// RoleResponse is the body of GET /auth/role.
type RoleResponse struct {
	Role string `json:"role"`
}

func (h *Handler) registerAuth(r chi.Router) {
	r.With(h.limitAuth()).Post("/auth/login", h.handleLogin)
	r.With(h.limitAuth()).Post("/auth/register", h.handleRegister)
	r.Group(func(r chi.Router) {
		r.Use(identity.RequireRole(h.resolver, h.logger))
		r.Post("/auth/logout", h.handleLogout)
		r.Get("/auth/role", h.handleRole)
		r.Delete("/auth/me", h.handleDeleteAccount)
	})
}

// handleLogin checks credentials and answers with the token, also set as the
// jwt cookie for browser clients.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[authModels.LoginRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	res, err := h.services.Auth.Login(ctx, *req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	})
	httputil.WriteResult(w, http.StatusOK, result.OK(res, "login successful"))
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[accountModels.RegisterCustomerRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusCreated, h.services.Accounts.RegisterCustomer(ctx, *req))
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if err := h.services.Auth.Logout(r.Context(), p); err != nil {
		httputil.WriteError(w, err)
		return
	}
	clearCookie(w, h.cfg.SecureCookies)
	httputil.WriteResult(w, http.StatusOK, result.OK(true, "logged out"))
}

func (h *Handler) handleRole(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, result.OK(RoleResponse{Role: p.Role.String()}, "role resolved"))
}

func (h *Handler) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	if err := h.services.Auth.DeleteAccount(r.Context(), p); err != nil {
		httputil.WriteError(w, err)
		return
	}
	clearCookie(w, h.cfg.SecureCookies)
	httputil.WriteResult(w, http.StatusOK, result.OK(true, "account deleted"))
}

func clearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
