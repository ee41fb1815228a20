package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	accountModels "ims/internal/account/models"
	"ims/pkg/domain"
	"ims/pkg/platform/httputil"
	"ims/pkg/requestcontext"
)

func (h *Handler) registerAgent(r chi.Router) {
	r.Get("/profile", h.handleAgentProfile)
	r.Put("/profile", h.handleUpdateAgentProfile)
	r.Get("/policies", h.handleAssignedPolicies)
	r.Get("/claims", h.handleAgentClaims)
	r.Post("/claims", h.handleFileClaim(domain.RoleAgent))
	r.Get("/notifications", h.handleAgentNotifications)
}

func (h *Handler) handleAgentProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Accounts.AgentProfile(r.Context(), p))
}

func (h *Handler) handleUpdateAgentProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	upd, ok := httputil.DecodeAndPrepare[accountModels.ProfileUpdate](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Accounts.UpdateAgentProfile(ctx, p, *upd))
}

func (h *Handler) handleAssignedPolicies(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Policies.ListAssigned(r.Context(), p))
}

func (h *Handler) handleAgentClaims(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Claims.ListFiledByAgent(r.Context(), p))
}

func (h *Handler) handleAgentNotifications(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Notifications.ListForAgent(r.Context(), p))
}
