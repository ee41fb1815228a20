package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	accountModels "ims/internal/account/models"
	claimModels "ims/internal/claim/models"
	policyRequestModels "ims/internal/policyrequest/models"
	"ims/pkg/domain"
	"ims/pkg/platform/httputil"
	"ims/pkg/requestcontext"
)

func (h *Handler) registerCustomer(r chi.Router) {
	r.Get("/profile", h.handleCustomerProfile)
	r.Put("/profile", h.handleUpdateCustomerProfile)
	r.Get("/policies", h.handleCustomerPolicies)
	r.Get("/policy-requests", h.handleCustomerPolicyRequests)
	r.Post("/policy-requests", h.handleSubmitPolicyRequest)
	r.Get("/policy-requests/{id}", h.handleGetPolicyRequest)
	r.Get("/claims", h.handleCustomerClaims)
	r.Post("/claims", h.handleFileClaim(domain.RoleCustomer))
	r.Get("/notifications", h.handleCustomerNotifications)
}

func (h *Handler) handleCustomerProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Accounts.CustomerProfile(r.Context(), p))
}

func (h *Handler) handleUpdateCustomerProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	upd, ok := httputil.DecodeAndPrepare[accountModels.ProfileUpdate](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Accounts.UpdateCustomerProfile(ctx, p, *upd))
}

func (h *Handler) handleCustomerPolicies(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Policies.ListForCustomer(r.Context(), p))
}

func (h *Handler) handleCustomerPolicyRequests(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.PolicyRequests.ListForCustomer(r.Context(), p))
}

// handleSubmitPolicyRequest files a request. customerId may be omitted, in
// which case the caller's own id is used; a different id is refused by the
// workflow.
func (h *Handler) handleSubmitPolicyRequest(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[policyRequestModels.SubmitRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	customerID := req.CustomerID
	if customerID == 0 {
		customerID, _ = p.CustomerID()
	}
	httputil.WriteResult(w, http.StatusCreated, h.services.PolicyRequests.Submit(ctx, p, customerID, req.AvailablePolicyID))
}

func (h *Handler) handleGetPolicyRequest(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, domain.ParsePolicyRequestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.PolicyRequests.Get(r.Context(), p, id))
}

func (h *Handler) handleCustomerClaims(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Claims.ListForCustomer(r.Context(), p))
}

// handleFileClaim is shared by the customer and agent routes; filedBy decides
// which identity check the workflow applies.
func (h *Handler) handleFileClaim(filedBy domain.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := h.principal(w, r)
		if !ok {
			return
		}
		ctx := r.Context()
		req, ok := httputil.DecodeAndPrepare[claimModels.FileRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
		if !ok {
			return
		}
		httputil.WriteResult(w, http.StatusCreated, h.services.Claims.File(ctx, p, *req, filedBy))
	}
}

func (h *Handler) handleCustomerNotifications(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Notifications.ListForCustomer(r.Context(), p))
}
