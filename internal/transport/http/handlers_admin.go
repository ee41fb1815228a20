package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	accountModels "ims/internal/account/models"
	claimModels "ims/internal/claim/models"
	policyRequestModels "ims/internal/policyrequest/models"
	"ims/pkg/domain"
	"ims/pkg/platform/httputil"
	platformstrings "ims/pkg/platform/strings"
	"ims/pkg/requestcontext"
	"ims/pkg/result"
)

// AdjudicateRequest is the body of POST /admin/claims/{id}/adjudicate.
type AdjudicateRequest struct {
	Decision string `json:"decision"`

	parsed claimModels.Decision
}

func (r *AdjudicateRequest) Validate() error {
	d, err := claimModels.ParseDecision(r.Decision)
	if err != nil {
		return err
	}
	r.parsed = d
	return nil
}

func (h *Handler) registerAdmin(r chi.Router) {
	r.Get("/users", h.handleListUsers)

	r.Post("/customers", h.handleAddCustomer)
	r.Get("/customers", h.handleListCustomers)
	r.Get("/customers/{id}", h.handleGetCustomer)
	r.Get("/customers/{id}/claims", h.handleCustomerClaimsByID)

	r.Post("/agents", h.handleAddAgent)
	r.Get("/agents", h.handleListAgents)
	r.Get("/agents/{id}", h.handleGetAgent)

	r.Post("/catalogue", h.handleCreateCatalogue)
	r.Put("/catalogue/{id}", h.handleUpdateCatalogue)
	r.Delete("/catalogue/{id}", h.handleDeleteCatalogue)

	r.Get("/policy-requests", h.handleListPolicyRequests)
	r.Get("/policy-requests/{id}", h.handleGetPolicyRequest)
	r.Post("/policy-requests/{id}/approve", h.handleApprovePolicyRequest)
	r.Post("/policy-requests/{id}/reject", h.handleRejectPolicyRequest)

	r.Get("/claims", h.handleListClaims)
	r.Post("/claims/{id}/adjudicate", h.handleAdjudicateClaim)
	r.Get("/claims/{id}/filed-by-agent", h.handleClaimFiledByAgent)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.Auth.ListUsers(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, result.OK(users, "users retrieved successfully"))
}

func (h *Handler) handleAddCustomer(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[accountModels.RegisterCustomerRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusCreated, h.services.Accounts.AddCustomer(ctx, p, *req))
}

func (h *Handler) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	page, size, err := pageParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Accounts.ListCustomers(r.Context(), p, page, size))
}

func (h *Handler) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, domain.ParseCustomerID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Accounts.GetCustomer(r.Context(), p, id))
}

func (h *Handler) handleCustomerClaimsByID(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, domain.ParseCustomerID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Claims.ListByCustomerID(r.Context(), p, id))
}

func (h *Handler) handleAddAgent(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[accountModels.AddAgentRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusCreated, h.services.Accounts.AddAgent(ctx, p, *req))
}

func (h *Handler) handleListAgents(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	page, size, err := pageParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Accounts.ListAgents(r.Context(), p, page, size))
}

func (h *Handler) handleGetAgent(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, domain.ParseAgentID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Accounts.GetAgent(r.Context(), p, id))
}

// handleListPolicyRequests pages through requests; ?status= takes a comma
// separated filter such as "pending,approved".
func (h *Handler) handleListPolicyRequests(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	page, size, err := pageParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var statuses []domain.Status
	for _, part := range platformstrings.SplitListLower(r.URL.Query().Get("status"), ",") {
		statuses = append(statuses, domain.Status(part))
	}
	httputil.WriteResult(w, http.StatusOK, h.services.PolicyRequests.ListAll(r.Context(), p, page, size, statuses...))
}

func (h *Handler) handleApprovePolicyRequest(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, domain.ParsePolicyRequestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[policyRequestModels.ApproveRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.PolicyRequests.Approve(ctx, p, id, req.AgentID))
}

func (h *Handler) handleRejectPolicyRequest(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, domain.ParsePolicyRequestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.PolicyRequests.Reject(r.Context(), p, id))
}

func (h *Handler) handleListClaims(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	page, size, err := pageParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Claims.ListAll(r.Context(), p, page, size))
}

func (h *Handler) handleAdjudicateClaim(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, domain.ParseClaimID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[AdjudicateRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Claims.Adjudicate(ctx, p, id, req.parsed))
}

func (h *Handler) handleClaimFiledByAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, domain.ParseClaimID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Claims.WasFiledByAgent(r.Context(), id))
}
