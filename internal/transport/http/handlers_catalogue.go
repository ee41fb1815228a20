package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	catalogueModels "ims/internal/catalogue/models"
	"ims/internal/identity"
	"ims/pkg/domain"
	"ims/pkg/platform/httputil"
	"ims/pkg/requestcontext"
)

// registerCatalogue mounts browsing for any signed-in role. Changes go through
// /admin/catalogue.
func (h *Handler) registerCatalogue(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(identity.RequireRole(h.resolver, h.logger))
		r.Get("/catalogue", h.handleListCatalogue)
		r.Get("/catalogue/{id}", h.handleGetCatalogue)
	})
}

func (h *Handler) handleListCatalogue(w http.ResponseWriter, r *http.Request) {
	page, size, err := pageParams(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Catalogue.List(r.Context(), page, size))
}

func (h *Handler) handleGetCatalogue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, domain.ParseAvailablePolicyID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Catalogue.Get(r.Context(), id))
}

func (h *Handler) handleCreateCatalogue(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	in, ok := httputil.DecodeAndPrepare[catalogueModels.AvailablePolicyInput](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusCreated, h.services.Catalogue.Create(ctx, p, *in))
}

func (h *Handler) handleUpdateCatalogue(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, domain.ParseAvailablePolicyID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ctx := r.Context()
	in, ok := httputil.DecodeAndPrepare[catalogueModels.AvailablePolicyInput](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Catalogue.Update(ctx, p, id, *in))
}

func (h *Handler) handleDeleteCatalogue(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, domain.ParseAvailablePolicyID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteResult(w, http.StatusOK, h.services.Catalogue.Delete(r.Context(), p, id))
}
