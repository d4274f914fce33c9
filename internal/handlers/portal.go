// handlers/portal.go - Client portal access
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/speakerbase/backoffice/internal/models"
	"github.com/speakerbase/backoffice/internal/store"
)

type portalGrantInput struct {
	TTLHours      int      `json:"ttl_hours" validate:"omitempty,gt=0"`
	AllowedFields []string `json:"allowed_fields"`
}

// portalView is the scoped shape an external client sees; identity and
// financial columns stay behind the admin API.
type portalView struct {
	ProjectName   string                 `json:"project_name"`
	Status        models.Status          `json:"status"`
	Details       *models.ProjectDetails `json:"project_details"`
	AllowedFields []string               `json:"allowed_fields"`
	ExpiresAt     *time.Time             `json:"expires_at"`
}

// GrantPortal serves POST /api/projects/{id}/portal. A new grant replaces
// any existing token.
func (h *Handler) GrantPortal(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	in := portalGrantInput{}
	if r.ContentLength > 0 && !decodeAndValidate(w, r, &in) {
		return
	}

	ttl := h.PortalTTL
	if in.TTLHours > 0 {
		ttl = time.Duration(in.TTLHours) * time.Hour
	}

	p, err := h.DB.GrantPortalAccess(r.Context(), id, ttl, in.AllowedFields)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// RevokePortal serves DELETE /api/projects/{id}/portal.
func (h *Handler) RevokePortal(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	found, err := h.DB.RevokePortalAccess(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PortalProject serves GET /api/portal/{token}, the one public read.
// Expired and unknown tokens are indistinguishable to the caller.
func (h *Handler) PortalProject(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	p, err := h.DB.GetByPortalToken(r.Context(), token)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "portal link is invalid or has expired")
		return
	}

	respondJSON(w, http.StatusOK, portalView{
		ProjectName:   p.ProjectName,
		Status:        p.Status,
		Details:       p.Details,
		AllowedFields: p.PortalAllowedFields,
		ExpiresAt:     p.PortalExpiresAt,
	})
}
