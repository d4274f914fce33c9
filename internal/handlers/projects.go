// handlers/projects.go - Project API handlers
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/speakerbase/backoffice/internal/models"
	"github.com/speakerbase/backoffice/internal/store"
)

const defaultPortalTTL = 7 * 24 * time.Hour

// Handler holds dependencies
type Handler struct {
	DB                  store.Store
	StripeWebhookSecret string
	PortalTTL           time.Duration
}

// New creates a new Handler
func New(db store.Store) *Handler {
	return &Handler{DB: db, PortalTTL: defaultPortalTTL}
}

// ListProjects serves GET /api/projects. One selector applies per request:
// search, status, priority, or view (active|overdue); the default listing
// is the active book.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		projects []models.Project
		err      error
	)
	switch {
	case q.Get("search") != "":
		projects, err = h.DB.Search(ctx, q.Get("search"))
	case q.Get("status") != "":
		projects, err = h.DB.ListByStatus(ctx, models.Status(q.Get("status")))
	case q.Get("priority") != "":
		projects, err = h.DB.ListByPriority(ctx, models.Priority(q.Get("priority")))
	case q.Get("view") == "overdue":
		projects, err = h.DB.ListOverdue(ctx)
	default:
		projects, err = h.DB.ListActive(ctx)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if projects == nil {
		projects = []models.Project{}
	}
	respondJSON(w, http.StatusOK, projects)
}

// CreateProject serves POST /api/projects.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in models.CreateInput
	if !decodeAndValidate(w, r, &in) {
		return
	}

	p, err := h.DB.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		respondError(w, http.StatusServiceUnavailable, "project store unavailable")
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

// GetProject serves GET /api/projects/{id}.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	p, err := h.DB.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// UpdateProject serves PATCH /api/projects/{id}.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := projectID(w, r)
	if !ok {
		return
	}

	var in models.UpdateInput
	if !decodeAndValidate(w, r, &in) {
		return
	}

	p, err := h.DB.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// Metrics serves GET /api/metrics for the dashboard.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.DB.GetMetrics(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if m == nil {
		respondError(w, http.StatusServiceUnavailable, "project store unavailable")
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func projectID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return 0, false
	}
	return id, true
}
