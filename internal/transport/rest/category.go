package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/admincatalog-backend/internal/service/category"
	"github.com/heartmarshall/admincatalog-backend/pkg/optional"
	"github.com/heartmarshall/admincatalog-backend/pkg/result"
)

// categoryService defines the minimal interface needed by CategoryHandler.
type categoryService interface {
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) result.Result[category.CategoryResponse]
	GetCategory(ctx context.Context, input category.GetCategoryInput) result.Result[category.CategoryResponse]
	UpdateCategory(ctx context.Context, input category.UpdateCategoryInput) result.Result[result.Unit]
	ActivateCategory(ctx context.Context, input category.SetActiveInput) result.Result[result.Unit]
	DeactivateCategory(ctx context.Context, input category.SetActiveInput) result.Result[result.Unit]
	ListCategories(ctx context.Context, input category.ListCategoriesInput) result.Result[category.ListCategoriesResult]
}

// CategoryHandler serves the category REST endpoints.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

// Routes mounts the category endpoints on r.
func (h *CategoryHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.Update)
		r.Post("/activate", h.Activate)
		r.Post("/deactivate", h.Deactivate)
	})
}

// Create handles POST /api/v1/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req category.CreateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := h.svc.CreateCategory(r.Context(), req)
	if res.IsFailure() {
		h.handleFailure(w, r, res.Message())
		return
	}

	writeJSON(w, http.StatusCreated, res.Value())
}

// Get handles GET /api/v1/categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res := h.svc.GetCategory(r.Context(), category.GetCategoryInput{ID: id})
	if res.IsFailure() {
		h.handleFailure(w, r, res.Message())
		return
	}

	writeJSON(w, http.StatusOK, res.Value())
}

// Update handles PATCH /api/v1/categories/{id}. Absent fields are left
// unchanged.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req category.UpdateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ID = id

	h.respondEmpty(w, r, h.svc.UpdateCategory(r.Context(), req))
}

// Activate handles POST /api/v1/categories/{id}/activate.
func (h *CategoryHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.respondEmpty(w, r, h.svc.ActivateCategory(r.Context(), category.SetActiveInput{ID: id}))
}

// Deactivate handles POST /api/v1/categories/{id}/deactivate.
func (h *CategoryHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.respondEmpty(w, r, h.svc.DeactivateCategory(r.Context(), category.SetActiveInput{ID: id}))
}

// List handles GET /api/v1/categories?search=&sort=&page=&pageSize=.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid page")
		return
	}
	pageSize, err := intParam(q.Get("pageSize"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pageSize")
		return
	}

	res := h.svc.ListCategories(r.Context(), category.ListCategoriesInput{
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
		Page:     page,
		PageSize: pageSize,
	})
	if res.IsFailure() {
		h.handleFailure(w, r, res.Message())
		return
	}

	writeJSON(w, http.StatusOK, res.Value())
}

func (h *CategoryHandler) respondEmpty(w http.ResponseWriter, r *http.Request, res result.Result[result.Unit]) {
	if res.IsFailure() {
		h.handleFailure(w, r, res.Message())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleFailure writes the failure message verbatim with a status derived
// from its wording.
func (h *CategoryHandler) handleFailure(w http.ResponseWriter, r *http.Request, msg string) {
	status := statusFor(msg)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", slog.String("error", msg))
	}
	writeError(w, status, msg)
}

func statusFor(msg string) int {
	switch {
	case strings.Contains(msg, "not found"):
		return http.StatusNotFound
	case strings.Contains(msg, "already exists"):
		return http.StatusConflict
	case strings.HasPrefix(msg, "storage:"):
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// intParam parses an optional integer query parameter; empty means absent.
func intParam(v string) (optional.Value[int], error) {
	if v == "" {
		return optional.Empty[int](), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return optional.Empty[int](), err
	}
	return optional.Of(n), nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
