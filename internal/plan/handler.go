// AngelaMos | 2026
// handler.go

package plan

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/quitwise/api/internal/core"
	"github.com/quitwise/api/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/plans", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.CreatePlan)
		r.Get("/active", h.GetActivePlan)
		r.Get("/{planID}", h.GetPlan)
		r.Put("/{planID}/status", h.UpdatePlanStatus)
		r.Delete("/{planID}", h.DeletePlan)
		r.Post("/{planID}/phases/{phaseID}/recompute", h.RecomputePhase)
	})
}

func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	view, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrDuplicateKey):
			core.Conflict(w, "an active plan already exists")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid plan dates")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, view)
}

func (h *Handler) GetActivePlan(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	view, err := h.service.GetActive(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "active plan")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, view)
}

func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	planID := chi.URLParam(r, "planID")

	view, err := h.service.Get(r.Context(), planID, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "plan")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, view)
}

func (h *Handler) UpdatePlanStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	planID := chi.URLParam(r, "planID")

	var req UpdatePlanStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	err := h.service.UpdateStatus(r.Context(), planID, userID, Status(req.Status))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "plan")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	planID := chi.URLParam(r, "planID")

	if err := h.service.Delete(r.Context(), planID, userID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "plan")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) RecomputePhase(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	planID := chi.URLParam(r, "planID")
	phaseID := chi.URLParam(r, "phaseID")

	view, err := h.service.RecomputePhaseStatus(
		r.Context(),
		planID,
		phaseID,
		userID,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "phase")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, view)
}
