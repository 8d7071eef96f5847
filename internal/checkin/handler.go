// AngelaMos | 2026
// handler.go

package checkin

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
	r.Route("/checkins", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.SubmitCheckin)
	})

	r.Route("/records", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListRecords)
		r.Get("/all", h.ListAllRecords)
	})
}

func (h *Handler) SubmitCheckin(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req SubmitCheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	view, err := h.service.Submit(r.Context(), userID, req)
	if err != nil {
		switch {
		case core.IsPrecondition(err):
			core.JSONError(w, core.PreconditionError(err))
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid check-in date")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, view)
}

// ListRecords returns a plan's records, narrowed to one phase when a
// phase_id query parameter is present.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	planID := r.URL.Query().Get("plan_id")
	if planID == "" {
		core.BadRequest(w, "plan_id is required")
		return
	}

	phaseID := r.URL.Query().Get("phase_id")

	var (
		views []RecordResponse
		err   error
	)
	if phaseID != "" {
		views, err = h.service.ListByPhase(r.Context(), userID, planID, phaseID)
	} else {
		views, err = h.service.ListByPlan(r.Context(), userID, planID)
	}
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, views)
}

func (h *Handler) ListAllRecords(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	views, err := h.service.ListAll(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, views)
}
