// AngelaMos | 2026
// handler.go

package habit

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
	r.Route("/habits", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/me", h.GetMyHabit)
		r.Put("/me", h.UpsertMyHabit)
	})
}

func (h *Handler) GetMyHabit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	habit, err := h.service.GetByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "smoking habit")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToHabitResponse(habit))
}

func (h *Handler) UpsertMyHabit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req UpsertHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	habit, err := h.service.Upsert(r.Context(), userID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToHabitResponse(habit))
}
