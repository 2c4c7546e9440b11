package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
	"github.com/m04kA/SMC-YogaStore/internal/service/bookings"
)

const (
	msgInvalidEmail = "некорректный email пользователя"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{email}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// mux уже декодировал path, email приходит как есть
	email := mux.Vars(r)["email"]

	result, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{email}/bookings - Invalid email: %q", email)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		default:
			h.logger.Error("GET /users/{email}/bookings - Failed to get bookings: email=%s, error=%v",
				email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{email}/bookings - Bookings retrieved successfully: email=%s, count=%d",
		email, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
