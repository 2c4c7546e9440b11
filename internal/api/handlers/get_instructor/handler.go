package get_instructor

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
	"github.com/m04kA/SMC-YogaStore/internal/service/catalog"
)

const (
	msgInvalidID = "некорректный ID инструктора"
	msgNotFound  = "инструктор не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors/{instructorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["instructorId"]
	if !handlers.IsValidCatalogID(id) {
		h.logger.Warn("GET /instructors/{id} - Invalid instructor ID: %q", id)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetInstructor(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInstructorNotFound):
			h.logger.Warn("GET /instructors/{id} - Not found: instructor_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /instructors/{id} - Failed to get instructor: instructor_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /instructors/{id} - Retrieved successfully: instructor_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
