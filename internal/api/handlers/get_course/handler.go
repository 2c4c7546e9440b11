package get_course

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
	"github.com/m04kA/SMC-YogaStore/internal/service/catalog"
)

const (
	msgInvalidID = "некорректный ID курса"
	msgNotFound  = "курс не найден"
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

// Handle GET /api/v1/courses/{courseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["courseId"]
	if !handlers.IsValidCatalogID(id) {
		h.logger.Warn("GET /courses/{id} - Invalid course ID: %q", id)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCourseNotFound):
			h.logger.Warn("GET /courses/{id} - Not found: course_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /courses/{id} - Failed to get course: course_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courses/{id} - Retrieved successfully: course_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
