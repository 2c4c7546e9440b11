package list_courses

import (
	"net/http"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
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

// Handle GET /api/v1/courses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCourses(r.Context())
	if err != nil {
		h.logger.Error("GET /courses - Failed to list courses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courses - Courses retrieved successfully: count=%d", len(result.Courses))
	handlers.RespondJSON(w, http.StatusOK, result.Courses)
}
