package list_instructors

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

// Handle GET /api/v1/instructors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListInstructors(r.Context())
	if err != nil {
		h.logger.Error("GET /instructors - Failed to list instructors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /instructors - Instructors retrieved successfully: count=%d", len(result.Instructors))
	handlers.RespondJSON(w, http.StatusOK, result.Instructors)
}
