package list_classes

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
	"github.com/m04kA/SMC-YogaStore/internal/service/catalog"
)

const (
	msgInvalidFilter = "некорректные параметры поиска: dayOfWeek - Monday..Sunday, даты - YYYY-MM-DD, startDate <= endDate, order - asc|desc"
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

// Handle GET /api/v1/classes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := requestFromQuery(r.URL.Query())

	result, err := h.service.SearchClasses(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /classes - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /classes - Failed to list classes: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /classes - Classes retrieved successfully: count=%d", len(result.Classes))
	handlers.RespondJSON(w, http.StatusOK, result.Classes)
}
