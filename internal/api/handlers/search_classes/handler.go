package search_classes

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
	"github.com/m04kA/SMC-YogaStore/internal/service/catalog"
)

const (
	msgInvalidQuery = "параметр q обязателен"
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

// Handle GET /api/v1/classes/search?q=
// Ищет по имени преподавателя, затем по дню недели, затем по дате
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /classes/search - Invalid query %q: %v", query, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /classes/search - Failed to search classes: q=%q, error=%v", query, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /classes/search - Search completed: q=%q, count=%d", query, len(result.Classes))
	handlers.RespondJSON(w, http.StatusOK, result.Classes)
}
