package get_class

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
	"github.com/m04kA/SMC-YogaStore/internal/service/catalog"
)

const (
	msgInvalidID = "некорректный ID занятия"
	msgNotFound  = "занятие не найдено"
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

// Handle GET /api/v1/classes/{classId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["classId"]
	if !handlers.IsValidCatalogID(id) {
		h.logger.Warn("GET /classes/{id} - Invalid class ID: %q", id)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetClass(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrClassNotFound):
			h.logger.Warn("GET /classes/{id} - Not found: class_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /classes/{id} - Failed to get class: class_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /classes/{id} - Retrieved successfully: class_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
