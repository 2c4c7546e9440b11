package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
	"github.com/m04kA/SMC-YogaStore/internal/api/middleware"
	"github.com/m04kA/SMC-YogaStore/internal/service/cart"
	"github.com/m04kA/SMC-YogaStore/internal/service/cart/models"
)

const (
	msgMissingSession     = "отсутствует ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса, ожидается {\"classId\": \"...\"}"
	msgClassNotFound      = "занятие не найдено"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /cart/items - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req models.AddItemRequest
	if _, err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Add(r.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidInput):
			h.logger.Warn("POST /cart/items - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, cart.ErrClassNotFound):
			h.logger.Warn("POST /cart/items - Class not found: class_id=%s", req.ClassID)
			handlers.RespondNotFound(w, msgClassNotFound)

		default:
			h.logger.Error("POST /cart/items - Failed to add item: session=%s, class_id=%s, error=%v",
				sessionID, req.ClassID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/items - Item added: session=%s, item_id=%s, class_id=%s",
		sessionID, item.ID, req.ClassID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}
