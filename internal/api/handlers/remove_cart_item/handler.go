package remove_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
	"github.com/m04kA/SMC-YogaStore/internal/api/middleware"
	"github.com/m04kA/SMC-YogaStore/internal/service/cart"
)

const (
	msgMissingSession = "отсутствует ID сессии"
	msgInvalidItemID  = "некорректный ID позиции корзины"
	msgNotFound       = "позиция корзины не найдена"
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

// Handle DELETE /api/v1/cart/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /cart/items/{id} - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	itemID := mux.Vars(r)["itemId"]
	if !handlers.IsValidID(itemID) {
		h.logger.Warn("DELETE /cart/items/{id} - Invalid item ID: %q", itemID)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	if err := h.service.Remove(r.Context(), sessionID, itemID); err != nil {
		switch {
		case errors.Is(err, cart.ErrCartItemNotFound):
			h.logger.Warn("DELETE /cart/items/{id} - Item not found: session=%s, item_id=%s", sessionID, itemID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /cart/items/{id} - Failed to remove item: session=%s, item_id=%s, error=%v",
				sessionID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cart/items/{id} - Item removed: session=%s, item_id=%s", sessionID, itemID)
	w.WriteHeader(http.StatusNoContent)
}
