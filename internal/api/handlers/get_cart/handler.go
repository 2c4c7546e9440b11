package get_cart

import (
	"net/http"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
	"github.com/m04kA/SMC-YogaStore/internal/api/middleware"
)

const (
	msgMissingSession = "отсутствует ID сессии"
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

// Handle GET /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем ключ сессии из контекста (через middleware Session)
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /cart - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	result, err := h.service.List(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /cart - Failed to get cart: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cart - Cart retrieved successfully: session=%s, items=%d", sessionID, result.TotalItems)
	handlers.RespondJSON(w, http.StatusOK, result)
}
