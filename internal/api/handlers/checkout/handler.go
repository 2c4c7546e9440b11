package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-YogaStore/internal/api/handlers"
	"github.com/m04kA/SMC-YogaStore/internal/api/middleware"
	checkoutUC "github.com/m04kA/SMC-YogaStore/internal/usecase/checkout"
)

const (
	msgMissingSession     = "отсутствует ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный email или данные покупателя"
	msgEmptyCart          = "корзина пуста"
	msgConflict           = "оформление заказа уже выполняется, повторите запрос с тем же checkoutId"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
// 201 - бронирование создано, 200 - повтор уже выполненной попытки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /checkout - Missing session ID")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req CheckoutRequest
	if _, err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, checkoutUC.ErrInvalidInput):
			h.logger.Warn("POST /checkout - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkoutUC.ErrEmptyCart):
			h.logger.Warn("POST /checkout - Empty cart: session=%s", sessionID)
			handlers.RespondUnprocessable(w, msgEmptyCart)

		case errors.Is(err, checkoutUC.ErrCheckoutConflict):
			h.logger.Warn("POST /checkout - Conflict: session=%s, checkout_id=%s", sessionID, req.CheckoutID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /checkout - Failed to checkout: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.Replayed {
		h.logger.Info("POST /checkout - Checkout replayed: booking_id=%s, checkout_id=%s", result.BookingID, result.CheckoutID)
		handlers.RespondJSON(w, http.StatusOK, response)
		return
	}

	h.logger.Info("POST /checkout - Booking created successfully: booking_id=%s, session=%s, classes=%d",
		result.BookingID, sessionID, result.TotalClasses)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
