package checkout

import (
	"time"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
)

// Исходы оформления заказа для метрик
const (
	OutcomeSuccess      = "success"
	OutcomeReplayed     = "replayed"
	OutcomeEmptyCart    = "empty_cart"
	OutcomeInvalidInput = "invalid_input"
	OutcomeConflict     = "conflict"
	OutcomeError        = "error"
)

// Request модель запроса на оформление заказа
type Request struct {
	OwnerID    string  // Идентификатор сессии корзины (X-Session-ID)
	UserEmail  string  // Email покупателя (обязателен)
	UserName   *string // Имя покупателя (опционально, используется при создании пользователя)
	CheckoutID string  // Идентификатор попытки от клиента (генерируется, если пуст)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID      string             // ID бронирования
	UserID         string             // ID пользователя
	UserEmail      string             // Email пользователя
	Classes        []domain.YogaClass // Снимки оформленных занятий
	TotalClasses   int                // Количество занятий
	Status         string             // Статус бронирования
	CheckoutID     string             // Идентификатор попытки (для повтора)
	UserBookingIDs []string           // ID созданных позиций (пусто при повторе)
	Replayed       bool               // true, если бронирование уже было создано этой попыткой

	CreatedAt time.Time // Время создания
}

func newResponse(b *domain.Booking, checkoutID string, userBookings []*domain.UserBooking, replayed bool) *Response {
	ids := make([]string, 0, len(userBookings))
	for _, ub := range userBookings {
		ids = append(ids, ub.ID)
	}

	return &Response{
		BookingID:      b.ID,
		UserID:         b.UserID,
		UserEmail:      b.UserEmail,
		Classes:        b.Classes,
		TotalClasses:   b.TotalClasses,
		Status:         string(b.Status),
		CheckoutID:     checkoutID,
		UserBookingIDs: ids,
		Replayed:       replayed,
		CreatedAt:      b.CreatedAt,
	}
}
