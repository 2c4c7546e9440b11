package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
)

// Типы событий, они же суффиксы subject
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

// BookingCreatedEvent публикуется после успешного оформления заказа
type BookingCreatedEvent struct {
	EventID      uuid.UUID `json:"eventId"`
	EventType    string    `json:"eventType"`
	BookingID    string    `json:"bookingId"`
	UserID       string    `json:"userId"`
	UserEmail    string    `json:"userEmail"`
	ClassIDs     []string  `json:"classIds"`
	TotalClasses int       `json:"totalClasses"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// BookingCancelledEvent публикуется после отмены бронирования
type BookingCancelledEvent struct {
	EventID        uuid.UUID `json:"eventId"`
	EventType      string    `json:"eventType"`
	BookingID      string    `json:"bookingId"`
	CancelledItems int64     `json:"cancelledItems"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NewBookingCreatedEvent собирает событие из созданного бронирования
func NewBookingCreatedEvent(b *domain.Booking) BookingCreatedEvent {
	classIDs := make([]string, 0, len(b.Classes))
	for _, c := range b.Classes {
		classIDs = append(classIDs, c.ID)
	}

	return BookingCreatedEvent{
		EventID:      uuid.New(),
		EventType:    TypeBookingCreated,
		BookingID:    b.ID,
		UserID:       b.UserID,
		UserEmail:    b.UserEmail,
		ClassIDs:     classIDs,
		TotalClasses: b.TotalClasses,
		OccurredAt:   time.Now().UTC(),
	}
}

// NewBookingCancelledEvent собирает событие отмены
func NewBookingCancelledEvent(bookingID string, cancelledItems int64) BookingCancelledEvent {
	return BookingCancelledEvent{
		EventID:        uuid.New(),
		EventType:      TypeBookingCancelled,
		BookingID:      bookingID,
		CancelledItems: cancelledItems,
		OccurredAt:     time.Now().UTC(),
	}
}
