package bookings

import (
	"context"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	"github.com/m04kA/SMC-YogaStore/internal/integrations/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	GetUserBookingsByEmail(ctx context.Context, email string) ([]*domain.UserBooking, error)
	GetUserBookingsByBookingID(ctx context.Context, bookingID string) ([]*domain.UserBooking, error)
	CancelUserBookings(ctx context.Context, bookingID string) (int64, error)
}

// EventPublisher интерфейс издателя событий бронирования
type EventPublisher interface {
	PublishBookingCancelled(ctx context.Context, event events.BookingCancelledEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
