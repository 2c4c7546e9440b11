package checkout

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	"github.com/m04kA/SMC-YogaStore/internal/integrations/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByCheckoutKey(ctx context.Context, checkoutKey string) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CreateUserBookings(ctx context.Context, userBookings []*domain.UserBooking) ([]*domain.UserBooking, error)
}

// CartRepository интерфейс репозитория корзины
type CartRepository interface {
	GetByOwner(ctx context.Context, ownerID string) ([]*domain.CartItem, error)
	DeleteByIDs(ctx context.Context, ownerID string, ids []string) (int64, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс издателя событий бронирования
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event events.BookingCreatedEvent) error
}

// MetricsRecorder учитывает исходы оформления заказа
type MetricsRecorder interface {
	IncCheckout(outcome string)
}

// IDProvider интерфейс генерации идентификатора попытки оформления (для тестирования)
type IDProvider interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDProvider реальный генератор идентификаторов для production
type UUIDProvider struct{}

// NewID возвращает новый UUID v4
func (p *UUIDProvider) NewID() string {
	return uuid.NewString()
}
