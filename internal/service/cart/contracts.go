package cart

import (
	"context"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
)

// CartRepository интерфейс репозитория корзины
type CartRepository interface {
	Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*domain.CartItem, error)
	Delete(ctx context.Context, ownerID string, id string) error
	DeleteByIDs(ctx context.Context, ownerID string, ids []string) (int64, error)
}

// ClassRepository интерфейс чтения занятий из каталога
type ClassRepository interface {
	GetClassByID(ctx context.Context, id string) (*domain.YogaClass, error)
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
