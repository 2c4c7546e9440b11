package clear_cart

import (
	"context"

	"github.com/m04kA/SMC-YogaStore/internal/service/cart/models"
)

type CartService interface {
	Clear(ctx context.Context, ownerID string) (*models.ClearCartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
