package add_cart_item

import (
	"context"

	"github.com/m04kA/SMC-YogaStore/internal/service/cart/models"
)

type CartService interface {
	Add(ctx context.Context, ownerID string, req *models.AddItemRequest) (*models.CartItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
