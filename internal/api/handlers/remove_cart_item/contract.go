package remove_cart_item

import "context"

type CartService interface {
	Remove(ctx context.Context, ownerID string, itemID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
