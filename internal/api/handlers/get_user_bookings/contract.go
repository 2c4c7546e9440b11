package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-YogaStore/internal/service/bookings/models"
)

type BookingService interface {
	ListByEmail(ctx context.Context, email string) (*models.UserBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
