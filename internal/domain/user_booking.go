package domain

import "time"

// UserBookingStatus represents the status of a single booked class
type UserBookingStatus string

const (
	UserBookingBooked    UserBookingStatus = "booked"
	UserBookingAttended  UserBookingStatus = "attended"
	UserBookingCancelled UserBookingStatus = "cancelled"
)

// UserBooking is one class within a booking, the unit shown in a user's history
type UserBooking struct {
	ID          string
	BookingID   string
	YogaClassID string

	// Snapshot of the class at booking time, never refreshed from the catalog
	YogaClass YogaClass

	UserEmail  string
	Status     UserBookingStatus
	BookedAt   time.Time
	AttendedAt *time.Time
}

// NewUserBookings fans a booking out into one booked row per class
func NewUserBookings(booking *Booking) []*UserBooking {
	result := make([]*UserBooking, 0, len(booking.Classes))
	for _, class := range booking.Classes {
		result = append(result, &UserBooking{
			BookingID:   booking.ID,
			YogaClassID: class.ID,
			YogaClass:   class,
			UserEmail:   booking.UserEmail,
			Status:      UserBookingBooked,
		})
	}
	return result
}
