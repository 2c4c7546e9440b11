package domain

import "time"

// BookingStatus represents the status of a booking created at checkout
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true if the status is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking represents one checkout transaction
type Booking struct {
	ID        string
	UserID    string
	UserEmail string

	// Denormalized snapshot of the classes in the cart at checkout time
	Classes      []YogaClass
	TotalClasses int

	Status BookingStatus

	// CheckoutKey identifies the checkout attempt that produced this booking
	CheckoutKey string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBooking builds a pending booking for the given classes.
// TotalClasses always equals len(classes).
func NewBooking(userID, userEmail, checkoutKey string, classes []YogaClass) *Booking {
	return &Booking{
		UserID:       userID,
		UserEmail:    userEmail,
		Classes:      classes,
		TotalClasses: len(classes),
		Status:       StatusPending,
		CheckoutKey:  checkoutKey,
	}
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}
