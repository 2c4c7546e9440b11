package update_booking_status

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}
