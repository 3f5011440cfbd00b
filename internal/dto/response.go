package dto

// CreateBookingResponse is the body of a successful POST /booking.
type CreateBookingResponse struct {
	BookingID uint `json:"bookingId"`
}

// UpdateBookingResponse is the body of a successful PUT /booking/:bookingId.
// The change-room endpoint answers with a bare id, not a bookingId key.
type UpdateBookingResponse struct {
	ID uint `json:"id"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
