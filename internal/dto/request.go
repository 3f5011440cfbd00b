package dto

// CreateBookingRequest carries the target room. UserID is accepted for
// compatibility with older clients but the token identity always wins.
type CreateBookingRequest struct {
	RoomID uint `json:"roomId"`
	UserID uint `json:"userId"`
}

type UpdateBookingRequest struct {
	RoomID uint `json:"roomId"`
	UserID uint `json:"userId"`
}
