package models

import "time"

type Hotel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"Rooms,omitempty"`
}

// Room capacity is a vacancy flag, not a counter: 0 means the room takes no
// bookings, any positive value means it does. Bookings never decrement it.
type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	HotelID   uint      `gorm:"not null" json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
