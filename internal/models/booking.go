package models

import "time"

// Booking assigns a user to a room. Each user holds at most one active
// booking; the room reference is the only mutable part, rewritten by the
// change-room operation.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"userId"`
	RoomID    uint      `gorm:"not null" json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Room *Room `gorm:"foreignKey:RoomID" json:"Room,omitempty"`
}
