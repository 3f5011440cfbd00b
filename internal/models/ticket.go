package models

import "time"

type TicketStatus string

const (
	StatusReserved TicketStatus = "RESERVED"
	StatusPaid     TicketStatus = "PAID"
)

// TicketType fixes a ticket's entitlements at creation time. IsRemote and
// IncludesHotel never change once the type exists.
type TicketType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Price         float64   `gorm:"not null" json:"price"`
	IsRemote      bool      `gorm:"not null" json:"isRemote"`
	IncludesHotel bool      `gorm:"not null" json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Ticket struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	TicketTypeID uint         `gorm:"not null" json:"ticketTypeId"`
	EnrollmentID uint         `gorm:"not null" json:"enrollmentId"`
	Status       TicketStatus `gorm:"type:varchar(20);not null;default:'RESERVED'" json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	TicketType *TicketType `gorm:"foreignKey:TicketTypeID" json:"TicketType,omitempty"`
}
