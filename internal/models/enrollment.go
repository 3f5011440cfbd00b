package models

import "time"

// Enrollment is a user's registration record for the event, at most one per
// user. Its existence gates every hotel operation; the address details are
// carried for the profile endpoints of the wider platform.
type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Address *Address `gorm:"foreignKey:EnrollmentID" json:"Address,omitempty"`
}

type Address struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postalCode"`
	EnrollmentID uint      `gorm:"not null;uniqueIndex" json:"enrollmentId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
