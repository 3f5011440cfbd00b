package repository

import (
	"context"

	"github.com/rmacedof/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindFirstByUserID(ctx context.Context, userID uint) (*models.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID uint) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// FindFirstByUserID returns the user's booking with its room. Users hold at
// most one booking, so "first" is the whole lookup.
func (r *bookingRepository) FindFirstByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Room").
		Order("id ASC").
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("room_id", roomID).Error
}
