package repository

import (
	"context"

	"github.com/rmacedof/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

type RoomRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Room, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}
