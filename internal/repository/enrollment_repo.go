package repository

import (
	"context"

	"github.com/rmacedof/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*models.Enrollment, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) FindByUserID(ctx context.Context, userID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Address").
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}
