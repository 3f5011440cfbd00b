package repository

import (
	"context"

	"github.com/rmacedof/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

type SessionRepository interface {
	FindByToken(ctx context.Context, token string) (*models.Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}
