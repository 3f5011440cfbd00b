package repository

import (
	"context"

	"github.com/rmacedof/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Ticket, error)
	FindTypeByTicketID(ctx context.Context, ticketID uint) (*models.TicketType, error)
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// FindByUserID resolves the ticket through the user's enrollment and eager
// loads its type, which is what the listing path evaluates.
func (r *ticketRepository) FindByUserID(ctx context.Context, userID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.id = tickets.enrollment_id").
		Where("enrollments.user_id = ?", userID).
		Preload("TicketType").
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) FindTypeByTicketID(ctx context.Context, ticketID uint) (*models.TicketType, error) {
	var ticketType models.TicketType
	err := r.db.WithContext(ctx).
		Joins("JOIN tickets ON tickets.ticket_type_id = ticket_types.id").
		Where("tickets.id = ?", ticketID).
		First(&ticketType).Error
	if err != nil {
		return nil, err
	}
	return &ticketType, nil
}
