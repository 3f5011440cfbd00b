package service

import (
	"context"
	"errors"

	"github.com/rmacedof/hotel-booking-service/internal/models"
	"github.com/rmacedof/hotel-booking-service/internal/repository"
	"gorm.io/gorm"
)

type HotelService interface {
	ListHotels(ctx context.Context, userID uint) ([]models.Hotel, error)
	GetHotelWithRooms(ctx context.Context, hotelID, userID uint) (*models.Hotel, error)
}

type hotelService struct {
	hotelRepo      repository.HotelRepository
	enrollmentRepo repository.EnrollmentRepository
	ticketRepo     repository.TicketRepository
}

func NewHotelService(
	hotelRepo repository.HotelRepository,
	enrollmentRepo repository.EnrollmentRepository,
	ticketRepo repository.TicketRepository,
) HotelService {
	return &hotelService{
		hotelRepo:      hotelRepo,
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
	}
}

// checkListingAccess runs the shared eligibility gate for the listing path.
// Unlike booking creation, a missing enrollment or ticket answers NotFound
// here, and a failed predicate answers PaymentRequired instead of Forbidden.
func (s *hotelService) checkListingAccess(ctx context.Context, userID uint) error {
	_, err := s.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("user has no enrollment")
		}
		return wrapInternal(err, "find enrollment")
	}

	ticket, err := s.ticketRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound("user has no ticket")
		}
		return wrapInternal(err, "find ticket")
	}

	if ticket.TicketType == nil || !hotelEligible(ticket.Status, ticket.TicketType) {
		return errPaymentRequired("ticket does not grant hotel access")
	}

	return nil
}

func (s *hotelService) ListHotels(ctx context.Context, userID uint) ([]models.Hotel, error) {
	if err := s.checkListingAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.hotelRepo.FindAll(ctx)
	if err != nil {
		return nil, wrapInternal(err, "find hotels")
	}
	if len(hotels) == 0 {
		return nil, errNotFound("no hotels found")
	}

	return hotels, nil
}

func (s *hotelService) GetHotelWithRooms(ctx context.Context, hotelID, userID uint) (*models.Hotel, error) {
	if err := s.checkListingAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := s.hotelRepo.FindByIDWithRooms(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("hotel not found")
		}
		return nil, wrapInternal(err, "find hotel")
	}

	return hotel, nil
}
