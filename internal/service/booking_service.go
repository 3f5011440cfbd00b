package service

import (
	"context"
	"errors"

	"github.com/rmacedof/hotel-booking-service/internal/models"
	"github.com/rmacedof/hotel-booking-service/internal/repository"
	"github.com/rmacedof/hotel-booking-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

type BookingService interface {
	CreateBooking(ctx context.Context, roomID, userID uint) (*models.Booking, error)
	GetBooking(ctx context.Context, userID uint) (*models.Booking, error)
	UpdateBooking(ctx context.Context, roomID, userID, bookingID uint) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo    repository.BookingRepository
	enrollmentRepo repository.EnrollmentRepository
	ticketRepo     repository.TicketRepository
	roomRepo       repository.RoomRepository
	publisher      *rabbitmq.Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	enrollmentRepo repository.EnrollmentRepository,
	ticketRepo repository.TicketRepository,
	roomRepo repository.RoomRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		roomRepo:       roomRepo,
		publisher:      publisher,
	}
}

// hotelEligible is the single predicate gating both listing and booking: the
// ticket is paid, the attendance is in person, and the ticket includes a
// hotel stay.
func hotelEligible(status models.TicketStatus, ticketType *models.TicketType) bool {
	return status == models.StatusPaid && !ticketType.IsRemote && ticketType.IncludesHotel
}

func (s *bookingService) CreateBooking(ctx context.Context, roomID, userID uint) (*models.Booking, error) {
	enrollment, err := s.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUnauthorized("user has no enrollment")
		}
		return nil, wrapInternal(err, "find enrollment")
	}

	ticket, err := s.ticketRepo.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUnauthorized("enrollment has no ticket")
		}
		return nil, wrapInternal(err, "find ticket")
	}

	ticketType, err := s.ticketRepo.FindTypeByTicketID(ctx, ticket.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUnauthorized("ticket has no type")
		}
		return nil, wrapInternal(err, "find ticket type")
	}

	if !hotelEligible(ticket.Status, ticketType) {
		return nil, errForbidden("ticket does not grant a hotel booking")
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("room not found")
		}
		return nil, wrapInternal(err, "find room")
	}

	if room.Capacity == 0 {
		return nil, errForbidden("room has no vacancies")
	}

	booking := &models.Booking{
		RoomID: roomID,
		UserID: userID,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, wrapInternal(err, "create booking")
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}

	return booking, nil
}

// GetBooking deliberately skips the eligibility gate: once a booking exists,
// viewing it is unconditional.
func (s *bookingService) GetBooking(ctx context.Context, userID uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindFirstByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("user has no booking")
		}
		return nil, wrapInternal(err, "find booking")
	}
	return booking, nil
}

// UpdateBooking swaps a user's booking to another room. The current booking
// is looked up by user, not by bookingID; a missing booking, a missing room
// and a full room all answer Forbidden, matching the change-room contract.
func (s *bookingService) UpdateBooking(ctx context.Context, roomID, userID, bookingID uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindFirstByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrapInternal(err, "find booking")
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrapInternal(err, "find room")
	}

	if booking == nil || room == nil || room.Capacity == 0 {
		return nil, errForbidden("booking change not allowed")
	}

	if err := s.bookingRepo.UpdateRoom(ctx, bookingID, roomID); err != nil {
		return nil, wrapInternal(err, "update booking room")
	}

	booking.ID = bookingID
	booking.RoomID = roomID
	booking.Room = room

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.room_changed", booking)
	}

	return booking, nil
}
