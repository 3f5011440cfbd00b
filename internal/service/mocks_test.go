package service

import (
	"context"

	"github.com/rmacedof/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

// --- Mock EnrollmentRepository ---

type mockEnrollmentRepo struct {
	findByUserIDFn func(ctx context.Context, userID uint) (*models.Enrollment, error)
}

func (m *mockEnrollmentRepo) FindByUserID(ctx context.Context, userID uint) (*models.Enrollment, error) {
	return m.findByUserIDFn(ctx, userID)
}

// --- Mock TicketRepository ---

type mockTicketRepo struct {
	findByEnrollmentIDFn func(ctx context.Context, enrollmentID uint) (*models.Ticket, error)
	findByUserIDFn       func(ctx context.Context, userID uint) (*models.Ticket, error)
	findTypeByTicketIDFn func(ctx context.Context, ticketID uint) (*models.TicketType, error)
}

func (m *mockTicketRepo) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
	return m.findByEnrollmentIDFn(ctx, enrollmentID)
}
func (m *mockTicketRepo) FindByUserID(ctx context.Context, userID uint) (*models.Ticket, error) {
	return m.findByUserIDFn(ctx, userID)
}
func (m *mockTicketRepo) FindTypeByTicketID(ctx context.Context, ticketID uint) (*models.TicketType, error) {
	return m.findTypeByTicketIDFn(ctx, ticketID)
}

// --- Mock RoomRepository ---

type mockRoomRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Room, error)
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	return m.findByIDFn(ctx, id)
}

// --- Mock HotelRepository ---

type mockHotelRepo struct {
	findAllFn           func(ctx context.Context) ([]models.Hotel, error)
	findByIDWithRoomsFn func(ctx context.Context, id uint) (*models.Hotel, error)
}

func (m *mockHotelRepo) FindAll(ctx context.Context) ([]models.Hotel, error) {
	return m.findAllFn(ctx)
}
func (m *mockHotelRepo) FindByIDWithRooms(ctx context.Context, id uint) (*models.Hotel, error) {
	return m.findByIDWithRoomsFn(ctx, id)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn            func(ctx context.Context, booking *models.Booking) error
	findFirstByUserIDFn func(ctx context.Context, userID uint) (*models.Booking, error)
	updateRoomFn        func(ctx context.Context, bookingID, roomID uint) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *mockBookingRepo) FindFirstByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	if m.findFirstByUserIDFn != nil {
		return m.findFirstByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) UpdateRoom(ctx context.Context, bookingID, roomID uint) error {
	if m.updateRoomFn != nil {
		return m.updateRoomFn(ctx, bookingID, roomID)
	}
	return nil
}

// --- Fixtures ---

func enrollmentFor(userID uint) *mockEnrollmentRepo {
	return &mockEnrollmentRepo{
		findByUserIDFn: func(ctx context.Context, id uint) (*models.Enrollment, error) {
			return &models.Enrollment{ID: 10, Name: "Ana Souza", UserID: userID}, nil
		},
	}
}

func noEnrollment() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{
		findByUserIDFn: func(ctx context.Context, id uint) (*models.Enrollment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func hotelTicketType() *models.TicketType {
	return &models.TicketType{ID: 3, Name: "in-person + hotel", Price: 600, IsRemote: false, IncludesHotel: true}
}

func ticketRepoWith(status models.TicketStatus, ticketType *models.TicketType) *mockTicketRepo {
	return &mockTicketRepo{
		findByEnrollmentIDFn: func(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
			return &models.Ticket{ID: 7, EnrollmentID: enrollmentID, TicketTypeID: ticketType.ID, Status: status}, nil
		},
		findByUserIDFn: func(ctx context.Context, userID uint) (*models.Ticket, error) {
			return &models.Ticket{ID: 7, TicketTypeID: ticketType.ID, Status: status, TicketType: ticketType}, nil
		},
		findTypeByTicketIDFn: func(ctx context.Context, ticketID uint) (*models.TicketType, error) {
			return ticketType, nil
		},
	}
}

func roomRepoWith(capacity int) *mockRoomRepo {
	return &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Room, error) {
			return &models.Room{ID: id, Name: "101", Capacity: capacity, HotelID: 1}, nil
		},
	}
}

func noRoom() *mockRoomRepo {
	return &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Room, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
}
