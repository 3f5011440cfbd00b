package database

import (
	"log"
	"time"

	"github.com/rmacedof/hotel-booking-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Enrollment{},
		&models.Address{},
		&models.TicketType{},
		&models.Ticket{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Bookings are always fetched by user; cover that lookup.
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id)`)

	return db
}
