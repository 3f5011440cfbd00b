package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/rmacedof/hotel-booking-service/config"
	"github.com/rmacedof/hotel-booking-service/internal/handler"
	"github.com/rmacedof/hotel-booking-service/internal/middleware"
	"github.com/rmacedof/hotel-booking-service/internal/repository"
	"github.com/rmacedof/hotel-booking-service/internal/service"
	"github.com/rmacedof/hotel-booking-service/pkg/database"
	"github.com/rmacedof/hotel-booking-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Booking events are best-effort; without a broker the API still works.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	// Repositories
	sessionRepo := repository.NewSessionRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, enrollmentRepo, ticketRepo, roomRepo, publisher)
	hotelSvc := service.NewHotelService(hotelRepo, enrollmentRepo, ticketRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "hotel-booking-service"})
	})

	api := e.Group("", middleware.Auth(cfg.JWTSecret, sessionRepo))
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api)
	handler.NewHotelHandler(hotelSvc).RegisterRoutes(api)

	log.Printf("Hotel Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
