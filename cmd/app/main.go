package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfar201/flight-ticket-booking-system-sub001/config"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/bootstrap"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/cache"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/kafka"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/repository"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/service/admin"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/service/booking"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Migrations.Dir != "" {
		if err := repository.RunMigrations(cfg.Database.DSN(), cfg.Migrations.Dir); err != nil {
			log.Fatalf("run migrations: %v", err)
		}
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(
		cfg.Redis,
		time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second,
		time.Duration(cfg.Admin.StagedTTLMinutes)*time.Minute,
	)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	referenceRepo := repository.NewReferenceRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	flightService := flights.NewFlightService(flightRepo, referenceRepo, redisCache, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	bookingService := booking.NewBookingService(
		bookingRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingTopic,
		time.Duration(cfg.Booking.HoldTTLMinutes)*time.Minute,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	adminService := admin.NewAdminService(userRepo, redisCache, producer, cfg.Kafka.NotificationsTopic)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService, adminService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
