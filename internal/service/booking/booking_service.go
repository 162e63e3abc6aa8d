package booking

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/kafka"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/repository"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, userID int64, input CreateBookingInput) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
	ListBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type Cache interface {
	AcquireSeatHold(ctx context.Context, flightID int64, class domain.SeatClass, seat int, ttl time.Duration) (bool, error)
	ReleaseSeatHold(ctx context.Context, flightID int64, class domain.SeatClass, seat int) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	holdTTL            time.Duration
}

type CreateBookingInput struct {
	FlightID       int64
	SeatClass      domain.SeatClass
	SeatNumber     int
	PassengerName  string
	PassengerEmail string
	// InitialStatus lets the calling flow decide whether a new booking
	// starts pending or already confirmed. Empty means pending.
	InitialStatus domain.BookingStatus
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	holdTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
		holdTTL:      holdTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, userID int64, input CreateBookingInput) (*domain.Booking, error) {
	if input.FlightID <= 0 || input.SeatNumber <= 0 {
		return nil, domain.ErrValidation
	}
	if input.PassengerName == "" || input.PassengerEmail == "" {
		return nil, domain.ErrValidation
	}
	if _, err := domain.ParseSeatClass(string(input.SeatClass)); err != nil {
		return nil, err
	}
	status := input.InitialStatus
	if status == "" {
		status = domain.BookingStatusPending
	}
	if !status.Active() {
		return nil, domain.ErrValidation
	}

	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireSeatHold(ctx, input.FlightID, input.SeatClass, input.SeatNumber, s.holdTTL)
		if err != nil {
			return nil, domain.Transient(err)
		}
		if !ok {
			return nil, domain.ErrSeatLocked
		}
		locked = true
	}

	booking := &domain.Booking{
		UserID:         userID,
		FlightID:       input.FlightID,
		PassengerName:  input.PassengerName,
		PassengerEmail: input.PassengerEmail,
		SeatClass:      input.SeatClass,
		SeatNumber:     input.SeatNumber,
		Token:          uuid.NewString(),
		Status:         status,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		if locked {
			_ = s.cache.ReleaseSeatHold(ctx, input.FlightID, input.SeatClass, input.SeatNumber)
		}
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for booking %s: %v", booking.Token, err)
	}
	return booking, nil
}

func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	updated, err := s.bookings.Confirm(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_confirmed", updated); err != nil {
		log.Printf("WARNING: failed to publish booking_confirmed event for booking %s: %v", updated.Token, err)
	}
	return updated, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	updated, err := s.bookings.Cancel(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.ReleaseSeatHold(ctx, updated.FlightID, updated.SeatClass, updated.SeatNumber)
	}
	if err := s.publish(ctx, "booking_cancelled", updated); err != nil {
		log.Printf("WARNING: failed to publish booking_cancelled event for booking %s: %v", updated.Token, err)
	}
	return updated, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, bookingID, userID)
}

func (s *BookingService) ListBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		Token:          booking.Token,
		FlightID:       booking.FlightID,
		SeatClass:      string(booking.SeatClass),
		SeatNumber:     booking.SeatNumber,
		PassengerEmail: booking.PassengerEmail,
		Status:         string(booking.Status),
		FareCents:      booking.FareCents,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Token, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.Token, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
