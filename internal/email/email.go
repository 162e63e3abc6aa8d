package email

import (
	"context"
	"log"

	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("send email to %s about %s for flight %d seat %s/%d", event.PassengerEmail, event.Type, event.FlightID, event.SeatClass, event.SeatNumber)
	return nil
}
