package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Active reports whether the booking still holds a seat.
// CANCELLED is terminal; no transition leaves it.
func (s BookingStatus) Active() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

type SeatClass string

const (
	SeatClassEconomy    SeatClass = "ECONOMY"
	SeatClassBusiness   SeatClass = "BUSINESS"
	SeatClassFirstClass SeatClass = "FIRST_CLASS"
)

func ParseSeatClass(s string) (SeatClass, error) {
	switch SeatClass(s) {
	case SeatClassEconomy, SeatClassBusiness, SeatClassFirstClass:
		return SeatClass(s), nil
	}
	return "", ErrInvalidSeatClass
}

type Booking struct {
	ID             int64
	UserID         int64
	FlightID       int64
	PassengerName  string
	PassengerEmail string
	SeatClass      SeatClass
	SeatNumber     int
	FareCents      int64
	Token          string
	Status         BookingStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
