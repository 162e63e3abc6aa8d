package domain

import "time"

type Flight struct {
	ID            int64
	FlightNumber  string
	AirlineID     int64
	RouteID       int64
	AircraftID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time

	EconomyTotal         int
	EconomyAvailable     int
	EconomyPriceCents    int64
	BusinessTotal        int
	BusinessAvailable    int
	BusinessPriceCents   int64
	FirstClassTotal      int
	FirstClassAvailable  int
	FirstClassPriceCents int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Available returns the free-seat counter for the given class.
func (f *Flight) Available(class SeatClass) int {
	switch class {
	case SeatClassEconomy:
		return f.EconomyAvailable
	case SeatClassBusiness:
		return f.BusinessAvailable
	case SeatClassFirstClass:
		return f.FirstClassAvailable
	}
	return 0
}

// Total returns the configured seat count for the given class.
func (f *Flight) Total(class SeatClass) int {
	switch class {
	case SeatClassEconomy:
		return f.EconomyTotal
	case SeatClassBusiness:
		return f.BusinessTotal
	case SeatClassFirstClass:
		return f.FirstClassTotal
	}
	return 0
}
