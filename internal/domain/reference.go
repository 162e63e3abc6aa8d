package domain

import "time"

// ReferenceKind identifies a reference-data entity guarded against deletion
// while dependent rows still point at it.
type ReferenceKind string

const (
	KindFlight   ReferenceKind = "flight"
	KindAircraft ReferenceKind = "aircraft"
	KindAirline  ReferenceKind = "airline"
	KindAirport  ReferenceKind = "airport"
	KindRoute    ReferenceKind = "route"
)

func ParseReferenceKind(s string) (ReferenceKind, error) {
	switch ReferenceKind(s) {
	case KindFlight, KindAircraft, KindAirline, KindAirport, KindRoute:
		return ReferenceKind(s), nil
	}
	return "", ErrInvalidReferenceKind
}

type Airline struct {
	ID        int64
	Name      string
	IATACode  string
	CreatedAt time.Time
}

type Airport struct {
	ID        int64
	Code      string
	Name      string
	City      string
	CreatedAt time.Time
}

type Route struct {
	ID            int64
	FromAirportID int64
	ToAirportID   int64
	CreatedAt     time.Time
}

type Aircraft struct {
	ID           int64
	Model        string
	Registration string
	CreatedAt    time.Time
}
