package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightFields = `id, flight_number, airline_id, route_id, aircraft_id, departure_time, arrival_time,
	economy_total, economy_available, economy_price_cents,
	business_total, business_available, business_price_cents,
	first_class_total, first_class_available, first_class_price_cents,
	created_at, updated_at`

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.FlightNumber, &f.AirlineID, &f.RouteID, &f.AircraftID, &f.DepartureTime, &f.ArrivalTime,
		&f.EconomyTotal, &f.EconomyAvailable, &f.EconomyPriceCents,
		&f.BusinessTotal, &f.BusinessAvailable, &f.BusinessPriceCents,
		&f.FirstClassTotal, &f.FirstClassAvailable, &f.FirstClassPriceCents,
		&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightFields+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, domain.Transient(err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, domain.Transient(err)
		}
		flights = append(flights, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Transient(err)
	}
	return flights, nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightFields+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, domain.Transient(err)
	}
	return f, nil
}

// Create inserts a flight with full cabins: available starts equal to total
// for every class.
func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	flight.EconomyAvailable = flight.EconomyTotal
	flight.BusinessAvailable = flight.BusinessTotal
	flight.FirstClassAvailable = flight.FirstClassTotal

	err := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, airline_id, route_id, aircraft_id, departure_time, arrival_time,
			economy_total, economy_available, economy_price_cents,
			business_total, business_available, business_price_cents,
			first_class_total, first_class_available, first_class_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`,
		flight.FlightNumber, flight.AirlineID, flight.RouteID, flight.AircraftID, flight.DepartureTime, flight.ArrivalTime,
		flight.EconomyTotal, flight.EconomyAvailable, flight.EconomyPriceCents,
		flight.BusinessTotal, flight.BusinessAvailable, flight.BusinessPriceCents,
		flight.FirstClassTotal, flight.FirstClassAvailable, flight.FirstClassPriceCents).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt)
	if err != nil {
		return domain.Transient(err)
	}
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
