package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
)

type ReferenceRepository interface {
	Delete(ctx context.Context, kind domain.ReferenceKind, id int64) error
}

type PGReferenceRepository struct {
	db *pgxpool.Pool
}

func NewReferenceRepository(db *pgxpool.Pool) ReferenceRepository {
	return &PGReferenceRepository{db: db}
}

type guardSpec struct {
	table          string
	dependent      string
	dependentQuery string
	// purgeQuery removes dependent rows that must not block deletion, inside
	// the same transaction, before the entity row is deleted.
	purgeQuery string
}

// guards names, per entity kind, the immediate dependent relationship that
// blocks deletion. Cancelled bookings keep no seat and do not block a flight;
// they are audit rows that live exactly as long as their flight, so deleting
// the flight purges them first.
// Transitive dependents (a route with flights carrying bookings) are covered
// because the direct dependent row must exist for the indirect one to.
var guards = map[domain.ReferenceKind]guardSpec{
	domain.KindFlight: {
		table:          "flights",
		dependent:      "active bookings",
		dependentQuery: `SELECT EXISTS(SELECT 1 FROM bookings WHERE flight_id=$1 AND status <> 'CANCELLED')`,
		purgeQuery:     `DELETE FROM bookings WHERE flight_id=$1 AND status = 'CANCELLED'`,
	},
	domain.KindAircraft: {table: "aircraft", dependent: "flights", dependentQuery: `SELECT EXISTS(SELECT 1 FROM flights WHERE aircraft_id=$1)`},
	domain.KindAirline:  {table: "airlines", dependent: "flights", dependentQuery: `SELECT EXISTS(SELECT 1 FROM flights WHERE airline_id=$1)`},
	domain.KindRoute:    {table: "routes", dependent: "flights", dependentQuery: `SELECT EXISTS(SELECT 1 FROM flights WHERE route_id=$1)`},
	domain.KindAirport:  {table: "airports", dependent: "routes", dependentQuery: `SELECT EXISTS(SELECT 1 FROM routes WHERE from_airport_id=$1 OR to_airport_id=$1)`},
}

// Delete removes a reference entity unless dependent rows still point at it.
// The entity row is locked before the dependent check so a booking or flight
// created concurrently cannot slip in between the check and the delete: the
// writer that references the row must first take the same row lock.
func (r *PGReferenceRepository) Delete(ctx context.Context, kind domain.ReferenceKind, id int64) error {
	g, ok := guards[kind]
	if !ok {
		return domain.ErrInvalidReferenceKind
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Transient(err)
	}
	defer tx.Rollback(ctx)

	var locked int64
	if err := tx.QueryRow(ctx, fmt.Sprintf(`SELECT id FROM %s WHERE id=$1 FOR UPDATE`, g.table), id).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEntityNotFound
		}
		return domain.Transient(err)
	}

	var referenced bool
	if err := tx.QueryRow(ctx, g.dependentQuery, id).Scan(&referenced); err != nil {
		return domain.Transient(err)
	}
	if referenced {
		return domain.ReferencedBy(kind, id, g.dependent)
	}

	if g.purgeQuery != "" {
		if _, err := tx.Exec(ctx, g.purgeQuery, id); err != nil {
			return domain.Transient(err)
		}
	}

	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, g.table), id); err != nil {
		// Flight inserts do not lock the aircraft/airline/route rows they
		// reference, so a commit can land between the dependent check and the
		// delete. The foreign key reports it; retrying unchanged cannot help.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ReferencedBy(kind, id, g.dependent)
		}
		return domain.Transient(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Transient(err)
	}
	return nil
}

var _ ReferenceRepository = (*PGReferenceRepository)(nil)
