package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id, userID int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Cancel(ctx context.Context, id, userID int64) (*domain.Booking, error)
	Confirm(ctx context.Context, id, userID int64) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingFields = `id, user_id, flight_id, passenger_name, passenger_email, seat_class, seat_number, fare_cents, token, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.UserID, &b.FlightID, &b.PassengerName, &b.PassengerEmail, &b.SeatClass, &b.SeatNumber, &b.FareCents, &b.Token, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// reserveSeat decrements the class counter inside tx. The WHERE clause makes
// check-and-decrement a single statement, so the counter can never go
// negative regardless of interleaving. Returns the class fare on success.
func reserveSeat(ctx context.Context, tx pgx.Tx, flightID int64, class domain.SeatClass) (int64, error) {
	cols, err := classColumns(class)
	if err != nil {
		return 0, err
	}
	var fare int64
	query := fmt.Sprintf(`UPDATE flights SET %[1]s = %[1]s - 1, updated_at = now() WHERE id=$1 AND %[1]s > 0 RETURNING %[2]s`, cols.available, cols.price)
	if err := tx.QueryRow(ctx, query, flightID).Scan(&fare); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.Transient(err)
		}
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM flights WHERE id=$1)`, flightID).Scan(&exists); err != nil {
			return 0, domain.Transient(err)
		}
		if !exists {
			return 0, domain.ErrFlightNotFound
		}
		return 0, domain.ErrNoSeatsAvailable
	}
	return fare, nil
}

// releaseSeat increments the class counter inside tx. Callers run it at most
// once per booking, inside the same transaction that retires the booking.
func releaseSeat(ctx context.Context, tx pgx.Tx, flightID int64, class domain.SeatClass) error {
	cols, err := classColumns(class)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE flights SET %[1]s = %[1]s + 1, updated_at = now() WHERE id=$1 AND %[1]s < %[2]s`, cols.available, cols.total)
	cmd, err := tx.Exec(ctx, query, flightID)
	if err != nil {
		return domain.Transient(err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: flight %d release would exceed %s", domain.ErrInventoryInconsistent, flightID, cols.total)
	}
	return nil
}

// Create reserves a seat and inserts the booking row in one transaction.
// If the insert fails the deferred rollback also undoes the reservation.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Transient(err)
	}
	defer tx.Rollback(ctx)

	fare, err := reserveSeat(ctx, tx, booking.FlightID, booking.SeatClass)
	if err != nil {
		return err
	}
	booking.FareCents = fare

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (user_id, flight_id, passenger_name, passenger_email, seat_class, seat_number, fare_cents, token, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		booking.UserID, booking.FlightID, booking.PassengerName, booking.PassengerEmail, booking.SeatClass, booking.SeatNumber, booking.FareCents, booking.Token, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return domain.Transient(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Transient(err)
	}
	return nil
}

// GetByID is owner-scoped: a booking that exists but belongs to another user
// is reported as not found.
func (r *PGBookingRepository) GetByID(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingFields+` FROM bookings WHERE id=$1 AND user_id=$2`, id, userID)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, domain.Transient(err)
	}
	return b, nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingFields+` FROM bookings WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, domain.Transient(err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.FlightID, &b.PassengerName, &b.PassengerEmail, &b.SeatClass, &b.SeatNumber, &b.FareCents, &b.Token, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, domain.Transient(err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Transient(err)
	}
	return bookings, nil
}

// Cancel flips an active booking to CANCELLED and releases its seat, all in
// one transaction. The booking row is locked before the status re-check so
// that two concurrent cancels cannot both observe an active status and
// double-credit the counter: the loser waits on the lock, then sees
// CANCELLED.
func (r *PGBookingRepository) Cancel(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, domain.Transient(err)
	}
	defer tx.Rollback(ctx)

	b, err := scanBooking(tx.QueryRow(ctx, `SELECT `+bookingFields+` FROM bookings WHERE id=$1 AND user_id=$2 FOR UPDATE`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, domain.Transient(err)
	}
	if !b.Status.Active() {
		return nil, domain.ErrBookingCancelled
	}

	if err := tx.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING updated_at`, domain.BookingStatusCancelled, id).Scan(&b.UpdatedAt); err != nil {
		return nil, domain.Transient(err)
	}
	if err := releaseSeat(ctx, tx, b.FlightID, b.SeatClass); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Transient(err)
	}
	b.Status = domain.BookingStatusCancelled
	return b, nil
}

// Confirm moves a PENDING booking to CONFIRMED under the same row-locking
// discipline as Cancel. Inventory is untouched: a pending booking already
// holds its seat.
func (r *PGBookingRepository) Confirm(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, domain.Transient(err)
	}
	defer tx.Rollback(ctx)

	b, err := scanBooking(tx.QueryRow(ctx, `SELECT `+bookingFields+` FROM bookings WHERE id=$1 AND user_id=$2 FOR UPDATE`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, domain.Transient(err)
	}
	if b.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}

	if err := tx.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING updated_at`, domain.BookingStatusConfirmed, id).Scan(&b.UpdatedAt); err != nil {
		return nil, domain.Transient(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Transient(err)
	}
	b.Status = domain.BookingStatusConfirmed
	return b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
