package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfar201/flight-ticket-booking-system-sub001/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetRole(ctx context.Context, id int64) (*domain.Role, error)
	ApplyRoleChange(ctx context.Context, proposal domain.RoleChangeProposal) (*domain.User, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email, full_name, role_id, created_at, updated_at FROM users WHERE id=$1`, id)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.RoleID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.Transient(err)
	}
	return &u, nil
}

func (r *PGUserRepository) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM roles WHERE id=$1`, id)
	var role domain.Role
	if err := row.Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, domain.Transient(err)
	}
	return &role, nil
}

// ApplyRoleChange writes the staged role and user fields in one statement.
// A role deleted between staging and confirmation surfaces as a foreign key
// violation, reported as ErrRoleNotFound so the workflow can mark the
// proposal stale.
func (r *PGUserRepository) ApplyRoleChange(ctx context.Context, proposal domain.RoleChangeProposal) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `UPDATE users SET role_id=$2, full_name=$3, email=$4, updated_at=now()
		WHERE id=$1
		RETURNING id, email, full_name, role_id, created_at, updated_at`,
		proposal.TargetUserID, proposal.RoleID, proposal.FullName, proposal.Email)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.RoleID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		// 23503: foreign_key_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrRoleNotFound
		}
		return nil, domain.Transient(err)
	}
	return &u, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
