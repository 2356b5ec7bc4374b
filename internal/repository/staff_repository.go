package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

// StaffRepository handles persistence for airline staff accounts.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffMember) error
	GetByUsername(ctx context.Context, username string) (*domain.StaffMember, error)
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        INSERT INTO airline_staff (username, airline_name, password_hash)
        VALUES ($1, $2, $3)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		staff.Username,
		staff.AirlineName,
		staff.PasswordHash,
	).Scan(&staff.CreatedAt)
}

func (r *staffRepository) GetByUsername(ctx context.Context, username string) (*domain.StaffMember, error) {
	const query = `
        SELECT username, airline_name, password_hash, created_at
        FROM airline_staff WHERE username=$1`

	var staff domain.StaffMember
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&staff.Username,
		&staff.AirlineName,
		&staff.PasswordHash,
		&staff.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}
