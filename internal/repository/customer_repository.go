package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

// CustomerRepository defines persistence access for customer accounts.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (email, name, password_hash)
        VALUES ($1, $2, $3)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		customer.Email,
		customer.Name,
		customer.PasswordHash,
	).Scan(&customer.CreatedAt)
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const query = `
        SELECT email, name, password_hash, created_at
        FROM customers WHERE email=$1`

	var customer domain.Customer
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&customer.Email,
		&customer.Name,
		&customer.PasswordHash,
		&customer.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}
