package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

// AirlineRepository handles airline and airplane persistence.
type AirlineRepository interface {
	AirlineExists(ctx context.Context, name string) (bool, error)
	CreateAirplane(ctx context.Context, airplane *domain.Airplane) error
	AirplaneExists(ctx context.Context, airline, idNumber string) (bool, error)
}

type airlineRepository struct {
	pool *pgxpool.Pool
}

// NewAirlineRepository instantiates the repository.
func NewAirlineRepository(pool *pgxpool.Pool) AirlineRepository {
	return &airlineRepository{pool: pool}
}

func (r *airlineRepository) AirlineExists(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM airlines WHERE name=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *airlineRepository) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	const query = `
        INSERT INTO airplanes (airline_name, id_number, seats, manufacturer, age)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		airplane.AirlineName,
		airplane.IDNumber,
		airplane.Seats,
		airplane.Manufacturer,
		airplane.Age,
	)
	return err
}

func (r *airlineRepository) AirplaneExists(ctx context.Context, airline, idNumber string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM airplanes WHERE airline_name=$1 AND id_number=$2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, airline, idNumber).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
