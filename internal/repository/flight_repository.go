package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

// FlightRepository encapsulates flight persistence.
type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	GetByKey(ctx context.Context, key domain.FlightKey) (*domain.Flight, error)
	UpdateStatus(ctx context.Context, key domain.FlightKey, status domain.FlightStatus) error
	StaffSearch(ctx context.Context, filter StaffSearchFilter) ([]domain.Flight, error)
	PublicSearch(ctx context.Context, filter PublicSearchFilter) ([]domain.Flight, error)
}

type flightRepository struct {
	pool *pgxpool.Pool
}

// NewFlightRepository returns a Postgres-backed implementation.
func NewFlightRepository(pool *pgxpool.Pool) FlightRepository {
	return &flightRepository{pool: pool}
}

func (r *flightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	const query = `
        INSERT INTO flights (airline_name, flight_number, departure_time, arrival_time,
            base_price_cents, departure_airport, arrival_airport, airplane_id, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		flight.AirlineName,
		flight.FlightNumber,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.BasePriceCents,
		flight.DepartureAirport,
		flight.ArrivalAirport,
		flight.AirplaneID,
		flight.Status,
	).Scan(&flight.CreatedAt)
}

func (r *flightRepository) GetByKey(ctx context.Context, key domain.FlightKey) (*domain.Flight, error) {
	const query = `
        SELECT airline_name, flight_number, departure_time, arrival_time, base_price_cents,
               departure_airport, arrival_airport, airplane_id, status, created_at
        FROM flights
        WHERE airline_name=$1 AND flight_number=$2 AND departure_time=$3`

	var flight domain.Flight
	if err := r.pool.QueryRow(ctx, query, key.AirlineName, key.FlightNumber, key.DepartureTime).Scan(
		&flight.AirlineName,
		&flight.FlightNumber,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&flight.BasePriceCents,
		&flight.DepartureAirport,
		&flight.ArrivalAirport,
		&flight.AirplaneID,
		&flight.Status,
		&flight.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) UpdateStatus(ctx context.Context, key domain.FlightKey, status domain.FlightStatus) error {
	const query = `
        UPDATE flights SET status=$1
        WHERE airline_name=$2 AND flight_number=$3 AND departure_time=$4`

	cmd, err := r.pool.Exec(ctx, query, status, key.AirlineName, key.FlightNumber, key.DepartureTime)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *flightRepository) StaffSearch(ctx context.Context, filter StaffSearchFilter) ([]domain.Flight, error) {
	query, args := filter.BuildQuery(nowFunc())
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *flightRepository) PublicSearch(ctx context.Context, filter PublicSearchFilter) ([]domain.Flight, error) {
	query, args := filter.BuildQuery(nowFunc())
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func scanFlights(rows pgx.Rows) ([]domain.Flight, error) {
	var result []domain.Flight
	for rows.Next() {
		var flight domain.Flight
		if err := rows.Scan(
			&flight.AirlineName,
			&flight.FlightNumber,
			&flight.DepartureTime,
			&flight.ArrivalTime,
			&flight.BasePriceCents,
			&flight.DepartureAirport,
			&flight.ArrivalAirport,
			&flight.AirplaneID,
			&flight.Status,
			&flight.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, flight)
	}
	return result, rows.Err()
}
