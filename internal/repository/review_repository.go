package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

// ReviewRepository handles persistence for flight reviews.
type ReviewRepository interface {
	Upsert(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, email string, key domain.FlightKey) error
	ListByCustomer(ctx context.Context, email string) ([]domain.Review, error)
	ListByAirline(ctx context.Context, airline string) ([]domain.Review, error)
	RatingsByAirline(ctx context.Context, airline string) ([]domain.FlightRating, error)
}

type reviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository instantiates the repository.
func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{pool: pool}
}

// Upsert saves the review, replacing any previous one for the same
// (customer, flight instance) pair.
func (r *reviewRepository) Upsert(ctx context.Context, review *domain.Review) error {
	const query = `
        INSERT INTO reviews (customer_email, airline_name, flight_number, departure_time, rating, comment)
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (customer_email, airline_name, flight_number, departure_time)
        DO UPDATE SET rating=EXCLUDED.rating, comment=EXCLUDED.comment, created_at=NOW()
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		review.CustomerEmail,
		review.AirlineName,
		review.FlightNumber,
		review.DepartureTime,
		review.Rating,
		review.Comment,
	).Scan(&review.CreatedAt)
}

func (r *reviewRepository) Delete(ctx context.Context, email string, key domain.FlightKey) error {
	const query = `
        DELETE FROM reviews
        WHERE customer_email=$1 AND airline_name=$2 AND flight_number=$3 AND departure_time=$4`

	_, err := r.pool.Exec(ctx, query, email, key.AirlineName, key.FlightNumber, key.DepartureTime)
	return err
}

func (r *reviewRepository) ListByCustomer(ctx context.Context, email string) ([]domain.Review, error) {
	const query = `
        SELECT customer_email, airline_name, flight_number, departure_time, rating, comment, created_at
        FROM reviews WHERE customer_email=$1
        ORDER BY created_at DESC`
	return r.list(ctx, query, email)
}

func (r *reviewRepository) ListByAirline(ctx context.Context, airline string) ([]domain.Review, error) {
	const query = `
        SELECT customer_email, airline_name, flight_number, departure_time, rating, comment, created_at
        FROM reviews WHERE airline_name=$1
        ORDER BY created_at DESC`
	return r.list(ctx, query, airline)
}

func (r *reviewRepository) list(ctx context.Context, query, arg string) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.CustomerEmail,
			&review.AirlineName,
			&review.FlightNumber,
			&review.DepartureTime,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, review)
	}
	return result, rows.Err()
}

// RatingsByAirline aggregates average rating and review count per flight
// instance of the airline, including flights with no reviews yet.
func (r *reviewRepository) RatingsByAirline(ctx context.Context, airline string) ([]domain.FlightRating, error) {
	const query = `
        SELECT f.airline_name, f.flight_number, f.departure_time,
               AVG(rv.rating) AS avg_rating, COUNT(rv.rating) AS cnt
        FROM flights f
        LEFT JOIN reviews rv ON rv.airline_name = f.airline_name
            AND rv.flight_number = f.flight_number
            AND rv.departure_time = f.departure_time
        WHERE f.airline_name = $1
        GROUP BY f.airline_name, f.flight_number, f.departure_time
        ORDER BY f.flight_number, f.departure_time`

	rows, err := r.pool.Query(ctx, query, airline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.FlightRating
	for rows.Next() {
		var rating domain.FlightRating
		if err := rows.Scan(
			&rating.AirlineName,
			&rating.FlightNumber,
			&rating.DepartureTime,
			&rating.AvgRating,
			&rating.ReviewCount,
		); err != nil {
			return nil, err
		}
		result = append(result, rating)
	}
	return result, rows.Err()
}
