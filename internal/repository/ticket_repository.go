package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

// DailySales is one row of the per-day ticket sales report.
type DailySales struct {
	Day     time.Time
	Tickets int
}

// MonthlySales is one row of the per-month ticket sales report.
type MonthlySales struct {
	Month   string
	Tickets int
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	ListUpcomingByCustomer(ctx context.Context, email string, now time.Time) ([]domain.PurchasedFlight, error)
	ListCustomersByFlight(ctx context.Context, key domain.FlightKey) ([]domain.FlightCustomer, error)
	SalesByDay(ctx context.Context, airline string, start, end time.Time) ([]DailySales, error)
	SalesByMonth(ctx context.Context, airline string, since time.Time) ([]MonthlySales, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

// Create inserts the ticket. The identifier comes from the tickets sequence,
// so concurrent purchases never allocate the same ID.
func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (customer_email, airline_name, flight_number, departure_time,
            card_type, card_number, name_on_card, expiration_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, purchased_at`

	return r.pool.QueryRow(ctx, query,
		ticket.CustomerEmail,
		ticket.AirlineName,
		ticket.FlightNumber,
		ticket.DepartureTime,
		ticket.CardType,
		ticket.CardNumber,
		ticket.NameOnCard,
		ticket.ExpirationDate,
	).Scan(&ticket.ID, &ticket.PurchasedAt)
}

func (r *ticketRepository) ListUpcomingByCustomer(ctx context.Context, email string, now time.Time) ([]domain.PurchasedFlight, error) {
	const query = `
        SELECT t.id, f.airline_name, f.flight_number, f.departure_time, f.arrival_time,
               f.departure_airport, f.arrival_airport, f.status
        FROM tickets t
        JOIN flights f ON f.airline_name = t.airline_name
            AND f.flight_number = t.flight_number
            AND f.departure_time = t.departure_time
        WHERE t.customer_email = $1 AND f.departure_time >= $2
        ORDER BY f.departure_time`

	rows, err := r.pool.Query(ctx, query, email, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PurchasedFlight
	for rows.Next() {
		var pf domain.PurchasedFlight
		if err := rows.Scan(
			&pf.TicketID,
			&pf.AirlineName,
			&pf.FlightNumber,
			&pf.DepartureTime,
			&pf.ArrivalTime,
			&pf.DepartureAirport,
			&pf.ArrivalAirport,
			&pf.Status,
		); err != nil {
			return nil, err
		}
		result = append(result, pf)
	}
	return result, rows.Err()
}

func (r *ticketRepository) ListCustomersByFlight(ctx context.Context, key domain.FlightKey) ([]domain.FlightCustomer, error) {
	const query = `
        SELECT c.email, c.name, t.card_type, t.card_number, t.name_on_card
        FROM tickets t
        JOIN customers c ON c.email = t.customer_email
        WHERE t.airline_name = $1 AND t.flight_number = $2 AND t.departure_time = $3
        ORDER BY c.name`

	rows, err := r.pool.Query(ctx, query, key.AirlineName, key.FlightNumber, key.DepartureTime)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.FlightCustomer
	for rows.Next() {
		var fc domain.FlightCustomer
		if err := rows.Scan(&fc.Email, &fc.Name, &fc.CardType, &fc.CardNumber, &fc.NameOnCard); err != nil {
			return nil, err
		}
		result = append(result, fc)
	}
	return result, rows.Err()
}

func (r *ticketRepository) SalesByDay(ctx context.Context, airline string, start, end time.Time) ([]DailySales, error) {
	const query = `
        SELECT DATE(t.purchased_at) AS day, COUNT(*) AS tickets
        FROM tickets t
        WHERE t.airline_name = $1
          AND DATE(t.purchased_at) BETWEEN $2 AND $3
        GROUP BY DATE(t.purchased_at)
        ORDER BY day`

	rows, err := r.pool.Query(ctx, query, airline, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []DailySales
	for rows.Next() {
		var row DailySales
		if err := rows.Scan(&row.Day, &row.Tickets); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *ticketRepository) SalesByMonth(ctx context.Context, airline string, since time.Time) ([]MonthlySales, error) {
	const query = `
        SELECT TO_CHAR(t.purchased_at, 'YYYY-MM') AS ym, COUNT(*) AS tickets
        FROM tickets t
        WHERE t.airline_name = $1 AND t.purchased_at >= $2
        GROUP BY ym
        ORDER BY ym`

	rows, err := r.pool.Query(ctx, query, airline, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []MonthlySales
	for rows.Next() {
		var row MonthlySales
		if err := rows.Scan(&row.Month, &row.Tickets); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
