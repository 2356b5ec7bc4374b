package repository

import (
	"fmt"
	"strings"
	"time"
)

// nowFunc supplies the reference time for search windows; overridable in tests.
var nowFunc = time.Now

// Period values understood by the staff search. Anything else falls back to
// a 30-day forward window.
const (
	PeriodCurrent = "current"
	PeriodFuture  = "future"
	PeriodPast    = "past"
)

const defaultWindowDays = 30

const flightSelect = `SELECT f.airline_name, f.flight_number, f.departure_time, f.arrival_time,
       f.base_price_cents, f.departure_airport, f.arrival_airport, f.airplane_id, f.status, f.created_at
FROM flights f
JOIN airports da ON da.code = f.departure_airport
JOIN airports aa ON aa.code = f.arrival_airport`

// StaffSearchFilter captures the staff flight-listing parameters. Airline is
// required; the rest are optional. All values are bound as parameters.
type StaffSearchFilter struct {
	Airline     string
	Period      string
	StartDate   *time.Time
	EndDate     *time.Time
	FromAirport string
	ToAirport   string
	FromCity    string
	ToCity      string
}

// Normalize trims all text inputs, uppercases airport codes, and swaps the
// date bounds when end precedes start. The swap is a silent correction.
func (f StaffSearchFilter) Normalize() StaffSearchFilter {
	f.Airline = strings.TrimSpace(f.Airline)
	f.Period = strings.ToLower(strings.TrimSpace(f.Period))
	f.FromAirport = strings.ToUpper(strings.TrimSpace(f.FromAirport))
	f.ToAirport = strings.ToUpper(strings.TrimSpace(f.ToAirport))
	f.FromCity = strings.TrimSpace(f.FromCity)
	f.ToCity = strings.TrimSpace(f.ToCity)

	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		f.StartDate, f.EndDate = f.EndDate, f.StartDate
	}
	return f
}

// BuildQuery produces the parameterized listing query. An explicit date range
// wins over the period shorthand; the end date is inclusive at day
// granularity. Results are ordered by departure ascending.
func (f StaffSearchFilter) BuildQuery(now time.Time) (string, []any) {
	f = f.Normalize()

	args := []any{f.Airline}
	clauses := []string{"f.airline_name = $1"}

	addClause := func(format string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(format, len(args)))
	}

	if f.StartDate != nil && f.EndDate != nil {
		addClause("f.departure_time >= $%d", *f.StartDate)
		addClause("f.departure_time < $%d", f.EndDate.AddDate(0, 0, 1))
	} else {
		today := truncateToDay(now)
		switch f.Period {
		case PeriodCurrent:
			addClause("f.departure_time >= $%d", today)
			addClause("f.departure_time < $%d", today.AddDate(0, 0, 1))
		case PeriodFuture:
			addClause("f.departure_time >= $%d", now)
		case PeriodPast:
			addClause("f.departure_time < $%d", now)
		default:
			addClause("f.departure_time >= $%d", today)
			addClause("f.departure_time < $%d", today.AddDate(0, 0, defaultWindowDays))
		}
	}

	if f.FromAirport != "" {
		addClause("f.departure_airport = $%d", f.FromAirport)
	}
	if f.ToAirport != "" {
		addClause("f.arrival_airport = $%d", f.ToAirport)
	}
	if f.FromCity != "" {
		addClause("da.city LIKE $%d", "%"+f.FromCity+"%")
	}
	if f.ToCity != "" {
		addClause("aa.city LIKE $%d", "%"+f.ToCity+"%")
	}

	query := fmt.Sprintf("%s\nWHERE %s\nORDER BY f.departure_time",
		flightSelect, strings.Join(clauses, " AND "))
	return query, args
}

// PublicSearchFilter captures the anonymous/customer flight search. Only
// future flights are listed.
type PublicSearchFilter struct {
	FromAirport   string
	ToAirport     string
	DepartureDate *time.Time
}

// Normalize trims inputs and uppercases airport codes.
func (f PublicSearchFilter) Normalize() PublicSearchFilter {
	f.FromAirport = strings.ToUpper(strings.TrimSpace(f.FromAirport))
	f.ToAirport = strings.ToUpper(strings.TrimSpace(f.ToAirport))
	return f
}

// BuildQuery produces the parameterized public search query.
func (f PublicSearchFilter) BuildQuery(now time.Time) (string, []any) {
	f = f.Normalize()

	args := []any{now}
	clauses := []string{"f.departure_time >= $1"}

	addClause := func(format string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(format, len(args)))
	}

	if f.FromAirport != "" {
		addClause("f.departure_airport = $%d", f.FromAirport)
	}
	if f.ToAirport != "" {
		addClause("f.arrival_airport = $%d", f.ToAirport)
	}
	if f.DepartureDate != nil {
		day := truncateToDay(*f.DepartureDate)
		addClause("f.departure_time >= $%d", day)
		addClause("f.departure_time < $%d", day.AddDate(0, 0, 1))
	}

	query := fmt.Sprintf("%s\nWHERE %s\nORDER BY f.departure_time",
		flightSelect, strings.Join(clauses, " AND "))
	return query, args
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
