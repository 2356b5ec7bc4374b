package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var searchNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStaffSearchAirlineAlwaysFirstParam(t *testing.T) {
	filter := StaffSearchFilter{Airline: "Jet Blue"}
	query, args := filter.BuildQuery(searchNow)

	assert.Contains(t, query, "f.airline_name = $1")
	require.NotEmpty(t, args)
	assert.Equal(t, "Jet Blue", args[0])
}

func TestStaffSearchSwapsReversedDates(t *testing.T) {
	start := day(2025, 4, 1)
	end := day(2025, 4, 20)

	reversed := StaffSearchFilter{Airline: "Jet Blue", StartDate: &end, EndDate: &start}
	ordered := StaffSearchFilter{Airline: "Jet Blue", StartDate: &start, EndDate: &end}

	qReversed, argsReversed := reversed.BuildQuery(searchNow)
	qOrdered, argsOrdered := ordered.BuildQuery(searchNow)

	assert.Equal(t, qOrdered, qReversed)
	assert.Equal(t, argsOrdered, argsReversed)
}

func TestStaffSearchExplicitRangeEndInclusive(t *testing.T) {
	start := day(2025, 4, 1)
	end := day(2025, 4, 20)

	filter := StaffSearchFilter{Airline: "Jet Blue", StartDate: &start, EndDate: &end}
	query, args := filter.BuildQuery(searchNow)

	assert.Contains(t, query, "f.departure_time >= $2")
	assert.Contains(t, query, "f.departure_time < $3")
	require.Len(t, args, 3)
	assert.Equal(t, start, args[1])
	assert.Equal(t, day(2025, 4, 21), args[2], "end bound is start of the day after end_date")
}

func TestStaffSearchExplicitRangeWinsOverPeriod(t *testing.T) {
	start := day(2025, 4, 1)
	end := day(2025, 4, 2)

	filter := StaffSearchFilter{Airline: "Jet Blue", Period: "past", StartDate: &start, EndDate: &end}
	_, args := filter.BuildQuery(searchNow)

	require.Len(t, args, 3)
	assert.Equal(t, start, args[1])
}

func TestStaffSearchPeriodCurrent(t *testing.T) {
	filter := StaffSearchFilter{Airline: "Jet Blue", Period: "Current "}
	_, args := filter.BuildQuery(searchNow)

	require.Len(t, args, 3)
	assert.Equal(t, day(2025, 3, 10), args[1])
	assert.Equal(t, day(2025, 3, 11), args[2])
}

func TestStaffSearchPeriodFuture(t *testing.T) {
	filter := StaffSearchFilter{Airline: "Jet Blue", Period: "future"}
	query, args := filter.BuildQuery(searchNow)

	assert.Contains(t, query, "f.departure_time >= $2")
	assert.NotContains(t, query, "$3")
	require.Len(t, args, 2)
	assert.Equal(t, searchNow, args[1])
}

func TestStaffSearchPeriodPast(t *testing.T) {
	filter := StaffSearchFilter{Airline: "Jet Blue", Period: "past"}
	query, args := filter.BuildQuery(searchNow)

	assert.Contains(t, query, "f.departure_time < $2")
	require.Len(t, args, 2)
	assert.Equal(t, searchNow, args[1])
}

func TestStaffSearchUnknownPeriodDefaultsToThirtyDayWindow(t *testing.T) {
	for _, period := range []string{"", "range", "nonsense"} {
		filter := StaffSearchFilter{Airline: "Jet Blue", Period: period}
		_, args := filter.BuildQuery(searchNow)

		require.Len(t, args, 3, "period %q", period)
		assert.Equal(t, day(2025, 3, 10), args[1])
		assert.Equal(t, day(2025, 4, 9), args[2])
	}
}

func TestStaffSearchOptionalFiltersAnded(t *testing.T) {
	start := day(2025, 4, 1)
	end := day(2025, 4, 20)

	filter := StaffSearchFilter{
		Airline:     "Jet Blue",
		StartDate:   &start,
		EndDate:     &end,
		FromAirport: " jfk ",
		ToAirport:   "lax",
		FromCity:    " New York ",
		ToCity:      "Los Angeles",
	}
	query, args := filter.BuildQuery(searchNow)

	assert.Contains(t, query, "f.departure_airport = $4")
	assert.Contains(t, query, "f.arrival_airport = $5")
	assert.Contains(t, query, "da.city LIKE $6")
	assert.Contains(t, query, "aa.city LIKE $7")

	require.Len(t, args, 7)
	assert.Equal(t, "JFK", args[3], "airport codes are uppercased and trimmed")
	assert.Equal(t, "LAX", args[4])
	assert.Equal(t, "%New York%", args[5], "city terms are substring matches")
	assert.Equal(t, "%Los Angeles%", args[6])
}

func TestStaffSearchUserInputNeverInQueryText(t *testing.T) {
	filter := StaffSearchFilter{
		Airline:  "Jet'; DROP TABLE flights;--",
		FromCity: "Rob'); DELETE FROM tickets;--",
	}
	query, _ := filter.BuildQuery(searchNow)

	assert.NotContains(t, query, "DROP TABLE")
	assert.NotContains(t, query, "DELETE FROM tickets")
}

func TestStaffSearchOrderedByDeparture(t *testing.T) {
	filter := StaffSearchFilter{Airline: "Jet Blue"}
	query, _ := filter.BuildQuery(searchNow)

	assert.True(t, strings.HasSuffix(query, "ORDER BY f.departure_time"))
}

func TestPublicSearchFutureOnly(t *testing.T) {
	filter := PublicSearchFilter{}
	query, args := filter.BuildQuery(searchNow)

	assert.Contains(t, query, "f.departure_time >= $1")
	require.Len(t, args, 1)
	assert.Equal(t, searchNow, args[0])
}

func TestPublicSearchByAirportsAndDate(t *testing.T) {
	date := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	filter := PublicSearchFilter{
		FromAirport:   "bos",
		ToAirport:     " sfo",
		DepartureDate: &date,
	}
	query, args := filter.BuildQuery(searchNow)

	assert.Contains(t, query, "f.departure_airport = $2")
	assert.Contains(t, query, "f.arrival_airport = $3")
	require.Len(t, args, 5)
	assert.Equal(t, "BOS", args[1])
	assert.Equal(t, "SFO", args[2])
	assert.Equal(t, day(2025, 5, 1), args[3], "date filter matches the calendar day")
	assert.Equal(t, day(2025, 5, 2), args[4])
}
