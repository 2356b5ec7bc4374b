package domain

import "time"

// Review is a customer's rating of a flight instance. At most one review
// exists per (customer, flight instance); saving again replaces it.
type Review struct {
	CustomerEmail string
	AirlineName   string
	FlightNumber  string
	DepartureTime time.Time
	Rating        int
	Comment       string
	CreatedAt     time.Time
}

// FlightRating aggregates review scores for one flight instance.
type FlightRating struct {
	AirlineName   string
	FlightNumber  string
	DepartureTime time.Time
	AvgRating     *float64
	ReviewCount   int
}
