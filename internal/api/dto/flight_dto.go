package dto

import (
	"time"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

// FlightResponse is the wire representation of a flight.
type FlightResponse struct {
	AirlineName      string    `json:"airline_name"`
	FlightNumber     string    `json:"flight_number"`
	DepartureTime    time.Time `json:"departure_date_time"`
	ArrivalTime      time.Time `json:"arrival_date_time"`
	BasePriceCents   int64     `json:"base_price_cents"`
	DepartureAirport string    `json:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport"`
	Status           string    `json:"status"`
}

// NewFlightResponse maps a domain flight.
func NewFlightResponse(f domain.Flight) FlightResponse {
	return FlightResponse{
		AirlineName:      f.AirlineName,
		FlightNumber:     f.FlightNumber,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		BasePriceCents:   f.BasePriceCents,
		DepartureAirport: f.DepartureAirport,
		ArrivalAirport:   f.ArrivalAirport,
		Status:           string(f.Status),
	}
}

// NewFlightResponses maps a slice of domain flights.
func NewFlightResponses(flights []domain.Flight) []FlightResponse {
	result := make([]FlightResponse, 0, len(flights))
	for _, f := range flights {
		result = append(result, NewFlightResponse(f))
	}
	return result
}

// PublicSearchRequest payload for the anonymous flight search.
type PublicSearchRequest struct {
	Depart string `json:"depart"`
	Arrive string `json:"arrive"`
	Date   string `json:"date"`
}

// FlightCreateRequest payload for staff flight creation.
type FlightCreateRequest struct {
	FlightNumber      string `json:"flight_number"`
	DepartureDateTime string `json:"departure_date_time"`
	ArrivalDateTime   string `json:"arrival_date_time"`
	BasePriceCents    int64  `json:"base_price_cents"`
	DepartureAirport  string `json:"departure_airport"`
	ArrivalAirport    string `json:"arrival_airport"`
	AirplaneID        string `json:"airplane_id_number"`
	Status            string `json:"status"`
}

// StatusChangeRequest payload for staff status updates.
type StatusChangeRequest struct {
	FlightNumber      string `json:"flight_number"`
	DepartureDateTime string `json:"departure_date_time"`
	Status            string `json:"status"`
}

// AirplaneCreateRequest payload for staff airplane registration.
type AirplaneCreateRequest struct {
	IDNumber     string `json:"id_number"`
	Seats        int    `json:"seats"`
	Manufacturer string `json:"manufacturer"`
	Age          *int   `json:"age"`
}
