package dto

import (
	"time"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

// PurchaseRequest payload for ticket purchase.
type PurchaseRequest struct {
	AirlineName       string `json:"airline_name"`
	FlightNumber      string `json:"flight_number"`
	DepartureDateTime string `json:"departure_date_time"`
	NameOnCard        string `json:"name_on_card"`
	CardType          string `json:"card_type"`
	CardNumber        string `json:"card_number"`
	ExpirationDate    string `json:"expiration_date"`
}

// PurchasedFlightResponse is one row of the customer's upcoming flights.
type PurchasedFlightResponse struct {
	TicketID         int64     `json:"ticket_id"`
	AirlineName      string    `json:"airline_name"`
	FlightNumber     string    `json:"flight_number"`
	DepartureTime    time.Time `json:"departure_date_time"`
	ArrivalTime      time.Time `json:"arrival_date_time"`
	DepartureAirport string    `json:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport"`
	Status           string    `json:"status"`
}

// NewPurchasedFlightResponses maps purchased flights.
func NewPurchasedFlightResponses(flights []domain.PurchasedFlight) []PurchasedFlightResponse {
	result := make([]PurchasedFlightResponse, 0, len(flights))
	for _, f := range flights {
		result = append(result, PurchasedFlightResponse{
			TicketID:         f.TicketID,
			AirlineName:      f.AirlineName,
			FlightNumber:     f.FlightNumber,
			DepartureTime:    f.DepartureTime,
			ArrivalTime:      f.ArrivalTime,
			DepartureAirport: f.DepartureAirport,
			ArrivalAirport:   f.ArrivalAirport,
			Status:           string(f.Status),
		})
	}
	return result
}

// FlightCustomerResponse is one ticket holder on a flight.
type FlightCustomerResponse struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	CardType   string `json:"card_type"`
	CardNumber string `json:"card_number"`
	NameOnCard string `json:"name_on_card"`
}

// NewFlightCustomerResponses maps flight customers.
func NewFlightCustomerResponses(customers []domain.FlightCustomer) []FlightCustomerResponse {
	result := make([]FlightCustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, FlightCustomerResponse(c))
	}
	return result
}

// ReportRequest payload for staff sales reports.
type ReportRequest struct {
	Mode  string `json:"mode"`
	Start string `json:"start"`
	End   string `json:"end"`
}
