package domain

import "time"

// Ticket records a completed purchase of one seat on one flight instance.
// Tickets are never mutated or deleted after purchase.
type Ticket struct {
	ID             int64
	CustomerEmail  string
	AirlineName    string
	FlightNumber   string
	DepartureTime  time.Time
	CardType       string
	CardNumber     string
	NameOnCard     string
	ExpirationDate time.Time
	PurchasedAt    time.Time
}

// PurchasedFlight is a customer's ticket joined with its flight schedule.
type PurchasedFlight struct {
	TicketID         int64
	AirlineName      string
	FlightNumber     string
	DepartureTime    time.Time
	ArrivalTime      time.Time
	DepartureAirport string
	ArrivalAirport   string
	Status           FlightStatus
}

// FlightCustomer is one ticket holder on a flight as seen by staff.
type FlightCustomer struct {
	Email      string
	Name       string
	CardType   string
	CardNumber string
	NameOnCard string
}
