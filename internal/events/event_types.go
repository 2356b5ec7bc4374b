package events

import (
	"time"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketPurchased     EventType = "ticket_purchased"
	EventFlightCreated       EventType = "flight_created"
	EventFlightStatusChanged EventType = "flight_status_changed"
	EventReviewSaved         EventType = "review_saved"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role     domain.Role `json:"role"`
	Email    string      `json:"email,omitempty"`
	Username string      `json:"username,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketPurchasedPayload payload.
type TicketPurchasedPayload struct {
	TicketID      int64     `json:"ticket_id"`
	AirlineName   string    `json:"airline_name"`
	FlightNumber  string    `json:"flight_number"`
	DepartureTime time.Time `json:"departure_time"`
}

// FlightCreatedPayload payload.
type FlightCreatedPayload struct {
	AirlineName   string              `json:"airline_name"`
	FlightNumber  string              `json:"flight_number"`
	DepartureTime time.Time           `json:"departure_time"`
	Status        domain.FlightStatus `json:"status"`
}

// FlightStatusChangedPayload payload.
type FlightStatusChangedPayload struct {
	AirlineName   string              `json:"airline_name"`
	FlightNumber  string              `json:"flight_number"`
	DepartureTime time.Time           `json:"departure_time"`
	NewStatus     domain.FlightStatus `json:"new_status"`
}

// ReviewSavedPayload payload.
type ReviewSavedPayload struct {
	AirlineName   string    `json:"airline_name"`
	FlightNumber  string    `json:"flight_number"`
	DepartureTime time.Time `json:"departure_time"`
	Rating        int       `json:"rating"`
}
