package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/airline-reservation/internal/domain"
	"github.com/spec-kit/airline-reservation/internal/events"
	"github.com/spec-kit/airline-reservation/internal/repository"
	apperrors "github.com/spec-kit/airline-reservation/pkg/util"
)

// FlightCreateInput describes the staff flight-creation payload.
type FlightCreateInput struct {
	FlightNumber     string
	DepartureTime    time.Time
	ArrivalTime      time.Time
	BasePriceCents   int64
	DepartureAirport string
	ArrivalAirport   string
	AirplaneID       string
	Status           domain.FlightStatus
}

// AirplaneCreateInput describes the staff add-airplane payload.
type AirplaneCreateInput struct {
	IDNumber     string
	Seats        int
	Manufacturer string
	Age          *int
}

// FlightDependencies bundles repositories for the flight service.
type FlightDependencies struct {
	FlightRepo  repository.FlightRepository
	AirlineRepo repository.AirlineRepository
	Dispatcher  events.Dispatcher
}

// FlightService coordinates flight search and staff flight management.
type FlightService struct {
	flights    repository.FlightRepository
	airlines   repository.AirlineRepository
	dispatcher events.Dispatcher
}

// NewFlightService constructs the service.
func NewFlightService(deps FlightDependencies) *FlightService {
	return &FlightService{
		flights:    deps.FlightRepo,
		airlines:   deps.AirlineRepo,
		dispatcher: deps.Dispatcher,
	}
}

// PublicSearch lists future flights matching the anonymous search filters.
func (s *FlightService) PublicSearch(ctx context.Context, filter repository.PublicSearchFilter) ([]domain.Flight, error) {
	return s.flights.PublicSearch(ctx, filter)
}

// StaffSearch lists the airline's flights matching the staff filters. The
// airline always comes from the session, never from the request.
func (s *FlightService) StaffSearch(ctx context.Context, staff StaffContext, filter repository.StaffSearchFilter) ([]domain.Flight, error) {
	filter.Airline = staff.Airline
	return s.flights.StaffSearch(ctx, filter)
}

// CreateFlight inserts a flight for the staff member's airline. The airplane
// must belong to that airline.
func (s *FlightService) CreateFlight(ctx context.Context, staff StaffContext, input FlightCreateInput) (*domain.Flight, error) {
	flightNumber := strings.TrimSpace(input.FlightNumber)
	airplaneID := strings.TrimSpace(input.AirplaneID)
	if flightNumber == "" || input.DepartureTime.IsZero() || input.ArrivalTime.IsZero() || airplaneID == "" {
		return nil, apperrors.NewValidationError("flight number, schedule and airplane required", nil)
	}
	if !input.DepartureTime.Before(input.ArrivalTime) {
		return nil, apperrors.NewValidationError("departure must precede arrival", nil)
	}

	status := input.Status
	if status == "" {
		status = domain.FlightStatusOnTime
	}
	if !domain.ValidFlightStatus(status) {
		return nil, apperrors.NewValidationError("unknown flight status", map[string]any{"status": string(status)})
	}

	owned, err := s.airlines.AirplaneExists(ctx, staff.Airline, airplaneID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperrors.NewValidationError("airplane does not belong to your airline", map[string]any{"airplane_id": airplaneID})
	}

	flight := &domain.Flight{
		AirlineName:      staff.Airline,
		FlightNumber:     flightNumber,
		DepartureTime:    input.DepartureTime,
		ArrivalTime:      input.ArrivalTime,
		BasePriceCents:   input.BasePriceCents,
		DepartureAirport: strings.ToUpper(strings.TrimSpace(input.DepartureAirport)),
		ArrivalAirport:   strings.ToUpper(strings.TrimSpace(input.ArrivalAirport)),
		AirplaneID:       airplaneID,
		Status:           status,
	}
	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventFlightCreated,
		Actor: events.Actor{Role: domain.RoleStaff, Username: staff.Username},
		Payload: events.FlightCreatedPayload{
			AirlineName:   flight.AirlineName,
			FlightNumber:  flight.FlightNumber,
			DepartureTime: flight.DepartureTime,
			Status:        flight.Status,
		},
	})
	return flight, nil
}

// ChangeStatus updates the status of a flight owned by the staff member's
// airline. Flights of other airlines are invisible to the update.
func (s *FlightService) ChangeStatus(ctx context.Context, staff StaffContext, flightNumber string, departure time.Time, status domain.FlightStatus) error {
	if !domain.ValidFlightStatus(status) {
		return apperrors.NewValidationError("unknown flight status", map[string]any{"status": string(status)})
	}

	key := domain.FlightKey{
		AirlineName:   staff.Airline,
		FlightNumber:  strings.TrimSpace(flightNumber),
		DepartureTime: departure,
	}
	if err := s.flights.UpdateStatus(ctx, key, status); err != nil {
		if isNoRows(err) {
			return apperrors.NewNotFound("flight", map[string]any{
				"flight_number": key.FlightNumber,
			})
		}
		return err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventFlightStatusChanged,
		Actor: events.Actor{Role: domain.RoleStaff, Username: staff.Username},
		Payload: events.FlightStatusChangedPayload{
			AirlineName:   key.AirlineName,
			FlightNumber:  key.FlightNumber,
			DepartureTime: key.DepartureTime,
			NewStatus:     status,
		},
	})
	return nil
}

// AddAirplane registers an airplane under the staff member's airline.
func (s *FlightService) AddAirplane(ctx context.Context, staff StaffContext, input AirplaneCreateInput) (*domain.Airplane, error) {
	idNumber := strings.TrimSpace(input.IDNumber)
	if idNumber == "" {
		return nil, apperrors.NewValidationError("airplane id required", nil)
	}
	if input.Seats <= 0 {
		return nil, apperrors.NewValidationError("seats must be positive", nil)
	}

	airplane := &domain.Airplane{
		AirlineName:  staff.Airline,
		IDNumber:     idNumber,
		Seats:        input.Seats,
		Manufacturer: strings.TrimSpace(input.Manufacturer),
		Age:          input.Age,
	}
	if err := s.airlines.CreateAirplane(ctx, airplane); err != nil {
		return nil, err
	}
	return airplane, nil
}

func (s *FlightService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
