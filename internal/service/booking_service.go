package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/spec-kit/airline-reservation/internal/domain"
	"github.com/spec-kit/airline-reservation/internal/events"
	"github.com/spec-kit/airline-reservation/internal/repository"
	apperrors "github.com/spec-kit/airline-reservation/pkg/util"
)

// Purchase rejection codes, in validation order.
const (
	CodeFlightNotFound    = "FLIGHT_NOT_FOUND"
	CodeFlightCancelled   = "FLIGHT_CANCELLED"
	CodeFlightDeparted    = "FLIGHT_DEPARTED"
	CodeCustomerNotFound  = "CUSTOMER_NOT_FOUND"
	CodeNameMismatch      = "NAME_MISMATCH"
	CodeInvalidCardFormat = "INVALID_CARD_FORMAT"
	CodeInvalidCardLength = "INVALID_CARD_LENGTH"
)

const (
	minCardDigits = 13
	maxCardDigits = 19
)

// PurchaseInput describes a ticket purchase request.
type PurchaseInput struct {
	AirlineName    string
	FlightNumber   string
	DepartureTime  time.Time
	NameOnCard     string
	CardType       string
	CardNumber     string
	ExpirationDate time.Time
}

// ReportMode selects the sales-report aggregation.
type ReportMode string

const (
	ReportModeRange     ReportMode = "range"
	ReportModeLastMonth ReportMode = "last_month"
	ReportModeLastYear  ReportMode = "last_year"
)

// SalesReport holds either daily or monthly rows depending on the mode.
type SalesReport struct {
	Mode    ReportMode
	Daily   []repository.DailySales
	Monthly []repository.MonthlySales
}

// BookingDependencies bundles repositories for the booking service.
type BookingDependencies struct {
	TicketRepo   repository.TicketRepository
	FlightRepo   repository.FlightRepository
	CustomerRepo repository.CustomerRepository
	Dispatcher   events.Dispatcher
}

// BookingService coordinates ticket purchase and staff ticket views.
type BookingService struct {
	tickets    repository.TicketRepository
	flights    repository.FlightRepository
	customers  repository.CustomerRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// BookingServiceOption customizes the service.
type BookingServiceOption func(*BookingService)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies, opts ...BookingServiceOption) *BookingService {
	s := &BookingService{
		tickets:    deps.TicketRepo,
		flights:    deps.FlightRepo,
		customers:  deps.CustomerRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Purchase validates the purchase request and records the ticket. Checks run
// in a fixed order and stop at the first failure so the rejection reason is
// deterministic.
func (s *BookingService) Purchase(ctx context.Context, customerEmail string, input PurchaseInput) (*domain.Ticket, error) {
	key := domain.FlightKey{
		AirlineName:   strings.TrimSpace(input.AirlineName),
		FlightNumber:  strings.TrimSpace(input.FlightNumber),
		DepartureTime: input.DepartureTime,
	}
	if key.AirlineName == "" || key.FlightNumber == "" || key.DepartureTime.IsZero() {
		return nil, apperrors.NewValidationError("airline, flight number and departure time required", nil)
	}
	if strings.TrimSpace(input.CardNumber) == "" || input.ExpirationDate.IsZero() {
		return nil, apperrors.NewValidationError("card number and expiration date required", nil)
	}

	flight, err := s.flights.GetByKey(ctx, key)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewDomainError(CodeFlightNotFound, "flight not found", http.StatusNotFound, nil)
		}
		return nil, err
	}

	if flight.Status == domain.FlightStatusCancelled {
		return nil, apperrors.NewBusinessRule(CodeFlightCancelled, "cannot purchase: this flight is cancelled")
	}

	if !flight.DepartureTime.After(s.now()) {
		return nil, apperrors.NewBusinessRule(CodeFlightDeparted, "cannot purchase: this flight has already departed")
	}

	customer, err := s.customers.GetByEmail(ctx, customerEmail)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewDomainError(CodeCustomerNotFound, "customer not found", http.StatusNotFound, nil)
		}
		return nil, err
	}

	nameOnCard := strings.TrimSpace(input.NameOnCard)
	if nameOnCard == "" {
		nameOnCard = customer.Email
	}
	if normalizeName(nameOnCard) != normalizeName(customer.Name) {
		return nil, apperrors.NewBusinessRule(CodeNameMismatch, "the name on the card must match the account name")
	}

	cardNumber := strings.TrimSpace(input.CardNumber)
	if !allDigits(cardNumber) {
		return nil, apperrors.NewBusinessRule(CodeInvalidCardFormat, "card numbers can only contain digits")
	}
	if len(cardNumber) < minCardDigits || len(cardNumber) > maxCardDigits {
		return nil, apperrors.NewBusinessRule(CodeInvalidCardLength, "card number length must be between 13 and 19 digits")
	}

	cardType := strings.TrimSpace(input.CardType)
	if cardType == "" {
		cardType = "Credit"
	}

	ticket := &domain.Ticket{
		CustomerEmail:  customer.Email,
		AirlineName:    key.AirlineName,
		FlightNumber:   key.FlightNumber,
		DepartureTime:  key.DepartureTime,
		CardType:       cardType,
		CardNumber:     cardNumber,
		NameOnCard:     nameOnCard,
		ExpirationDate: input.ExpirationDate,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventTicketPurchased,
		Actor: events.Actor{Role: domain.RoleCustomer, Email: customer.Email},
		Payload: events.TicketPurchasedPayload{
			TicketID:      ticket.ID,
			AirlineName:   ticket.AirlineName,
			FlightNumber:  ticket.FlightNumber,
			DepartureTime: ticket.DepartureTime,
		},
	})
	return ticket, nil
}

// UpcomingFlights lists the customer's purchased flights that have not departed.
func (s *BookingService) UpcomingFlights(ctx context.Context, customerEmail string) ([]domain.PurchasedFlight, error) {
	return s.tickets.ListUpcomingByCustomer(ctx, customerEmail, s.now())
}

// FlightCustomers lists ticket holders of one flight instance operated by the
// staff member's airline.
func (s *BookingService) FlightCustomers(ctx context.Context, staff StaffContext, flightNumber string, departure time.Time) ([]domain.FlightCustomer, error) {
	if flightNumber == "" || departure.IsZero() {
		return nil, apperrors.NewValidationError("flight number and departure time required", nil)
	}
	key := domain.FlightKey{AirlineName: staff.Airline, FlightNumber: flightNumber, DepartureTime: departure}
	return s.tickets.ListCustomersByFlight(ctx, key)
}

// SalesReportInput selects the report window.
type SalesReportInput struct {
	Mode  ReportMode
	Start time.Time
	End   time.Time
}

// SalesReport aggregates tickets sold for the airline: per day over an
// explicit range, or per month over the trailing month or year.
func (s *BookingService) SalesReport(ctx context.Context, staff StaffContext, input SalesReportInput) (*SalesReport, error) {
	switch input.Mode {
	case ReportModeRange:
		if input.Start.IsZero() || input.End.IsZero() {
			return nil, apperrors.NewValidationError("start and end dates required for range report", nil)
		}
		rows, err := s.tickets.SalesByDay(ctx, staff.Airline, input.Start, input.End)
		if err != nil {
			return nil, err
		}
		return &SalesReport{Mode: ReportModeRange, Daily: rows}, nil
	case ReportModeLastMonth:
		rows, err := s.tickets.SalesByMonth(ctx, staff.Airline, s.now().AddDate(0, -1, 0))
		if err != nil {
			return nil, err
		}
		return &SalesReport{Mode: ReportModeLastMonth, Monthly: rows}, nil
	case ReportModeLastYear:
		rows, err := s.tickets.SalesByMonth(ctx, staff.Airline, s.now().AddDate(-1, 0, 0))
		if err != nil {
			return nil, err
		}
		return &SalesReport{Mode: ReportModeLastYear, Monthly: rows}, nil
	default:
		return nil, apperrors.NewValidationError("unknown report mode", map[string]any{"mode": string(input.Mode)})
	}
}

func (s *BookingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// normalizeName collapses internal whitespace and folds case so that
// "  JOHN   DOE" matches "John Doe".
func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
