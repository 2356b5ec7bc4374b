package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/airline-reservation/internal/auth"
	"github.com/spec-kit/airline-reservation/internal/domain"
	"github.com/spec-kit/airline-reservation/internal/events"
	"github.com/spec-kit/airline-reservation/internal/repository"
)

type mockFlightRepo struct {
	mock.Mock
}

func (m *mockFlightRepo) Create(ctx context.Context, flight *domain.Flight) error {
	return m.Called(ctx, flight).Error(0)
}

func (m *mockFlightRepo) GetByKey(ctx context.Context, key domain.FlightKey) (*domain.Flight, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *mockFlightRepo) UpdateStatus(ctx context.Context, key domain.FlightKey, status domain.FlightStatus) error {
	return m.Called(ctx, key, status).Error(0)
}

func (m *mockFlightRepo) StaffSearch(ctx context.Context, filter repository.StaffSearchFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *mockFlightRepo) PublicSearch(ctx context.Context, filter repository.PublicSearchFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type mockTicketRepo struct {
	mock.Mock
}

func (m *mockTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	return m.Called(ctx, ticket).Error(0)
}

func (m *mockTicketRepo) ListUpcomingByCustomer(ctx context.Context, email string, now time.Time) ([]domain.PurchasedFlight, error) {
	args := m.Called(ctx, email, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchasedFlight), args.Error(1)
}

func (m *mockTicketRepo) ListCustomersByFlight(ctx context.Context, key domain.FlightKey) ([]domain.FlightCustomer, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightCustomer), args.Error(1)
}

func (m *mockTicketRepo) SalesByDay(ctx context.Context, airline string, start, end time.Time) ([]repository.DailySales, error) {
	args := m.Called(ctx, airline, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DailySales), args.Error(1)
}

func (m *mockTicketRepo) SalesByMonth(ctx context.Context, airline string, since time.Time) ([]repository.MonthlySales, error) {
	args := m.Called(ctx, airline, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.MonthlySales), args.Error(1)
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type mockStaffRepo struct {
	mock.Mock
}

func (m *mockStaffRepo) Create(ctx context.Context, staff *domain.StaffMember) error {
	return m.Called(ctx, staff).Error(0)
}

func (m *mockStaffRepo) GetByUsername(ctx context.Context, username string) (*domain.StaffMember, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffMember), args.Error(1)
}

type mockAirlineRepo struct {
	mock.Mock
}

func (m *mockAirlineRepo) AirlineExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockAirlineRepo) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	return m.Called(ctx, airplane).Error(0)
}

func (m *mockAirlineRepo) AirplaneExists(ctx context.Context, airline, idNumber string) (bool, error) {
	args := m.Called(ctx, airline, idNumber)
	return args.Bool(0), args.Error(1)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Upsert(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) Delete(ctx context.Context, email string, key domain.FlightKey) error {
	return m.Called(ctx, email, key).Error(0)
}

func (m *mockReviewRepo) ListByCustomer(ctx context.Context, email string) ([]domain.Review, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) ListByAirline(ctx context.Context, airline string) ([]domain.Review, error) {
	args := m.Called(ctx, airline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) RatingsByAirline(ctx context.Context, airline string) ([]domain.FlightRating, error) {
	args := m.Called(ctx, airline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightRating), args.Error(1)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Create(ctx context.Context, session auth.Session) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}

func (m *mockSessionStore) Get(ctx context.Context, token string) (*auth.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *mockSessionStore) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) Events() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}
