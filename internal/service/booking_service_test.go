package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/airline-reservation/internal/domain"
	"github.com/spec-kit/airline-reservation/internal/events"
	"github.com/spec-kit/airline-reservation/internal/repository"
	apperrors "github.com/spec-kit/airline-reservation/pkg/util"
)

var bookingNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return bookingNow }

func validPurchaseInput() PurchaseInput {
	return PurchaseInput{
		AirlineName:    "Jet Blue",
		FlightNumber:   "JB102",
		DepartureTime:  bookingNow.Add(48 * time.Hour),
		NameOnCard:     "Jane Doe",
		CardType:       "Credit",
		CardNumber:     "4111111111111111",
		ExpirationDate: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func openFlight(input PurchaseInput) *domain.Flight {
	return &domain.Flight{
		AirlineName:   input.AirlineName,
		FlightNumber:  input.FlightNumber,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.DepartureTime.Add(5 * time.Hour),
		Status:        domain.FlightStatusOnTime,
	}
}

func janeDoe() *domain.Customer {
	return &domain.Customer{Email: "jane@example.com", Name: "Jane Doe"}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func newBookingFixture() (*BookingService, *mockTicketRepo, *mockFlightRepo, *mockCustomerRepo, *recordingDispatcher) {
	tickets := new(mockTicketRepo)
	flights := new(mockFlightRepo)
	customers := new(mockCustomerRepo)
	dispatcher := &recordingDispatcher{}

	svc := NewBookingService(BookingDependencies{
		TicketRepo:   tickets,
		FlightRepo:   flights,
		CustomerRepo: customers,
		Dispatcher:   dispatcher,
	}, WithClock(fixedClock))
	return svc, tickets, flights, customers, dispatcher
}

func TestPurchaseMissingFlightKeyRejected(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture()

	input := validPurchaseInput()
	input.FlightNumber = "  "

	_, err := svc.Purchase(context.Background(), "jane@example.com", input)
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestPurchaseMissingCardRejected(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture()

	input := validPurchaseInput()
	input.CardNumber = ""

	_, err := svc.Purchase(context.Background(), "jane@example.com", input)
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestPurchaseUnknownFlight(t *testing.T) {
	svc, _, flights, _, _ := newBookingFixture()

	flights.On("GetByKey", mock.Anything, mock.Anything).Return(nil, pgx.ErrNoRows)

	_, err := svc.Purchase(context.Background(), "jane@example.com", validPurchaseInput())
	requireCode(t, err, CodeFlightNotFound)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestPurchaseCancelledFlightRejectedBeforeCardChecks(t *testing.T) {
	svc, _, flights, _, _ := newBookingFixture()

	input := validPurchaseInput()
	input.CardNumber = "not-even-digits"

	flight := openFlight(input)
	flight.Status = domain.FlightStatusCancelled
	flights.On("GetByKey", mock.Anything, flight.Key()).Return(flight, nil)

	_, err := svc.Purchase(context.Background(), "jane@example.com", input)
	requireCode(t, err, CodeFlightCancelled)
}

func TestPurchaseDepartedFlightRejected(t *testing.T) {
	svc, _, flights, _, _ := newBookingFixture()

	input := validPurchaseInput()
	input.DepartureTime = bookingNow.Add(-time.Hour)

	flight := openFlight(input)
	flights.On("GetByKey", mock.Anything, flight.Key()).Return(flight, nil)

	_, err := svc.Purchase(context.Background(), "jane@example.com", input)
	requireCode(t, err, CodeFlightDeparted)
}

func TestPurchaseDepartureExactlyNowRejected(t *testing.T) {
	svc, _, flights, _, _ := newBookingFixture()

	input := validPurchaseInput()
	input.DepartureTime = bookingNow

	flight := openFlight(input)
	flights.On("GetByKey", mock.Anything, flight.Key()).Return(flight, nil)

	_, err := svc.Purchase(context.Background(), "jane@example.com", input)
	requireCode(t, err, CodeFlightDeparted)
}

func TestPurchaseUnknownCustomer(t *testing.T) {
	svc, _, flights, customers, _ := newBookingFixture()

	input := validPurchaseInput()
	flights.On("GetByKey", mock.Anything, mock.Anything).Return(openFlight(input), nil)
	customers.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, pgx.ErrNoRows)

	_, err := svc.Purchase(context.Background(), "ghost@example.com", input)
	requireCode(t, err, CodeCustomerNotFound)
}

func TestPurchaseNameMismatch(t *testing.T) {
	svc, _, flights, customers, _ := newBookingFixture()

	input := validPurchaseInput()
	input.NameOnCard = "Someone Else"

	flights.On("GetByKey", mock.Anything, mock.Anything).Return(openFlight(input), nil)
	customers.On("GetByEmail", mock.Anything, "jane@example.com").Return(janeDoe(), nil)

	_, err := svc.Purchase(context.Background(), "jane@example.com", input)
	requireCode(t, err, CodeNameMismatch)
}

func TestPurchaseNameMatchIgnoresCaseAndSpacing(t *testing.T) {
	svc, tickets, flights, customers, _ := newBookingFixture()

	input := validPurchaseInput()
	input.NameOnCard = "  JANE   DOE "

	flights.On("GetByKey", mock.Anything, mock.Anything).Return(openFlight(input), nil)
	customers.On("GetByEmail", mock.Anything, "jane@example.com").Return(janeDoe(), nil)
	tickets.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Purchase(context.Background(), "jane@example.com", input)
	require.NoError(t, err)
}

func TestPurchaseCardNumberMustBeDigits(t *testing.T) {
	svc, _, flights, customers, _ := newBookingFixture()

	input := validPurchaseInput()
	input.CardNumber = "12AB56789012345"

	flights.On("GetByKey", mock.Anything, mock.Anything).Return(openFlight(input), nil)
	customers.On("GetByEmail", mock.Anything, "jane@example.com").Return(janeDoe(), nil)

	_, err := svc.Purchase(context.Background(), "jane@example.com", input)
	requireCode(t, err, CodeInvalidCardFormat)
}

func TestPurchaseCardNumberLengthBounds(t *testing.T) {
	cases := []struct {
		name   string
		digits int
		code   string
	}{
		{"twelve digits too short", 12, CodeInvalidCardLength},
		{"thirteen digits accepted", 13, ""},
		{"nineteen digits accepted", 19, ""},
		{"twenty digits too long", 20, CodeInvalidCardLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, tickets, flights, customers, _ := newBookingFixture()

			input := validPurchaseInput()
			input.CardNumber = strings.Repeat("4", tc.digits)

			flights.On("GetByKey", mock.Anything, mock.Anything).Return(openFlight(input), nil)
			customers.On("GetByEmail", mock.Anything, "jane@example.com").Return(janeDoe(), nil)
			tickets.On("Create", mock.Anything, mock.Anything).Return(nil)

			_, err := svc.Purchase(context.Background(), "jane@example.com", input)
			if tc.code == "" {
				require.NoError(t, err)
			} else {
				requireCode(t, err, tc.code)
				tickets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestPurchaseSuccessRecordsTicketAndPublishes(t *testing.T) {
	svc, tickets, flights, customers, dispatcher := newBookingFixture()

	input := validPurchaseInput()
	flights.On("GetByKey", mock.Anything, mock.Anything).Return(openFlight(input), nil)
	customers.On("GetByEmail", mock.Anything, "jane@example.com").Return(janeDoe(), nil)
	tickets.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		ticket := args.Get(1).(*domain.Ticket)
		ticket.ID = 42
		ticket.PurchasedAt = bookingNow
	}).Return(nil)

	ticket, err := svc.Purchase(context.Background(), "jane@example.com", input)
	require.NoError(t, err)

	assert.Equal(t, int64(42), ticket.ID)
	assert.Equal(t, "jane@example.com", ticket.CustomerEmail)
	assert.Equal(t, "Jet Blue", ticket.AirlineName)
	assert.Equal(t, "JB102", ticket.FlightNumber)

	published := dispatcher.Events()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventTicketPurchased, published[0].Type)
	assert.Equal(t, "jane@example.com", published[0].Actor.Email)

	payload := published[0].Payload.(events.TicketPurchasedPayload)
	assert.Equal(t, int64(42), payload.TicketID)
}

func TestPurchaseDefaultsCardType(t *testing.T) {
	svc, tickets, flights, customers, _ := newBookingFixture()

	input := validPurchaseInput()
	input.CardType = ""

	flights.On("GetByKey", mock.Anything, mock.Anything).Return(openFlight(input), nil)
	customers.On("GetByEmail", mock.Anything, "jane@example.com").Return(janeDoe(), nil)
	tickets.On("Create", mock.Anything, mock.Anything).Return(nil)

	ticket, err := svc.Purchase(context.Background(), "jane@example.com", input)
	require.NoError(t, err)
	assert.Equal(t, "Credit", ticket.CardType)
}

func TestPurchaseRepositoryFailurePropagates(t *testing.T) {
	svc, tickets, flights, customers, dispatcher := newBookingFixture()

	input := validPurchaseInput()
	flights.On("GetByKey", mock.Anything, mock.Anything).Return(openFlight(input), nil)
	customers.On("GetByEmail", mock.Anything, "jane@example.com").Return(janeDoe(), nil)
	tickets.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.Purchase(context.Background(), "jane@example.com", input)
	require.Error(t, err)
	assert.Empty(t, dispatcher.Events(), "no event for a failed purchase")
}

// sequenceTicketRepo assigns IDs the way the database sequence does.
type sequenceTicketRepo struct {
	mockTicketRepo
	nextID atomic.Int64
}

func (r *sequenceTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	ticket.ID = r.nextID.Add(1)
	return nil
}

func TestConcurrentPurchasesGetDistinctTicketIDs(t *testing.T) {
	tickets := &sequenceTicketRepo{}
	flights := new(mockFlightRepo)
	customers := new(mockCustomerRepo)

	input := validPurchaseInput()
	flights.On("GetByKey", mock.Anything, mock.Anything).Return(openFlight(input), nil)
	customers.On("GetByEmail", mock.Anything, "jane@example.com").Return(janeDoe(), nil)

	svc := NewBookingService(BookingDependencies{
		TicketRepo:   tickets,
		FlightRepo:   flights,
		CustomerRepo: customers,
	}, WithClock(fixedClock))

	const buyers = 16
	ids := make([]int64, buyers)
	errs := make([]error, buyers)

	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ticket, err := svc.Purchase(context.Background(), "jane@example.com", input)
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = ticket.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, buyers)
	for i, id := range ids {
		require.NoError(t, errs[i])
		assert.False(t, seen[id], "duplicate ticket id %d", id)
		seen[id] = true
	}
}

func TestFlightCustomersScopedToStaffAirline(t *testing.T) {
	svc, tickets, _, _, _ := newBookingFixture()

	departure := bookingNow.Add(24 * time.Hour)
	expectedKey := domain.FlightKey{AirlineName: "Jet Blue", FlightNumber: "JB102", DepartureTime: departure}
	holders := []domain.FlightCustomer{{Email: "jane@example.com", Name: "Jane Doe"}}
	tickets.On("ListCustomersByFlight", mock.Anything, expectedKey).Return(holders, nil)

	result, err := svc.FlightCustomers(context.Background(), StaffContext{Username: "ops1", Airline: "Jet Blue"}, "JB102", departure)
	require.NoError(t, err)
	assert.Equal(t, holders, result)
}

func TestFlightCustomersRequiresKey(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture()

	_, err := svc.FlightCustomers(context.Background(), StaffContext{Airline: "Jet Blue"}, "", time.Time{})
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestSalesReportRangeMode(t *testing.T) {
	svc, tickets, _, _, _ := newBookingFixture()

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	rows := []repository.DailySales{{Day: start, Tickets: 3}}
	tickets.On("SalesByDay", mock.Anything, "Jet Blue", start, end).Return(rows, nil)

	report, err := svc.SalesReport(context.Background(), StaffContext{Airline: "Jet Blue"}, SalesReportInput{
		Mode:  ReportModeRange,
		Start: start,
		End:   end,
	})
	require.NoError(t, err)
	assert.Equal(t, ReportModeRange, report.Mode)
	assert.Equal(t, rows, report.Daily)
}

func TestSalesReportRangeRequiresBothDates(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture()

	_, err := svc.SalesReport(context.Background(), StaffContext{Airline: "Jet Blue"}, SalesReportInput{
		Mode:  ReportModeRange,
		Start: bookingNow,
	})
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestSalesReportTrailingWindows(t *testing.T) {
	cases := []struct {
		mode  ReportMode
		since time.Time
	}{
		{ReportModeLastMonth, bookingNow.AddDate(0, -1, 0)},
		{ReportModeLastYear, bookingNow.AddDate(-1, 0, 0)},
	}

	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			svc, tickets, _, _, _ := newBookingFixture()

			rows := []repository.MonthlySales{{Month: "2025-05", Tickets: 7}}
			tickets.On("SalesByMonth", mock.Anything, "Jet Blue", tc.since).Return(rows, nil)

			report, err := svc.SalesReport(context.Background(), StaffContext{Airline: "Jet Blue"}, SalesReportInput{Mode: tc.mode})
			require.NoError(t, err)
			assert.Equal(t, rows, report.Monthly)
		})
	}
}

func TestSalesReportUnknownMode(t *testing.T) {
	svc, _, _, _, _ := newBookingFixture()

	_, err := svc.SalesReport(context.Background(), StaffContext{Airline: "Jet Blue"}, SalesReportInput{Mode: "weekly"})
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, normalizeName("  JOHN   DOE"), normalizeName("John Doe"))
	assert.NotEqual(t, normalizeName("John Doe"), normalizeName("Jon Doe"))
	assert.Equal(t, "", normalizeName("   "))
}

func TestAllDigits(t *testing.T) {
	assert.True(t, allDigits("0123456789"))
	assert.False(t, allDigits(""))
	assert.False(t, allDigits("123a"))
	assert.False(t, allDigits("12 34"))
}
