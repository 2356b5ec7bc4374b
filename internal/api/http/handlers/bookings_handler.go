package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/airline-reservation/internal/api/dto"
	"github.com/spec-kit/airline-reservation/internal/auth"
	"github.com/spec-kit/airline-reservation/internal/service"
)

// BookingsHandler exposes ticket purchase and ticket views.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookingService}
}

// Purchase handles POST /customer/purchase.
func (h *BookingsHandler) Purchase(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	departure, err := dto.ParseDateTime(req.DepartureDateTime)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	expiration, err := dto.ParseDate(req.ExpirationDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.bookings.Purchase(c.UserContext(), principal.Email, service.PurchaseInput{
		AirlineName:    req.AirlineName,
		FlightNumber:   req.FlightNumber,
		DepartureTime:  departure,
		NameOnCard:     req.NameOnCard,
		CardType:       req.CardType,
		CardNumber:     req.CardNumber,
		ExpirationDate: expiration,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"ticket_id":    ticket.ID,
			"purchased_at": ticket.PurchasedAt,
		},
	})
}

// MyFlights handles GET /customer/flights.
func (h *BookingsHandler) MyFlights(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	flights, err := h.bookings.UpcomingFlights(c.UserContext(), principal.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"name":    principal.DisplayName,
			"flights": dto.NewPurchasedFlightResponses(flights),
		},
	})
}

// FlightCustomers handles GET /staff/flights/customers.
func (h *BookingsHandler) FlightCustomers(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	departure, err := dto.ParseDateTime(c.Query("departure_date_time"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	customers, err := h.bookings.FlightCustomers(c.UserContext(), staffContext(principal),
		c.Query("flight_number"), departure)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFlightCustomerResponses(customers)})
}

// Reports handles POST /staff/reports.
func (h *BookingsHandler) Reports(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	start, err := dto.ParseDate(req.Start)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	end, err := dto.ParseDate(req.End)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	report, err := h.bookings.SalesReport(c.UserContext(), staffContext(principal), service.SalesReportInput{
		Mode:  service.ReportMode(req.Mode),
		Start: start,
		End:   end,
	})
	if err != nil {
		return err
	}

	switch report.Mode {
	case service.ReportModeRange:
		return c.JSON(fiber.Map{"data": fiber.Map{"mode": report.Mode, "rows": report.Daily}})
	default:
		return c.JSON(fiber.Map{"data": fiber.Map{"mode": report.Mode, "rows": report.Monthly}})
	}
}
