package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/airline-reservation/internal/api/dto"
	"github.com/spec-kit/airline-reservation/internal/auth"
	"github.com/spec-kit/airline-reservation/internal/domain"
	"github.com/spec-kit/airline-reservation/internal/repository"
	"github.com/spec-kit/airline-reservation/internal/service"
)

// FlightsHandler exposes flight search and staff flight management.
type FlightsHandler struct {
	flights *service.FlightService
}

// NewFlightsHandler constructs handler.
func NewFlightsHandler(flightService *service.FlightService) *FlightsHandler {
	return &FlightsHandler{flights: flightService}
}

// PublicSearch handles GET and POST /search. GET reads query parameters,
// POST reads the JSON body.
func (h *FlightsHandler) PublicSearch(c *fiber.Ctx) error {
	req := dto.PublicSearchRequest{
		Depart: c.Query("depart"),
		Arrive: c.Query("arrive"),
		Date:   c.Query("date"),
	}
	if c.Method() == http.MethodPost {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid payload")
		}
	}

	filter := repository.PublicSearchFilter{
		FromAirport: req.Depart,
		ToAirport:   req.Arrive,
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if !date.IsZero() {
		filter.DepartureDate = &date
	}

	flights, err := h.flights.PublicSearch(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFlightResponses(flights)})
}

// StaffSearch handles GET /staff/flights.
func (h *FlightsHandler) StaffSearch(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	filter := repository.StaffSearchFilter{
		Period:      c.Query("period"),
		FromAirport: c.Query("from_airport"),
		ToAirport:   c.Query("to_airport"),
		FromCity:    c.Query("from_city"),
		ToCity:      c.Query("to_city"),
	}

	start, err := dto.ParseDate(c.Query("start_date"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	end, err := dto.ParseDate(c.Query("end_date"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if !start.IsZero() {
		filter.StartDate = &start
	}
	if !end.IsZero() {
		filter.EndDate = &end
	}

	flights, err := h.flights.StaffSearch(c.UserContext(), staffContext(principal), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewFlightResponses(flights)})
}

// Create handles POST /staff/flights.
func (h *FlightsHandler) Create(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.FlightCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	departure, err := dto.ParseDateTime(req.DepartureDateTime)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	arrival, err := dto.ParseDateTime(req.ArrivalDateTime)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	flight, err := h.flights.CreateFlight(c.UserContext(), staffContext(principal), service.FlightCreateInput{
		FlightNumber:     req.FlightNumber,
		DepartureTime:    departure,
		ArrivalTime:      arrival,
		BasePriceCents:   req.BasePriceCents,
		DepartureAirport: req.DepartureAirport,
		ArrivalAirport:   req.ArrivalAirport,
		AirplaneID:       req.AirplaneID,
		Status:           domain.FlightStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewFlightResponse(*flight)})
}

// ChangeStatus handles POST /staff/flights/status.
func (h *FlightsHandler) ChangeStatus(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.StatusChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	departure, err := dto.ParseDateTime(req.DepartureDateTime)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.flights.ChangeStatus(c.UserContext(), staffContext(principal),
		req.FlightNumber, departure, domain.FlightStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}

// AddAirplane handles POST /staff/airplanes.
func (h *FlightsHandler) AddAirplane(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.AirplaneCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	airplane, err := h.flights.AddAirplane(c.UserContext(), staffContext(principal), service.AirplaneCreateInput{
		IDNumber:     req.IDNumber,
		Seats:        req.Seats,
		Manufacturer: req.Manufacturer,
		Age:          req.Age,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"airline":   airplane.AirlineName,
			"id_number": airplane.IDNumber,
			"seats":     airplane.Seats,
		},
	})
}

func staffContext(principal *auth.Principal) service.StaffContext {
	if principal == nil {
		return service.StaffContext{}
	}
	return service.StaffContext{
		Username: principal.Username,
		Airline:  principal.AirlineName,
	}
}
