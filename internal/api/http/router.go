package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/airline-reservation/internal/api/http/handlers"
	"github.com/spec-kit/airline-reservation/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Auth              *handlers.AuthHandler
	Flights           *handlers.FlightsHandler
	Bookings          *handlers.BookingsHandler
	Reviews           *handlers.ReviewsHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/search", cfg.Flights.PublicSearch)
	app.Post("/search", cfg.Flights.PublicSearch)

	authGroup := app.Group("/auth")
	authGroup.Post("/customers/register", cfg.Auth.RegisterCustomer)
	authGroup.Post("/customers/login", cfg.Auth.LoginCustomer)
	authGroup.Post("/staff/register", cfg.Auth.RegisterStaff)
	authGroup.Post("/staff/login", cfg.Auth.LoginStaff)
	authGroup.Post("/logout", cfg.SessionMiddleware.Handle, auth.RequireAnyRole(), cfg.Auth.Logout)

	customer := app.Group("/customer", cfg.SessionMiddleware.Handle, auth.RequireCustomer())
	customer.Get("/flights", cfg.Bookings.MyFlights)
	customer.Post("/purchase", cfg.Bookings.Purchase)
	customer.Get("/reviews", cfg.Reviews.ListOwn)
	customer.Post("/reviews", cfg.Reviews.Save)
	customer.Delete("/reviews", cfg.Reviews.Delete)

	staff := app.Group("/staff", cfg.SessionMiddleware.Handle, auth.RequireStaff())
	staff.Get("/flights", cfg.Flights.StaffSearch)
	staff.Post("/flights", cfg.Flights.Create)
	staff.Post("/flights/status", cfg.Flights.ChangeStatus)
	staff.Get("/flights/customers", cfg.Bookings.FlightCustomers)
	staff.Post("/airplanes", cfg.Flights.AddAirplane)
	staff.Get("/ratings", cfg.Reviews.Ratings)
	staff.Post("/reports", cfg.Bookings.Reports)
}
