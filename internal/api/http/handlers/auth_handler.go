package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/airline-reservation/internal/api/dto"
	"github.com/spec-kit/airline-reservation/internal/auth"
	"github.com/spec-kit/airline-reservation/internal/service"
)

// AuthHandler exposes registration, login and logout endpoints.
type AuthHandler struct {
	auth       *service.AuthService
	cookieName string
	cookieTTL  time.Duration
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookieName string, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: authService, cookieName: cookieName, cookieTTL: cookieTTL}
}

// RegisterCustomer handles POST /auth/customers/register.
func (h *AuthHandler) RegisterCustomer(c *fiber.Ctx) error {
	var req dto.CustomerRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	customer, err := h.auth.RegisterCustomer(c.UserContext(), req.Email, req.Name, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"customer": fiber.Map{
				"email": customer.Email,
				"name":  customer.Name,
			},
		},
	})
}

// LoginCustomer handles POST /auth/customers/login.
func (h *AuthHandler) LoginCustomer(c *fiber.Ctx) error {
	var req dto.CustomerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	customer, token, err := h.auth.LoginCustomer(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"customer": fiber.Map{
				"email": customer.Email,
				"name":  customer.DisplayName(),
			},
		},
	})
}

// RegisterStaff handles POST /auth/staff/register.
func (h *AuthHandler) RegisterStaff(c *fiber.Ctx) error {
	var req dto.StaffRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	staff, err := h.auth.RegisterStaff(c.UserContext(), req.Username, req.Airline, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"staff": fiber.Map{
				"username": staff.Username,
				"airline":  staff.AirlineName,
			},
		},
	})
}

// LoginStaff handles POST /auth/staff/login.
func (h *AuthHandler) LoginStaff(c *fiber.Ctx) error {
	var req dto.StaffLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	staff, token, err := h.auth.LoginStaff(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"staff": fiber.Map{
				"username": staff.Username,
				"airline":  staff.AirlineName,
			},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(h.cookieName)
	if principal, ok := auth.PrincipalFromContext(c); ok {
		token = principal.Token()
	}
	if err := h.auth.Logout(c.UserContext(), token); err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cookieTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
