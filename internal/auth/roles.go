package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

// RequireCustomer ensures the session belongs to a customer.
func RequireCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Role != domain.RoleCustomer {
			return fiber.NewError(http.StatusForbidden, "customer role required")
		}
		return c.Next()
	}
}

// RequireStaff ensures the session belongs to airline staff.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Role != domain.RoleStaff {
			return fiber.NewError(http.StatusForbidden, "staff role required")
		}
		return c.Next()
	}
}

// RequireAnyRole ensures the caller is authenticated as either role.
func RequireAnyRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}
