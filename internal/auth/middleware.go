package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/airline-reservation/internal/domain"
	apperrors "github.com/spec-kit/airline-reservation/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the authenticated caller, resolved once at the HTTP boundary
// and passed explicitly through request locals.
type Principal struct {
	Role        domain.Role
	Email       string
	DisplayName string
	Username    string
	AirlineName string
	token       string
}

// Token returns the session token the principal was resolved from.
func (p *Principal) Token() string {
	return p.token
}

// SessionMiddleware resolves session cookies into principals.
type SessionMiddleware struct {
	sessions SessionStore
	cookie   string
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(sessions SessionStore, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, cookie: cookieName}
}

// Handle enforces authentication for protected routes.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(m.cookie)
	if token == "" {
		return apperrors.NewUnauthorized("not logged in")
	}

	session, err := m.sessions.Get(c.UserContext(), token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return apperrors.NewUnauthorized("session expired")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{
		Role:        session.Role,
		Email:       session.Email,
		DisplayName: session.DisplayName,
		Username:    session.Username,
		AirlineName: session.AirlineName,
		token:       token,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
