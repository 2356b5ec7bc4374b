package service

import (
	"context"
	"strings"

	"github.com/spec-kit/airline-reservation/internal/auth"
	"github.com/spec-kit/airline-reservation/internal/config"
	"github.com/spec-kit/airline-reservation/internal/domain"
	"github.com/spec-kit/airline-reservation/internal/repository"
	apperrors "github.com/spec-kit/airline-reservation/pkg/util"
)

// AuthService coordinates registration, login and logout flows.
type AuthService struct {
	customers  repository.CustomerRepository
	staff      repository.StaffRepository
	airlines   repository.AirlineRepository
	sessions   auth.SessionStore
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	CustomerRepo repository.CustomerRepository
	StaffRepo    repository.StaffRepository
	AirlineRepo  repository.AirlineRepository
	Sessions     auth.SessionStore
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		customers:  deps.CustomerRepo,
		staff:      deps.StaffRepo,
		airlines:   deps.AirlineRepo,
		sessions:   deps.Sessions,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterCustomer creates a new customer account.
func (s *AuthService) RegisterCustomer(ctx context.Context, email, name, password string) (*domain.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password required", nil)
	}

	if _, err := s.customers.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	} else if !isNoRows(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// RegisterStaff creates a new airline staff account. The airline must already
// exist.
func (s *AuthService) RegisterStaff(ctx context.Context, username, airline, password string) (*domain.StaffMember, error) {
	username = strings.TrimSpace(username)
	airline = strings.TrimSpace(airline)
	if username == "" || airline == "" || password == "" {
		return nil, apperrors.NewValidationError("username, airline and password required", nil)
	}

	exists, err := s.airlines.AirlineExists(ctx, airline)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("airline", map[string]any{"airline": airline})
	}

	if _, err := s.staff.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewConflict("username already exists", map[string]any{"username": username})
	} else if !isNoRows(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	staff := &domain.StaffMember{
		Username:     username,
		AirlineName:  airline,
		PasswordHash: hash,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// LoginCustomer authenticates a customer and opens a session.
func (s *AuthService) LoginCustomer(ctx context.Context, email, password string) (*domain.Customer, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if isNoRows(err) {
			return nil, "", apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", err
	}
	if err := auth.ComparePassword(customer.PasswordHash, password); err != nil {
		return nil, "", apperrors.NewUnauthorized("invalid credentials")
	}

	token, err := s.sessions.Create(ctx, auth.Session{
		Role:        domain.RoleCustomer,
		Email:       customer.Email,
		DisplayName: customer.DisplayName(),
	})
	if err != nil {
		return nil, "", err
	}
	return customer, token, nil
}

// LoginStaff authenticates a staff member and opens a session carrying the
// airline identity.
func (s *AuthService) LoginStaff(ctx context.Context, username, password string) (*domain.StaffMember, string, error) {
	username = strings.TrimSpace(username)

	staff, err := s.staff.GetByUsername(ctx, username)
	if err != nil {
		if isNoRows(err) {
			return nil, "", apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", err
	}
	if err := auth.ComparePassword(staff.PasswordHash, password); err != nil {
		return nil, "", apperrors.NewUnauthorized("invalid credentials")
	}

	token, err := s.sessions.Create(ctx, auth.Session{
		Role:        domain.RoleStaff,
		Username:    staff.Username,
		AirlineName: staff.AirlineName,
	})
	if err != nil {
		return nil, "", err
	}
	return staff, token, nil
}

// Logout clears the session record.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
