package domain

import "time"

// Customer is an end-user account keyed by email.
type Customer struct {
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// DisplayName returns the name shown in the UI, falling back to email.
func (c *Customer) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Email
}
