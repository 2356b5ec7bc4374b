package service

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// StaffContext identifies the acting staff member and their airline,
// constructed once at the HTTP boundary from the session.
type StaffContext struct {
	Username string
	Airline  string
}
