package domain

import "time"

// StaffMember is an airline employee account keyed by username.
// Every staff member belongs to exactly one airline and may only
// operate on that airline's flights.
type StaffMember struct {
	Username     string
	AirlineName  string
	PasswordHash string
	CreatedAt    time.Time
}
