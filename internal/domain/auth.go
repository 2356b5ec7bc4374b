package domain

// Role differentiates customer vs airline staff sessions.
// The two roles are mutually exclusive for a given session.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
)
