package dto

// CustomerRegisterRequest payload for new customers.
type CustomerRegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// CustomerLoginRequest payload for customer login.
type CustomerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StaffRegisterRequest payload for new airline staff.
type StaffRegisterRequest struct {
	Username string `json:"username"`
	Airline  string `json:"airline"`
	Password string `json:"password"`
}

// StaffLoginRequest payload for staff login.
type StaffLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
