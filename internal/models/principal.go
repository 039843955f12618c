package models

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleGuest Role = "Guest"
)

// Principal is the caller identity rebuilt for every request.
type Principal struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func Guest() Principal {
	return Principal{Role: RoleGuest}
}
