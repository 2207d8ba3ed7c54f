package user

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleDealer Role = "DEALER"
	RoleClient Role = "CLIENT"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDealer, RoleClient:
		return true
	default:
		return false
	}
}

// IsAdmin gates operations restricted to administrators (listing all
// bookings, cancelling other customers' bookings).
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
