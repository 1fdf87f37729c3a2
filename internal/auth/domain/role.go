package domain

import "fmt"

// Role selects the access class of a user. The integer value is only the
// wire and storage encoding; code works with the named variants.
type Role int

const (
	RoleCustomer Role = 1
	RoleCourier  Role = 2
	RoleAdmin    Role = 3
)

// ParseRole decodes the wire encoding, rejecting unknown values.
func ParseRole(v int) (Role, error) {
	r := Role(v)
	if !r.Valid() {
		return 0, fmt.Errorf("unknown role %d", v)
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleCourier, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleCourier:
		return "courier"
	case RoleAdmin:
		return "admin"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}
