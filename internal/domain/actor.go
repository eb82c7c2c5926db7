package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Role is exhaustive on purpose: there is no zero-value fallback at the type
// level. The only place an unknown role may collapse to RoleUser is the auth
// middleware, where the identity provider's claims are resolved.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSubAdmin Role = "sub_admin"
	RoleUser     Role = "user"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleSubAdmin, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Actor is the authenticated caller of a single request, resolved by the
// identity boundary and immutable for the request's lifetime.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleSubAdmin
}
