package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Role represents the role of a user, resolved by the identity service
type Role string

const (
	RoleStandard Role = "STANDARD"
	RoleMember   Role = "MEMBER"
	RoleAdmin    Role = "ADMIN"
)

// ErrUnknownRole is returned by ParseRole for unrecognized values
var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole parses a role string into a Role.
// Total function: unknown values produce ErrUnknownRole, never a panic.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleStandard:
		return RoleStandard, nil
	case RoleMember:
		return RoleMember, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}
