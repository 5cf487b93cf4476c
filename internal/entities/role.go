package entities

import (
	"fmt"
	"strings"
)

// Role is a user or team member role.
type Role string

const (
	// RoleAdmin has full control over tasks and members.
	RoleAdmin Role = "admin"
	// RoleManager manages tasks and plain members.
	RoleManager Role = "manager"
	// RoleMember works on own tasks only.
	RoleMember Role = "member"
)

var roleRank = map[Role]int{
	RoleAdmin:   3,
	RoleManager: 2,
	RoleMember:  1,
}

// ParseRole converts transport input into a known Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleRank[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Rank returns the ordinal of r in the admin > manager > member order.
func (r Role) Rank() (int, error) {
	rank, ok := roleRank[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRole, string(r))
	}
	return rank, nil
}

// MeetsOrExceeds reports whether r ranks at least as high as required.
func (r Role) MeetsOrExceeds(required Role) (bool, error) {
	have, err := r.Rank()
	if err != nil {
		return false, err
	}
	need, err := required.Rank()
	if err != nil {
		return false, err
	}
	return have >= need, nil
}
