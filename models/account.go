package models

import (
	"fmt"
	"strings"
)

// Role determines which session menus and privileged operations are reachable.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
)

// ParseRole normalizes a stored or typed role value. Legacy rows carry
// whitespace padding and mixed case, so normalization happens here, once,
// instead of at every comparison site.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return RoleCustomer, nil
	case "employee":
		return RoleEmployee, nil
	case "manager":
		return RoleManager, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Staff reports whether the role may update orders.
func (r Role) Staff() bool {
	return r == RoleEmployee || r == RoleManager
}

type Account struct {
	Login    string
	Phone    string // display format +1(NNN)NNN-NNNN
	FavItems string
	Role     Role
}
