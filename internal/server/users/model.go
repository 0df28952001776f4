package users

import "time"

// User is a credential record. PasswordHash is empty for accounts
// provisioned without a password; such accounts can never authenticate.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Active       bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}

// Roles stored in the role column.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)
