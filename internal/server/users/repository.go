package users

import (
	"context"
	"time"
)

// Repository is the credential store contract needed by the login handshake
// and by administrative seeding.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
