package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/albertopena123/evaluacion-enla/internal/dbx"
	"github.com/albertopena123/evaluacion-enla/internal/shared"
	"github.com/google/uuid"
)

// PostgresRepository stores credential records in the users table. It works
// over any dbx.DBTX, so callers can run it inside a transaction.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = RoleUser
	}

	query :=
		`INSERT INTO users (id, email, password_hash, name, role, active)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Active).Scan(&user.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

// FindByEmail fetches the record by exact email match, including the password
// hash: the handshake needs it for verification. Absence of a record is
// shared.ErrorNotFound.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id, email, password_hash, name, role, active FROM users
		 WHERE email = $1
		 `

	user := &User{}
	var passwordHash, name sql.NullString

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &passwordHash, &name, &user.Role, &user.Active)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	user.PasswordHash = passwordHash.String
	user.Name = name.String

	return user, nil
}

// TouchLastLogin records a successful authentication. Concurrent logins for
// the same account may interleave; the last write wins.
func (r *PostgresRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_login = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if affected == 0 {
		return shared.ErrorNotFound
	}

	return nil
}
