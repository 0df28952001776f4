package users

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/albertopena123/evaluacion-enla/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := NewPostgresRepository(db)
	require.NoError(t, err)
	return repo, mock
}

func TestFindByEmail_MapsRow(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "active"}).
		AddRow("u1", "escuela@escuela.com", "$2a$12$hash", "Administrador", "ADMIN", true)

	mock.ExpectQuery("SELECT id, email, password_hash, name, role, active FROM users").
		WithArgs("escuela@escuela.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "escuela@escuela.com")
	require.NoError(t, err)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "escuela@escuela.com", user.Email)
	assert.Equal(t, "$2a$12$hash", user.PasswordHash)
	assert.Equal(t, "Administrador", user.Name)
	assert.Equal(t, "ADMIN", user.Role)
	assert.True(t, user.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail_NullColumns(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "active"}).
		AddRow("u2", "a@b.com", nil, nil, "USER", true)

	mock.ExpectQuery("SELECT id, email, password_hash, name, role, active FROM users").
		WithArgs("a@b.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)

	assert.Empty(t, user.PasswordHash)
	assert.Empty(t, user.Name)
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	mock.ExpectQuery("SELECT id, email, password_hash, name, role, active FROM users").
		WithArgs("ghost@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "active"}))

	_, err := repo.FindByEmail(context.Background(), "ghost@b.com")
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}

func TestTouchLastLogin(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	at := time.Now()
	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs("u1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.TouchLastLogin(context.Background(), "u1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTouchLastLogin_MissingRow(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	at := time.Now()
	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs("ghost", at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.TouchLastLogin(context.Background(), "ghost", at)
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}

func TestCreate_AssignsIDAndDefaults(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	user, err := repo.Create(context.Background(), &User{
		Email:        "escuela@escuela.com",
		PasswordHash: "$2a$12$hash",
		Name:         "Administrador",
		Role:         RoleAdmin,
		Active:       true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DefaultRole(t *testing.T) {
	repo, mock := newSQLMockRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	user, err := repo.Create(context.Background(), &User{Email: "a@b.com", Active: true})
	require.NoError(t, err)
	assert.Equal(t, RoleUser, user.Role)
}
