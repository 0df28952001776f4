// Command seedadmin provisions the initial administrator credential record.
// It is idempotent: rerunning against a database that already holds the
// admin account reports so and exits cleanly.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/albertopena123/evaluacion-enla/internal/dbx"
	"github.com/albertopena123/evaluacion-enla/internal/flagx"
	"github.com/albertopena123/evaluacion-enla/internal/server/config"
	"github.com/albertopena123/evaluacion-enla/internal/server/shared/db"
	"github.com/albertopena123/evaluacion-enla/internal/server/users"
	"github.com/albertopena123/evaluacion-enla/internal/shared"
	"golang.org/x/term"
)

func main() {

	cfg := config.LoadConfig()

	// parse only the flags owned by this command; the rest belong to the
	// config layers
	args := flagx.FilterArgs(os.Args[1:], []string{"-email", "-name", "-password"})
	fs := flag.NewFlagSet("seedadmin", flag.ExitOnError)
	email := fs.String("email", "escuela@escuela.com", "admin email")
	name := fs.String("name", "Administrador", "admin display name")
	password := fs.String("password", "", "admin password (prompted when omitted)")
	_ = fs.Parse(args)

	if err := run(context.Background(), cfg, *email, *name, *password); err != nil {
		log.Fatalf("seedadmin: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, email, name, password string) error {

	if password == "" {
		pw, err := promptPassword()
		if err != nil {
			return err
		}
		password = pw
	}
	if password == "" {
		return errors.New("empty password")
	}

	manager, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer manager.Close()

	hash, err := users.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &users.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         users.RoleAdmin,
		Active:       true,
	}

	err = dbx.WithTx(ctx, manager.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo, err := users.NewPostgresRepository(tx)
		if err != nil {
			return err
		}

		if _, err := repo.FindByEmail(ctx, email); err == nil {
			return shared.ErrorAlreadyExists
		} else if !errors.Is(err, shared.ErrorNotFound) {
			return err
		}

		_, err = repo.Create(ctx, admin)
		return err
	})

	if errors.Is(err, shared.ErrorAlreadyExists) {
		fmt.Printf("admin user %s already exists\n", email)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("admin user created: id=%s email=%s role=%s\n", admin.ID, admin.Email, admin.Role)
	return nil
}

func promptPassword() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no password given and stdin is not a terminal")
	}
	fmt.Print("Enter admin password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
