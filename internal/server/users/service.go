package users

import (
	"context"
	"errors"
	"time"

	"github.com/albertopena123/evaluacion-enla/internal/logging"
	"github.com/albertopena123/evaluacion-enla/internal/server/auth"
	"github.com/albertopena123/evaluacion-enla/internal/server/config"
	"github.com/albertopena123/evaluacion-enla/internal/server/validation"
	"github.com/albertopena123/evaluacion-enla/internal/shared"
	"golang.org/x/crypto/bcrypt"
)

// SeedBcryptCost is the bcrypt cost used when provisioning accounts.
const SeedBcryptCost = 12

// LoginResult is the successful handshake outcome: an opaque signed token
// and the user summary. User.PasswordHash is always scrubbed.
type LoginResult struct {
	Token string
	User  *User
}

// Service runs the authentication handshake: validate → lookup → verify →
// issue → record, bounded by the configured login timeout. Every invocation
// produces exactly one outcome, reported through the shared sentinel errors:
//
//	nil (success), ErrorValidation, ErrorInvalidCredentials, ErrorTimeout,
//	ErrorInternal.
//
// Lookup miss, inactive account, missing password hash and hash mismatch all
// fold into ErrorInvalidCredentials so that responses never reveal whether an
// email is registered.
type Service struct {
	repo                  Repository
	logger                logging.Logger
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	loginTimeout          time.Duration
}

func NewService(repo Repository, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		logger:                logger.With("module", "users_service"),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		loginTimeout:          cfg.LoginTimeout,
	}
}

type loginOutcome struct {
	result *LoginResult
	err    error
}

// Login runs one bounded handshake for the candidate credentials.
//
// The handshake body races the timeout: whichever settles first determines
// the outcome and the loser is abandoned. Abandoned work holds no locks and
// its only possible write is the idempotent-in-effect last-login touch, so it
// cannot corrupt state observed by later requests.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {

	// First gate: malformed input never reaches the store, so response
	// timing does not reveal whether a lookup happened.
	if err := validation.LoginInput(email, password); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.loginTimeout)
	defer cancel()

	ch := make(chan loginOutcome, 1)
	go func() {
		result, err := s.handshake(ctx, email, password)
		ch <- loginOutcome{result: result, err: err}
	}()

	select {
	case <-ctx.Done():
		s.logger.Warn(ctx, "login handshake exceeded time budget", "timeout", s.loginTimeout)
		return nil, shared.ErrorTimeout
	case o := <-ch:
		return o.result, o.err
	}
}

func (s *Service) handshake(ctx context.Context, email, password string) (*LoginResult, error) {

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorInvalidCredentials
		}
		// a lookup killed by the time budget is a timeout, not a store fault
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, shared.ErrorTimeout
		}
		s.logger.Error(ctx, "credential lookup failed", "error", err)
		return nil, shared.ErrorInternal
	}

	// Inactive accounts and accounts without a password fold into the same
	// outcome as a lookup miss.
	if user.PasswordHash == "" || !user.Active {
		return nil, shared.ErrorInvalidCredentials
	}

	if err := s.checkPassword(user.PasswordHash, password); err != nil {
		return nil, shared.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "token issuance failed", "error", err)
		return nil, shared.ErrorInternal
	}

	// Best-effort: a failed last-login write must never downgrade a
	// successful authentication.
	now := time.Now()
	if err := s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn(ctx, "last login update failed", "user_id", user.ID, "error", err)
	} else {
		user.LastLogin = &now
	}

	user.PasswordHash = ""

	return &LoginResult{Token: token, User: user}, nil
}

func (s *Service) checkPassword(hash, candidate string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
}

// HashPassword produces a bcrypt hash suitable for storing in the credential
// table. Used by administrative seeding.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), SeedBcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
