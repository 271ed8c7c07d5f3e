package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode"

	"github.com/mcrae/bullscows/internal/model"
	"github.com/mcrae/bullscows/internal/storage"
)

// Errors
var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrUsernameTooShort   = errors.New("username must be at least 6 characters long")
	ErrPasswordTooWeak    = errors.New("password must be at least 6 characters long and include a number")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const (
	minUsernameLength = 6
	minPasswordLength = 6
)

// Service handles account registration and login. Passwords are stored
// and compared in plain text; the store is local to the player and is
// not treated as a security boundary.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new account Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// ValidUsername reports whether a username meets the length requirement
func ValidUsername(username string) bool {
	return len(username) >= minUsernameLength
}

// ValidPassword reports whether a password meets the length requirement
// and contains at least one digit
func ValidPassword(password string) bool {
	return len(password) >= minPasswordLength &&
		strings.ContainsFunc(password, unicode.IsDigit)
}

// SignUp registers a new account. Duplicate usernames and credentials
// that fail validation are rejected without touching the store.
func (s *Service) SignUp(ctx context.Context, username, password string) error {
	_, err := s.storage.GetAccount(ctx, username)
	if err == nil {
		return ErrUsernameExists
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return err
	}

	if !ValidUsername(username) {
		return ErrUsernameTooShort
	}
	if !ValidPassword(password) {
		return ErrPasswordTooWeak
	}

	account := &model.Account{
		Username: username,
		Password: password,
		Games:    []string{},
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		s.logger.Error("failed to save account",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.logger.Info("account registered", slog.String("username", username))
	return nil
}

// LogIn checks credentials against the store. Unknown usernames and
// wrong passwords collapse into the same error so callers cannot
// distinguish them.
func (s *Service) LogIn(ctx context.Context, username, password string) error {
	account, err := s.storage.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if account.Password != password {
		return ErrInvalidCredentials
	}

	s.logger.Info("login", slog.String("username", username))
	return nil
}
