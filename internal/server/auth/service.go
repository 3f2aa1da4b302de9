package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/guivini-ac/pbi-autenticate/internal/models"
	"github.com/guivini-ac/pbi-autenticate/internal/server/storage"
	"github.com/guivini-ac/pbi-autenticate/pkg/api"
)

// BcryptCost is the fixed work factor for every password hash in the
// system. The admin path hashes with the same cost.
const BcryptCost = 10

var (
	// ErrMissingCredentials indicates an empty username or password
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrInvalidCredentials covers both unknown user and wrong password.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Result is what a successful authentication returns
type Result struct {
	Token     string
	ExpiresIn int64
	User      api.UserSummary
}

// Service validates credentials against the credential store, issues
// session tokens and records successful logins in the access log.
type Service struct {
	logger    *slog.Logger
	users     storage.UserStorage
	logs      storage.AccessLogStorage
	jwtConfig JWTConfig
}

// NewService creates a new authenticator
func NewService(logger *slog.Logger, users storage.UserStorage, logs storage.AccessLogStorage, jwtConfig JWTConfig) *Service {
	return &Service{
		logger:    logger,
		users:     users,
		logs:      logs,
		jwtConfig: jwtConfig,
	}
}

// Authenticate checks the supplied credentials and on success issues a
// signed session token and appends a LOGIN_SUCCESS entry to the access
// log. A failed log write is reported but never blocks the login.
// Failures write nothing.
func (s *Service) Authenticate(ctx context.Context, username, password, originAddr string) (*Result, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best-effort audit write, one entry per successful login
	entry := &models.AccessLogEntry{
		UserID:    user.ID,
		Action:    models.ActionLoginSuccess,
		IPAddress: originAddr,
		Timestamp: time.Now().UTC(),
	}
	if _, err := s.logs.AppendAccessLog(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "failed to append access log",
			slog.Int64("user_id", user.ID),
			slog.Any("error", err))
	}

	token, err := GenerateToken(s.jwtConfig, user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &Result{
		Token:     token,
		ExpiresIn: int64(TokenTTL.Seconds()),
		User: api.UserSummary{
			ID:       user.ID,
			Username: user.Username,
		},
	}, nil
}

// EnsureDefaultUser inserts the default account when the credential
// store holds no users at all. Later startups are a no-op.
func (s *Service) EnsureDefaultUser(ctx context.Context, username, password string) error {
	count, err := s.users.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	id, err := s.users.CreateUser(ctx, username, string(hash))
	if err != nil {
		// Lost the race against another bootstrap, the account exists
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create default user: %w", err)
	}

	s.logger.InfoContext(ctx, "default user created",
		slog.String("username", username),
		slog.Int64("user_id", id))

	return nil
}
