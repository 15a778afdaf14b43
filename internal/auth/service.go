package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/nikolayk812/ezcheckout/internal/port"
	"github.com/nikolayk812/ezcheckout/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError carries per-rule registration failures, one message each.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

type Service struct {
	users    port.UserRepository
	sessions port.SessionStore
	policy   PasswordPolicy
	ttl      time.Duration
	logger   zerolog.Logger
}

func NewService(users port.UserRepository, sessions port.SessionStore, policy PasswordPolicy, ttl time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		policy:   policy,
		ttl:      ttl,
		logger:   logger,
	}
}

// Register creates a user and signs it in. On success it returns the created
// user and a fresh session token.
func (s *Service) Register(ctx context.Context, user domain.User, password string) (domain.User, string, error) {
	var u domain.User

	if user.Username == "" {
		return u, "", &ValidationError{Messages: []string{"Username is required."}}
	}

	if problems := s.policy.Check(password); len(problems) > 0 {
		return u, "", &ValidationError{Messages: problems}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return u, "", fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	created, err := s.users.CreateUser(ctx, user, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return u, "", &ValidationError{Messages: []string{fmt.Sprintf("Username '%s' is already taken.", user.Username)}}
		}
		return u, "", fmt.Errorf("users.CreateUser: %w", err)
	}

	token, err := s.sessions.Create(ctx, created.ID, s.ttl)
	if err != nil {
		return u, "", fmt.Errorf("sessions.Create: %w", err)
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, token, nil
}

// Login validates the credentials and returns a session token. A longer TTL
// is used for remembered sessions.
func (s *Service) Login(ctx context.Context, username, password string, remember bool) (string, error) {
	user, hash, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		// Do not reveal whether the user exists.
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.logger.Warn().Str("username", username).Msg("failed login attempt")
		return "", ErrInvalidCredentials
	}

	ttl := s.ttl
	if !remember {
		ttl = 24 * time.Hour
	}

	token, err := s.sessions.Create(ctx, user.ID, ttl)
	if err != nil {
		return "", fmt.Errorf("sessions.Create: %w", err)
	}

	return token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("sessions.Delete: %w", err)
	}

	return nil
}

// ResolveSession returns the user ID behind a session token.
func (s *Service) ResolveSession(ctx context.Context, token string) (int, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return 0, err
		}
		return 0, fmt.Errorf("sessions.Resolve: %w", err)
	}

	return userID, nil
}

func (s *Service) CurrentUser(ctx context.Context, userID int) (domain.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("users.GetUserByID: %w", err)
	}

	return user, nil
}
