package port

import (
	"context"
	"time"

	"github.com/nikolayk812/ezcheckout/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User, passwordHash string) (domain.User, error)

	// GetUserByUsername returns the user and its password hash.
	GetUserByUsername(ctx context.Context, username string) (domain.User, string, error)

	GetUserByID(ctx context.Context, id int) (domain.User, error)
}

// SessionStore keeps session tokens for logged-in users.
type SessionStore interface {
	Create(ctx context.Context, userID int, ttl time.Duration) (string, error)

	// Resolve returns the user ID for a token and extends the session TTL,
	// i.e. sliding expiration.
	Resolve(ctx context.Context, token string) (int, error)

	Delete(ctx context.Context, token string) error
}
