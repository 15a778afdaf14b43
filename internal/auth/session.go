package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/nikolayk812/ezcheckout/internal/port"
)

var ErrNoSession = errors.New("session not found")

const sessionKeyPrefix = "session:"

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore keeps session tokens in redis with a sliding TTL.
func NewSessionStore(client *redis.Client, ttl time.Duration) port.SessionStore {
	return &redisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *redisSessionStore) Create(ctx context.Context, userID int, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}

	token := uuid.NewString()

	err := s.client.Set(ctx, sessionKeyPrefix+token, userID, ttl).Err()
	if err != nil {
		return "", fmt.Errorf("client.Set: %w", err)
	}

	return token, nil
}

func (s *redisSessionStore) Resolve(ctx context.Context, token string) (int, error) {
	value, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNoSession
		}
		return 0, fmt.Errorf("client.Get: %w", err)
	}

	userID, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("strconv.Atoi[%s]: %w", value, err)
	}

	// Sliding expiration: every authenticated request resets the TTL.
	if err := s.client.Expire(ctx, sessionKeyPrefix+token, s.ttl).Err(); err != nil {
		return 0, fmt.Errorf("client.Expire: %w", err)
	}

	return userID, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}
