package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/nikolayk812/ezcheckout/internal/port"
)

type userRepository struct {
	pool *pgxpool.Pool
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) CreateUser(ctx context.Context, user domain.User, passwordHash string) (domain.User, error) {
	var u domain.User

	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, email, first_name, last_name, created)
		 VALUES ($1, $2, $3, $4, $5, now())
		 RETURNING id, created`,
		user.Username, passwordHash, user.Email, user.FirstName, user.LastName)

	if err := row.Scan(&user.ID, &user.Created); err != nil {
		if isPgError(err, pgUniqueViolation) {
			return u, ErrUsernameTaken
		}
		return u, fmt.Errorf("row.Scan: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, string, error) {
	var u domain.User

	row := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, email, first_name, last_name, created
		 FROM users
		 WHERE username = $1`, username)

	var (
		user domain.User
		hash string
	)

	err := row.Scan(&user.ID, &user.Username, &hash, &user.Email, &user.FirstName, &user.LastName, &user.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return u, "", ErrNotFound
		}
		return u, "", fmt.Errorf("row.Scan: %w", err)
	}

	return user, hash, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id int) (domain.User, error) {
	var u domain.User

	row := r.pool.QueryRow(ctx,
		`SELECT id, username, email, first_name, last_name, created
		 FROM users
		 WHERE id = $1`, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName, &user.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("row.Scan: %w", err)
	}

	return user, nil
}
