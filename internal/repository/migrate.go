package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS item (
		identifier SERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		description VARCHAR(1000) NOT NULL DEFAULT '',
		price INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		identifier SERIAL PRIMARY KEY,
		type TEXT NOT NULL,
		created TIMESTAMPTZ NOT NULL,
		completed TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id INT NOT NULL REFERENCES orders (identifier) ON DELETE CASCADE,
		item_id INT NOT NULL REFERENCES item (identifier) ON DELETE CASCADE,
		quantity INT NOT NULL,
		PRIMARY KEY (order_id, item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS checkouts (
		identifier SERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS checkout_items (
		checkout_id INT NOT NULL REFERENCES checkouts (identifier) ON DELETE CASCADE,
		item_id INT NOT NULL REFERENCES item (identifier) ON DELETE CASCADE,
		PRIMARY KEY (checkout_id, item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(100) UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		email VARCHAR(200) NOT NULL DEFAULT '',
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		created TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("pool.Exec: %w", err)
		}
	}

	return nil
}
