package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/nikolayk812/ezcheckout/internal/port"
	"github.com/rs/zerolog"
)

type itemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewItem(pool *pgxpool.Pool, logger zerolog.Logger) port.ItemRepository {
	return &itemRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *itemRepository) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	var i domain.Item

	row := r.pool.QueryRow(ctx,
		`INSERT INTO item (name, description, price)
		 VALUES ($1, $2, $3)
		 RETURNING identifier`,
		item.Name, item.Description, item.Price)

	if err := row.Scan(&item.Identifier); err != nil {
		return i, fmt.Errorf("row.Scan: %w", err)
	}

	return item, nil
}

func (r *itemRepository) GetItem(ctx context.Context, identifier int) (domain.Item, error) {
	var i domain.Item

	row := r.pool.QueryRow(ctx,
		`SELECT identifier, name, description, price
		 FROM item
		 WHERE identifier = $1`, identifier)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return i, fmt.Errorf("scanItem: %w", ErrNotFound)
		}
		return i, fmt.Errorf("scanItem: %w", err)
	}

	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT identifier, name, description, price
		 FROM item
		 ORDER BY identifier`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanItem: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return items, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	var i domain.Item

	cmdTag, err := r.pool.Exec(ctx,
		`UPDATE item
		 SET name = $2, description = $3, price = $4
		 WHERE identifier = $1`,
		item.Identifier, item.Name, item.Description, item.Price)
	if err != nil {
		return i, fmt.Errorf("pool.Exec: %w", err)
	}

	// The original behavior: an unexpected affected-row count is logged,
	// the operation still reports success.
	if cmdTag.RowsAffected() != 1 {
		r.logger.Warn().
			Int("item_id", item.Identifier).
			Int64("rows_affected", cmdTag.RowsAffected()).
			Msg("update affected an unexpected number of rows")
	}

	return item, nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, identifier int) (domain.Item, error) {
	var i domain.Item

	row := r.pool.QueryRow(ctx,
		`DELETE FROM item
		 WHERE identifier = $1
		 RETURNING identifier, name, description, price`, identifier)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return i, fmt.Errorf("scanItem: %w", ErrNotFound)
		}
		return i, fmt.Errorf("scanItem: %w", err)
	}

	return item, nil
}

func scanItem(row pgx.Row) (domain.Item, error) {
	var item domain.Item

	if err := row.Scan(&item.Identifier, &item.Name, &item.Description, &item.Price); err != nil {
		return item, err
	}

	return item, nil
}
