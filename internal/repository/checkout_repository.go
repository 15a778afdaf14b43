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

type checkoutRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewCheckout(pool *pgxpool.Pool, logger zerolog.Logger) port.CheckoutRepository {
	return &checkoutRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *checkoutRepository) CreateCheckout(ctx context.Context, checkout domain.Checkout) (domain.Checkout, error) {
	var c domain.Checkout

	created, err := withTx(ctx, r.pool, func(tx pgx.Tx) (domain.Checkout, error) {
		row := tx.QueryRow(ctx,
			`INSERT INTO checkouts (name) VALUES ($1) RETURNING identifier`,
			checkout.Name)

		if err := row.Scan(&checkout.Identifier); err != nil {
			return c, fmt.Errorf("row.Scan: %w", err)
		}

		if err := insertCheckoutItems(ctx, tx, checkout.Identifier, checkout.AvailableItems); err != nil {
			return c, fmt.Errorf("insertCheckoutItems: %w", err)
		}

		return getCheckout(ctx, tx, checkout.Identifier)
	})
	if err != nil {
		return c, fmt.Errorf("withTx: %w", err)
	}

	return created, nil
}

func (r *checkoutRepository) GetCheckout(ctx context.Context, identifier int) (domain.Checkout, error) {
	checkout, err := getCheckout(ctx, r.pool, identifier)
	if err != nil {
		return domain.Checkout{}, fmt.Errorf("getCheckout: %w", err)
	}

	return checkout, nil
}

func (r *checkoutRepository) ListCheckouts(ctx context.Context) ([]domain.Checkout, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.identifier, c.name,
		        i.identifier, i.name, i.description, i.price
		 FROM checkouts c
		 LEFT JOIN checkout_items ci ON ci.checkout_id = c.identifier
		 LEFT JOIN item i ON i.identifier = ci.item_id
		 ORDER BY c.identifier, i.identifier`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var (
		checkouts []domain.Checkout
		current   *domain.Checkout
	)

	for rows.Next() {
		var (
			checkoutID   int
			checkoutName string
			itemID       *int
			itemName     *string
			itemDesc     *string
			itemPrice    *int
		)

		err := rows.Scan(&checkoutID, &checkoutName, &itemID, &itemName, &itemDesc, &itemPrice)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		if current == nil || current.Identifier != checkoutID {
			checkouts = append(checkouts, domain.Checkout{
				Identifier: checkoutID,
				Name:       checkoutName,
			})
			current = &checkouts[len(checkouts)-1]
		}

		if itemID == nil {
			continue
		}

		current.AvailableItems = append(current.AvailableItems, domain.Item{
			Identifier:  *itemID,
			Name:        *itemName,
			Description: *itemDesc,
			Price:       *itemPrice,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return checkouts, nil
}

// UpdateCheckout overwrites the name and replaces the available-item set.
func (r *checkoutRepository) UpdateCheckout(ctx context.Context, checkout domain.Checkout) (domain.Checkout, error) {
	var c domain.Checkout

	updated, err := withTx(ctx, r.pool, func(tx pgx.Tx) (domain.Checkout, error) {
		cmdTag, err := tx.Exec(ctx,
			`UPDATE checkouts SET name = $2 WHERE identifier = $1`,
			checkout.Identifier, checkout.Name)
		if err != nil {
			return c, fmt.Errorf("tx.Exec checkouts: %w", err)
		}

		if cmdTag.RowsAffected() != 1 {
			r.logger.Warn().
				Int("checkout_id", checkout.Identifier).
				Int64("rows_affected", cmdTag.RowsAffected()).
				Msg("update affected an unexpected number of rows")
		}

		_, err = tx.Exec(ctx,
			`DELETE FROM checkout_items WHERE checkout_id = $1`, checkout.Identifier)
		if err != nil {
			return c, fmt.Errorf("tx.Exec checkout_items: %w", err)
		}

		if err := insertCheckoutItems(ctx, tx, checkout.Identifier, checkout.AvailableItems); err != nil {
			return c, fmt.Errorf("insertCheckoutItems: %w", err)
		}

		return getCheckout(ctx, tx, checkout.Identifier)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrItemNotFound) {
			return c, err
		}
		return c, fmt.Errorf("withTx: %w", err)
	}

	return updated, nil
}

func (r *checkoutRepository) DeleteCheckout(ctx context.Context, identifier int) error {
	_, err := withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		_, err := tx.Exec(ctx,
			`DELETE FROM checkout_items WHERE checkout_id = $1`, identifier)
		if err != nil {
			return struct{}{}, fmt.Errorf("tx.Exec checkout_items: %w", err)
		}

		cmdTag, err := tx.Exec(ctx,
			`DELETE FROM checkouts WHERE identifier = $1`, identifier)
		if err != nil {
			return struct{}{}, fmt.Errorf("tx.Exec checkouts: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return struct{}{}, ErrNotFound
		}

		return struct{}{}, nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func (r *checkoutRepository) AddItem(ctx context.Context, checkoutID, itemID int) error {
	// Adding an item twice is a no-op.
	_, err := r.pool.Exec(ctx,
		`INSERT INTO checkout_items (checkout_id, item_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		checkoutID, itemID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return ErrNotFound
		}
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *checkoutRepository) RemoveItem(ctx context.Context, checkoutID, itemID int) error {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM checkout_items
		 WHERE checkout_id = $1 AND item_id = $2`,
		checkoutID, itemID)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func insertCheckoutItems(ctx context.Context, tx pgx.Tx, checkoutID int, items []domain.Item) error {
	for _, item := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO checkout_items (checkout_id, item_id)
			 VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			checkoutID, item.Identifier)
		if err != nil {
			if isPgError(err, pgForeignKeyViolation) {
				return fmt.Errorf("item[%d]: %w", item.Identifier, ErrItemNotFound)
			}
			return fmt.Errorf("tx.Exec: %w", err)
		}
	}

	return nil
}

func getCheckout(ctx context.Context, q querier, identifier int) (domain.Checkout, error) {
	var c domain.Checkout

	row := q.QueryRow(ctx,
		`SELECT identifier, name FROM checkouts WHERE identifier = $1`, identifier)

	var checkout domain.Checkout
	if err := row.Scan(&checkout.Identifier, &checkout.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c, ErrNotFound
		}
		return c, fmt.Errorf("row.Scan: %w", err)
	}

	rows, err := q.Query(ctx,
		`SELECT i.identifier, i.name, i.description, i.price
		 FROM checkout_items ci
		 JOIN item i ON i.identifier = ci.item_id
		 WHERE ci.checkout_id = $1
		 ORDER BY i.identifier`, identifier)
	if err != nil {
		return c, fmt.Errorf("q.Query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return c, fmt.Errorf("scanItem: %w", err)
		}
		checkout.AvailableItems = append(checkout.AvailableItems, item)
	}

	if err := rows.Err(); err != nil {
		return c, fmt.Errorf("rows.Err: %w", err)
	}

	return checkout, nil
}
