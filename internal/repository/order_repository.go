package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/nikolayk812/ezcheckout/internal/port"
	"github.com/rs/zerolog"
)

type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewOrder(pool *pgxpool.Pool, logger zerolog.Logger) port.OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger,
	}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	var o domain.Order

	if len(order.Items) == 0 {
		return o, errors.New("no items in order")
	}

	created, err := withTx(ctx, r.pool, func(tx pgx.Tx) (domain.Order, error) {
		row := tx.QueryRow(ctx,
			`INSERT INTO orders (type, created, completed)
			 VALUES ($1, $2, $3)
			 RETURNING identifier`,
			string(order.Type), order.Created, order.Completed)

		var orderID int
		if err := row.Scan(&orderID); err != nil {
			return o, fmt.Errorf("row.Scan: %w", err)
		}

		// TODO: batch via pgx.Batch once order sizes grow
		for item, quantity := range order.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO order_items (order_id, item_id, quantity)
				 VALUES ($1, $2, $3)`,
				orderID, item.Identifier, quantity)
			if err != nil {
				if isPgError(err, pgForeignKeyViolation) {
					return o, fmt.Errorf("item[%d]: %w", item.Identifier, ErrItemNotFound)
				}
				return o, fmt.Errorf("tx.Exec: %w", err)
			}
		}

		return getOrder(ctx, tx, orderID)
	})
	if err != nil {
		return o, fmt.Errorf("withTx: %w", err)
	}

	return created, nil
}

func (r *orderRepository) GetOrder(ctx context.Context, identifier int) (domain.Order, error) {
	order, err := getOrder(ctx, r.pool, identifier)
	if err != nil {
		return domain.Order{}, fmt.Errorf("getOrder: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT o.identifier, o.type, o.created, o.completed,
		        i.identifier, i.name, i.description, i.price, oi.quantity
		 FROM orders o
		 LEFT JOIN order_items oi ON oi.order_id = o.identifier
		 LEFT JOIN item i ON i.identifier = oi.item_id
		 ORDER BY o.identifier`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	// Group the joined rows by order, keeping the insertion order.
	orderMap := make(map[int]domain.Order)
	var orderIDs []int

	for rows.Next() {
		var (
			dbOrder  dbOrderRow
			itemID   *int
			name     *string
			desc     *string
			price    *int
			quantity *int
		)

		err := rows.Scan(&dbOrder.Identifier, &dbOrder.Type, &dbOrder.Created, &dbOrder.Completed,
			&itemID, &name, &desc, &price, &quantity)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		if _, exists := orderMap[dbOrder.Identifier]; !exists {
			order, err := mapDBOrderToDomain(dbOrder)
			if err != nil {
				return nil, fmt.Errorf("mapDBOrderToDomain: %w", err)
			}
			orderMap[dbOrder.Identifier] = order
			orderIDs = append(orderIDs, dbOrder.Identifier)
		}

		if itemID == nil {
			continue
		}

		order := orderMap[dbOrder.Identifier]
		order.Items[domain.Item{
			Identifier:  *itemID,
			Name:        *name,
			Description: *desc,
			Price:       *price,
		}] = *quantity
		orderMap[dbOrder.Identifier] = order
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	orders := make([]domain.Order, 0, len(orderIDs))
	for _, id := range orderIDs {
		orders = append(orders, orderMap[id])
	}

	return orders, nil
}

func (r *orderRepository) CompleteOrder(ctx context.Context, identifier int) (domain.Order, error) {
	var o domain.Order

	completed, err := withTx(ctx, r.pool, func(tx pgx.Tx) (domain.Order, error) {
		cmdTag, err := tx.Exec(ctx,
			`UPDATE orders
			 SET completed = now()
			 WHERE identifier = $1 AND completed IS NULL`, identifier)
		if err != nil {
			return o, fmt.Errorf("tx.Exec: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			// Either the order does not exist or it is already completed.
			var exists bool
			row := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM orders WHERE identifier = $1)`, identifier)
			if err := row.Scan(&exists); err != nil {
				return o, fmt.Errorf("row.Scan: %w", err)
			}

			if !exists {
				return o, ErrNotFound
			}
			return o, domain.ErrOrderCompleted
		}

		return getOrder(ctx, tx, identifier)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, domain.ErrOrderCompleted) {
			return o, err
		}
		return o, fmt.Errorf("withTx: %w", err)
	}

	return completed, nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, identifier int) error {
	_, err := withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		cmdTag, err := tx.Exec(ctx,
			`DELETE FROM order_items WHERE order_id = $1`, identifier)
		if err != nil {
			return struct{}{}, fmt.Errorf("tx.Exec order_items: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			r.logger.Warn().
				Int("order_id", identifier).
				Msg("order had no items on delete")
		}

		cmdTag, err = tx.Exec(ctx,
			`DELETE FROM orders WHERE identifier = $1`, identifier)
		if err != nil {
			return struct{}{}, fmt.Errorf("tx.Exec orders: %w", err)
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

type dbOrderRow struct {
	Identifier int
	Type       string
	Created    time.Time
	Completed  *time.Time
}

func getOrder(ctx context.Context, q querier, identifier int) (domain.Order, error) {
	var o domain.Order

	var dbOrder dbOrderRow
	row := q.QueryRow(ctx,
		`SELECT identifier, type, created, completed
		 FROM orders
		 WHERE identifier = $1`, identifier)

	err := row.Scan(&dbOrder.Identifier, &dbOrder.Type, &dbOrder.Created, &dbOrder.Completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return o, ErrNotFound
		}
		return o, fmt.Errorf("row.Scan: %w", err)
	}

	order, err := mapDBOrderToDomain(dbOrder)
	if err != nil {
		return o, fmt.Errorf("mapDBOrderToDomain: %w", err)
	}

	rows, err := q.Query(ctx,
		`SELECT i.identifier, i.name, i.description, i.price, oi.quantity
		 FROM order_items oi
		 JOIN item i ON i.identifier = oi.item_id
		 WHERE oi.order_id = $1`, identifier)
	if err != nil {
		return o, fmt.Errorf("q.Query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item     domain.Item
			quantity int
		)

		err := rows.Scan(&item.Identifier, &item.Name, &item.Description, &item.Price, &quantity)
		if err != nil {
			return o, fmt.Errorf("rows.Scan: %w", err)
		}
		order.Items[item] = quantity
	}

	if err := rows.Err(); err != nil {
		return o, fmt.Errorf("rows.Err: %w", err)
	}

	return order, nil
}

func mapDBOrderToDomain(row dbOrderRow) (domain.Order, error) {
	orderType, err := domain.ToOrderType(row.Type)
	if err != nil {
		return domain.Order{}, fmt.Errorf("domain.ToOrderType[%s]: %w", row.Type, err)
	}

	return domain.Order{
		Identifier: row.Identifier,
		Type:       orderType,
		Created:    row.Created,
		Completed:  row.Completed,
		Items:      make(map[domain.Item]int),
	}, nil
}
