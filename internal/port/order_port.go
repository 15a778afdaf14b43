package port

import (
	"context"

	"github.com/nikolayk812/ezcheckout/internal/domain"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	GetOrder(ctx context.Context, identifier int) (domain.Order, error)

	// ListOrders returns all orders. There is no pagination, so this is an
	// unbounded scan.
	ListOrders(ctx context.Context) ([]domain.Order, error)

	CompleteOrder(ctx context.Context, identifier int) (domain.Order, error)
	DeleteOrder(ctx context.Context, identifier int) error
}
