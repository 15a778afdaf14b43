package port

import (
	"context"

	"github.com/nikolayk812/ezcheckout/internal/domain"
)

type ItemRepository interface {
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	GetItem(ctx context.Context, identifier int) (domain.Item, error)

	// ListItems returns all items. There is no pagination, so this is an
	// unbounded scan.
	ListItems(ctx context.Context) ([]domain.Item, error)

	UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	DeleteItem(ctx context.Context, identifier int) (domain.Item, error)
}
