package port

import (
	"context"

	"github.com/nikolayk812/ezcheckout/internal/domain"
)

type CheckoutRepository interface {
	CreateCheckout(ctx context.Context, checkout domain.Checkout) (domain.Checkout, error)
	GetCheckout(ctx context.Context, identifier int) (domain.Checkout, error)

	// ListCheckouts returns all checkouts. There is no pagination, so this is
	// an unbounded scan.
	ListCheckouts(ctx context.Context) ([]domain.Checkout, error)

	UpdateCheckout(ctx context.Context, checkout domain.Checkout) (domain.Checkout, error)
	DeleteCheckout(ctx context.Context, identifier int) error

	AddItem(ctx context.Context, checkoutID, itemID int) error
	RemoveItem(ctx context.Context, checkoutID, itemID int) error
}
