package dto

import (
	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/samber/lo"
)

// Checkout is the wire representation of a checkout station.
type Checkout struct {
	Identifier     int    `json:"identifier"`
	Name           string `json:"name"`
	AvailableItems []Item `json:"availableItems"`
}

func FromCheckout(checkout domain.Checkout) Checkout {
	return Checkout{
		Identifier:     checkout.Identifier,
		Name:           checkout.Name,
		AvailableItems: FromItems(checkout.AvailableItems),
	}
}

func FromCheckouts(checkouts []domain.Checkout) []Checkout {
	return lo.Map(checkouts, func(checkout domain.Checkout, _ int) Checkout {
		return FromCheckout(checkout)
	})
}

func (c Checkout) ToDomain() domain.Checkout {
	return domain.Checkout{
		Identifier: c.Identifier,
		Name:       c.Name,
		AvailableItems: lo.Map(c.AvailableItems, func(item Item, _ int) domain.Item {
			return item.ToDomain()
		}),
	}
}
