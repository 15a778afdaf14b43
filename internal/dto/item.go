package dto

import (
	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/samber/lo"
)

// Item is the wire representation of a catalog item.
type Item struct {
	Identifier  int    `json:"identifier"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

func FromItem(item domain.Item) Item {
	return Item{
		Identifier:  item.Identifier,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
	}
}

func FromItems(items []domain.Item) []Item {
	return lo.Map(items, func(item domain.Item, _ int) Item {
		return FromItem(item)
	})
}

func (i Item) ToDomain() domain.Item {
	return domain.Item{
		Identifier:  i.Identifier,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
	}
}
