package dto

import (
	"fmt"
	"sort"
	"time"

	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/samber/lo"
)

// Order is the wire representation of an order.
type Order struct {
	Identifier int         `json:"identifier"`
	Type       string      `json:"type"`
	Created    time.Time   `json:"created"`
	Completed  *time.Time  `json:"completed"`
	Items      []OrderItem `json:"items"`
	TotalPrice int         `json:"totalPrice"`
}

type OrderItem struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// order types use capitalized names on the wire, lowercase in the domain and
// the database
var orderTypeNames = map[domain.OrderType]string{
	domain.OrderTypeCustomer: "Customer",
	domain.OrderTypeEmployee: "Employee",
}

func FormatOrderType(t domain.OrderType) string {
	return orderTypeNames[t]
}

func ParseOrderType(s string) (domain.OrderType, error) {
	for orderType, name := range orderTypeNames {
		if name == s {
			return orderType, nil
		}
	}

	return "", fmt.Errorf("invalid order type: %q", s)
}

func FromOrder(order domain.Order) Order {
	items := make([]OrderItem, 0, len(order.Items))
	for item, quantity := range order.Items {
		items = append(items, OrderItem{
			Item:     FromItem(item),
			Quantity: quantity,
		})
	}

	// map iteration order is random, keep the wire format deterministic
	sort.Slice(items, func(i, j int) bool {
		return items[i].Item.Identifier < items[j].Item.Identifier
	})

	return Order{
		Identifier: order.Identifier,
		Type:       FormatOrderType(order.Type),
		Created:    order.Created,
		Completed:  order.Completed,
		Items:      items,
		TotalPrice: order.TotalPrice(),
	}
}

func FromOrders(orders []domain.Order) []Order {
	return lo.Map(orders, func(order domain.Order, _ int) Order {
		return FromOrder(order)
	})
}

func (o Order) ToDomain() (domain.Order, error) {
	orderType, err := ParseOrderType(o.Type)
	if err != nil {
		return domain.Order{}, fmt.Errorf("ParseOrderType: %w", err)
	}

	items := make(map[domain.Item]int, len(o.Items))
	for _, orderItem := range o.Items {
		items[orderItem.Item.ToDomain()] = orderItem.Quantity
	}

	return domain.Order{
		Identifier: o.Identifier,
		Type:       orderType,
		Created:    o.Created,
		Completed:  o.Completed,
		Items:      items,
	}, nil
}
