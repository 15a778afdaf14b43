package domain

import (
	"errors"
	"time"
)

var ErrOrderCompleted = errors.New("order is already completed")

// Order is a purchase transaction. Items maps each item to its quantity.
type Order struct {
	Identifier int
	Type       OrderType
	Created    time.Time
	Completed  *time.Time
	Items      map[Item]int
}

func NewOrder(orderType OrderType, items map[Item]int) Order {
	return Order{
		Type:    orderType,
		Created: time.Now().UTC(),
		Items:   items,
	}
}

func (o Order) IsCompleted() bool {
	return o.Completed != nil
}

// Complete marks the order as completed. Completing twice is an error.
func (o *Order) Complete() error {
	if o.IsCompleted() {
		return ErrOrderCompleted
	}

	now := time.Now().UTC()
	o.Completed = &now
	return nil
}

// TotalPrice is the sum of item price times quantity, in cents.
func (o Order) TotalPrice() int {
	var total int
	for item, quantity := range o.Items {
		total += item.Price * quantity
	}
	return total
}

func (o Order) Validate() error {
	if _, err := ToOrderType(string(o.Type)); err != nil {
		return err
	}

	if len(o.Items) == 0 {
		return errors.New("no items in order")
	}

	for item, quantity := range o.Items {
		if quantity < 1 {
			return errors.New("quantity is less than 1")
		}

		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}
