package domain

import "errors"

// Checkout is a station offering a fixed catalog of items for sale.
type Checkout struct {
	Identifier     int
	Name           string
	AvailableItems []Item
}

func (c Checkout) Validate() error {
	if c.Name == "" {
		return errors.New("name is empty")
	}

	return nil
}
