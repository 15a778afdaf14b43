package domain

import (
	"errors"
	"fmt"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 1000
)

// Item is a sellable product. Price is in cents.
type Item struct {
	Identifier  int
	Name        string
	Description string
	Price       int
}

func (i Item) Validate() error {
	if i.Name == "" {
		return errors.New("name is empty")
	}

	if len(i.Name) > maxNameLength {
		return fmt.Errorf("name is longer than %d characters", maxNameLength)
	}

	if len(i.Description) > maxDescriptionLength {
		return fmt.Errorf("description is longer than %d characters", maxDescriptionLength)
	}

	if i.Price < 0 {
		return errors.New("price is negative")
	}

	return nil
}
