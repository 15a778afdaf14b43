package domain

import "errors"

type OrderType string

// remember to add new types to the validOrderTypes map
const (
	OrderTypeCustomer OrderType = "customer"
	OrderTypeEmployee OrderType = "employee"
)

var validOrderTypes = map[OrderType]struct{}{
	OrderTypeCustomer: {},
	OrderTypeEmployee: {},
}

func ToOrderType(s string) (OrderType, error) {
	orderType := OrderType(s)
	if _, ok := validOrderTypes[orderType]; ok {
		return orderType, nil
	}

	return "", errors.New("invalid order type")
}

func OrderTypes() []OrderType {
	result := make([]OrderType, 0, len(validOrderTypes))
	for orderType := range validOrderTypes {
		result = append(result, orderType)
	}
	return result
}
