package dto

// CreateOrderRequest references items by identifier, the server resolves them
// against the catalog.
type CreateOrderRequest struct {
	Type  string      `json:"type"`
	Items []OrderLine `json:"items"`
}

type OrderLine struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
