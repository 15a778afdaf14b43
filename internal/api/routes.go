package api

import (
	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/ezcheckout/internal/auth"
)

type Handlers struct {
	Items     *ItemHandler
	Orders    *OrderHandler
	Checkouts *CheckoutHandler
	Auth      *AuthHandler
}

// RegisterRoutes wires all endpoints. Everything except login and register
// requires an authenticated session.
func RegisterRoutes(e *echo.Echo, h Handlers, authService *auth.Service) {
	public := e.Group("/api")
	public.POST("/auth/login", h.Auth.Login)
	public.POST("/auth/register", h.Auth.Register)

	protected := e.Group("/api", RequireSession(authService))
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/user", h.Auth.CurrentUser)

	protected.POST("/items", h.Items.CreateItem)
	protected.GET("/items", h.Items.GetItems)
	protected.GET("/items/:id", h.Items.GetItem)
	protected.PUT("/items/:id", h.Items.UpdateItem)
	protected.DELETE("/items/:id", h.Items.DeleteItem)

	protected.POST("/orders", h.Orders.CreateOrder)
	protected.GET("/orders", h.Orders.GetOrders)
	protected.GET("/orders/:id", h.Orders.GetOrder)
	protected.POST("/orders/:id/complete", h.Orders.CompleteOrder)
	protected.DELETE("/orders/:id", h.Orders.DeleteOrder)

	protected.POST("/checkouts", h.Checkouts.CreateCheckout)
	protected.GET("/checkouts", h.Checkouts.GetCheckouts)
	protected.GET("/checkouts/:id", h.Checkouts.GetCheckout)
	protected.PUT("/checkouts/:id", h.Checkouts.UpdateCheckout)
	protected.DELETE("/checkouts/:id", h.Checkouts.DeleteCheckout)
	protected.PUT("/checkouts/:id/items/:itemId", h.Checkouts.AddItem)
	protected.DELETE("/checkouts/:id/items/:itemId", h.Checkouts.RemoveItem)
}
