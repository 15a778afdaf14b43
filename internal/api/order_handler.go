package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/nikolayk812/ezcheckout/internal/dto"
	"github.com/nikolayk812/ezcheckout/internal/port"
	"github.com/nikolayk812/ezcheckout/internal/repository"
	"github.com/rs/zerolog"
)

type OrderHandler struct {
	orders port.OrderRepository
	items  port.ItemRepository
	logger zerolog.Logger
}

func NewOrderHandler(orders port.OrderRepository, items port.ItemRepository, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		items:  items,
		logger: logger,
	}
}

// CreateOrder creates a new order --> POST /api/orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	orderType, err := dto.ParseOrderType(req.Type)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no items in order"})
	}

	ctx := c.Request().Context()

	// Resolve item references against the catalog so the order carries full
	// item values.
	items := make(map[domain.Item]int, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "quantity must be at least 1"})
		}

		item, err := h.items.GetItem(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown item " + strconv.Itoa(line.ItemID)})
			}
			h.logger.Error().Err(err).Int("item_id", line.ItemID).Msg("failed to resolve order item")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}

		items[item] += line.Quantity
	}

	order := domain.NewOrder(orderType, items)

	created, err := h.orders.CreateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		h.logger.Error().Err(err).Msg("failed to create order")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	h.logger.Info().Int("order_id", created.Identifier).Int("total_price", created.TotalPrice()).Msg("order created")
	return c.JSON(http.StatusCreated, dto.FromOrder(created))
}

// GetOrder gets an order by its identifier --> GET /api/orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	order, err := h.orders.GetOrder(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		h.logger.Error().Err(err).Int("order_id", id).Msg("failed to get order")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, dto.FromOrder(order))
}

// GetOrders gets all orders --> GET /api/orders
func (h *OrderHandler) GetOrders(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list orders")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, dto.FromOrders(orders))
}

// CompleteOrder completes an open order --> POST /api/orders/:id/complete
func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	order, err := h.orders.CompleteOrder(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.NoContent(http.StatusNotFound)
		case errors.Is(err, domain.ErrOrderCompleted):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		h.logger.Error().Err(err).Int("order_id", id).Msg("failed to complete order")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	h.logger.Info().Int("order_id", id).Msg("order completed")
	return c.JSON(http.StatusOK, dto.FromOrder(order))
}

// DeleteOrder deletes an order --> DELETE /api/orders/:id
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}

	if err := h.orders.DeleteOrder(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		h.logger.Error().Err(err).Int("order_id", id).Msg("failed to delete order")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	h.logger.Info().Int("order_id", id).Msg("order deleted")
	return c.NoContent(http.StatusNoContent)
}
