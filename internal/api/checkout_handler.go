package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nikolayk812/ezcheckout/internal/dto"
	"github.com/nikolayk812/ezcheckout/internal/port"
	"github.com/nikolayk812/ezcheckout/internal/repository"
	"github.com/rs/zerolog"
)

type CheckoutHandler struct {
	checkouts port.CheckoutRepository
	logger    zerolog.Logger
}

func NewCheckoutHandler(checkouts port.CheckoutRepository, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkouts: checkouts,
		logger:    logger,
	}
}

// CreateCheckout creates a new checkout station --> POST /api/checkouts
func (h *CheckoutHandler) CreateCheckout(c echo.Context) error {
	var checkout dto.Checkout
	if err := c.Bind(&checkout); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	domainCheckout := checkout.ToDomain()
	if err := domainCheckout.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := h.checkouts.CreateCheckout(c.Request().Context(), domainCheckout)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		h.logger.Error().Err(err).Msg("failed to create checkout")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	h.logger.Info().Int("checkout_id", created.Identifier).Str("name", created.Name).Msg("checkout created")
	return c.JSON(http.StatusCreated, dto.FromCheckout(created))
}

// GetCheckout gets a checkout by its identifier --> GET /api/checkouts/:id
func (h *CheckoutHandler) GetCheckout(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid checkout ID"})
	}

	checkout, err := h.checkouts.GetCheckout(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		h.logger.Error().Err(err).Int("checkout_id", id).Msg("failed to get checkout")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, dto.FromCheckout(checkout))
}

// GetCheckouts gets all checkouts --> GET /api/checkouts
func (h *CheckoutHandler) GetCheckouts(c echo.Context) error {
	checkouts, err := h.checkouts.ListCheckouts(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list checkouts")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, dto.FromCheckouts(checkouts))
}

// UpdateCheckout updates a checkout and its item set --> PUT /api/checkouts/:id
func (h *CheckoutHandler) UpdateCheckout(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid checkout ID"})
	}

	var checkout dto.Checkout
	if err := c.Bind(&checkout); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	if id != checkout.Identifier {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Identifier mismatch."})
	}

	domainCheckout := checkout.ToDomain()
	if err := domainCheckout.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()

	if _, err := h.checkouts.GetCheckout(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		h.logger.Error().Err(err).Int("checkout_id", id).Msg("failed to get checkout")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	updated, err := h.checkouts.UpdateCheckout(ctx, domainCheckout)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		h.logger.Error().Err(err).Int("checkout_id", id).Msg("failed to update checkout")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	h.logger.Info().Int("checkout_id", id).Msg("checkout updated")
	return c.JSON(http.StatusOK, dto.FromCheckout(updated))
}

// DeleteCheckout deletes a checkout --> DELETE /api/checkouts/:id
func (h *CheckoutHandler) DeleteCheckout(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid checkout ID"})
	}

	if err := h.checkouts.DeleteCheckout(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		h.logger.Error().Err(err).Int("checkout_id", id).Msg("failed to delete checkout")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	h.logger.Info().Int("checkout_id", id).Msg("checkout deleted")
	return c.NoContent(http.StatusNoContent)
}

// AddItem makes an item available at a checkout --> PUT /api/checkouts/:id/items/:itemId
func (h *CheckoutHandler) AddItem(c echo.Context) error {
	checkoutID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid checkout ID"})
	}

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid item ID"})
	}

	if err := h.checkouts.AddItem(c.Request().Context(), checkoutID, itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		h.logger.Error().Err(err).Int("checkout_id", checkoutID).Int("item_id", itemID).Msg("failed to add checkout item")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveItem removes an item from a checkout --> DELETE /api/checkouts/:id/items/:itemId
func (h *CheckoutHandler) RemoveItem(c echo.Context) error {
	checkoutID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid checkout ID"})
	}

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid item ID"})
	}

	if err := h.checkouts.RemoveItem(c.Request().Context(), checkoutID, itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		h.logger.Error().Err(err).Int("checkout_id", checkoutID).Int("item_id", itemID).Msg("failed to remove checkout item")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}
