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

type ItemHandler struct {
	items  port.ItemRepository
	logger zerolog.Logger
}

func NewItemHandler(items port.ItemRepository, logger zerolog.Logger) *ItemHandler {
	return &ItemHandler{
		items:  items,
		logger: logger,
	}
}

// CreateItem creates a new item --> POST /api/items
func (h *ItemHandler) CreateItem(c echo.Context) error {
	var item dto.Item
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	domainItem := item.ToDomain()
	if err := domainItem.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := h.items.CreateItem(c.Request().Context(), domainItem)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create item")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	h.logger.Info().Int("item_id", created.Identifier).Str("name", created.Name).Msg("item created")
	return c.JSON(http.StatusCreated, dto.FromItem(created))
}

// GetItem gets an item by its identifier --> GET /api/items/:id
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid item ID"})
	}

	item, err := h.items.GetItem(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		h.logger.Error().Err(err).Int("item_id", id).Msg("failed to get item")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, dto.FromItem(item))
}

// GetItems gets all items --> GET /api/items
func (h *ItemHandler) GetItems(c echo.Context) error {
	items, err := h.items.ListItems(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list items")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, dto.FromItems(items))
}

// UpdateItem updates an existing item --> PUT /api/items/:id
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid item ID"})
	}

	var item dto.Item
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	if id != item.Identifier {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Identifier mismatch."})
	}

	domainItem := item.ToDomain()
	if err := domainItem.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()

	if _, err := h.items.GetItem(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		h.logger.Error().Err(err).Int("item_id", id).Msg("failed to get item")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	updated, err := h.items.UpdateItem(ctx, domainItem)
	if err != nil {
		h.logger.Error().Err(err).Int("item_id", id).Msg("failed to update item")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	h.logger.Info().Int("item_id", updated.Identifier).Str("name", updated.Name).Msg("item updated")
	return c.JSON(http.StatusOK, dto.FromItem(updated))
}

// DeleteItem deletes an existing item --> DELETE /api/items/:id
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid item ID"})
	}

	deleted, err := h.items.DeleteItem(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		h.logger.Error().Err(err).Int("item_id", id).Msg("failed to delete item")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	h.logger.Info().Int("item_id", id).Str("name", deleted.Name).Msg("item deleted")
	return c.NoContent(http.StatusNoContent)
}
