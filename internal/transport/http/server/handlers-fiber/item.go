package handlers_fiber

import (
	"net/http"

	"jpashop/internal/mapper"
	"jpashop/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostItem registers an item.
func (h *Handler) PostItem(c *fiber.Ctx) error {
	var body oapi.PostItemJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	item, err := h.uc.RegisterItem(c.UserContext(), mapper.FromDTOCreateItem(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOItem(*item))
}

// GetItems lists all items.
func (h *Handler) GetItems(c *fiber.Ctx) error {
	items, err := h.uc.Items(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOItemList(items))
}

// GetItem returns an item by id.
func (h *Handler) GetItem(c *fiber.Ctx, id oapi.ID) error {
	item, err := h.uc.Item(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOItem(*item))
}

// PutItem edits name, price and stock of an item.
func (h *Handler) PutItem(c *fiber.Ctx, id oapi.ID) error {
	var body oapi.PutItemJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	item, err := h.uc.UpdateItem(c.UserContext(), id, mapper.FromDTOUpdateItem(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOItem(*item))
}
