package handlers_fiber

import (
	"net/http"

	"jpashop/internal/mapper"
	"jpashop/internal/oapi"
	"jpashop/internal/usecase/domain"

	"github.com/gofiber/fiber/v2"
)

// GetOrdersV1 searches orders and returns them with lines.
func (h *Handler) GetOrdersV1(c *fiber.Ctx, params oapi.GetOrdersV1Params) error {
	views, err := h.uc.SearchOrders(c.UserContext(), mapper.FromDTOOrderSearch(params.MemberName, params.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOOrderViews(views))
}

// GetSimpleOrdersV2 searches orders and returns them without lines.
func (h *Handler) GetSimpleOrdersV2(c *fiber.Ctx, params oapi.GetSimpleOrdersV2Params) error {
	orders, err := h.uc.SearchSimpleOrders(c.UserContext(), mapper.FromDTOOrderSearch(params.MemberName, params.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSimpleOrders(orders))
}

// GetSimpleOrdersV3 returns every order through one join query.
func (h *Handler) GetSimpleOrdersV3(c *fiber.Ctx) error {
	orders, err := h.uc.SimpleOrders(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSimpleOrders(orders))
}

// GetOrdersV31 pages order roots and loads their lines in one batch.
func (h *Handler) GetOrdersV31(c *fiber.Ctx, params oapi.GetOrdersV31Params) error {
	offset := intOr(params.Offset, 0)
	limit := intOr(params.Limit, domain.DefaultOrdersLimit)

	views, err := h.uc.OrdersPage(c.UserContext(), offset, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOOrderViews(views))
}

// GetOrdersV5 returns every order through projection queries.
func (h *Handler) GetOrdersV5(c *fiber.Ctx) error {
	views, err := h.uc.OrderViews(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOOrderViews(views))
}

// GetOrdersV6 returns every order from one flat join grouped in memory.
func (h *Handler) GetOrdersV6(c *fiber.Ctx) error {
	views, err := h.uc.OrderViewsFlat(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOOrderViews(views))
}
