package handlers_fiber

import (
	"context"
	"net/http"

	"jpashop/internal/entities"
	"jpashop/internal/mapper"
	"jpashop/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostOrder places an order.
func (h *Handler) PostOrder(c *fiber.Ctx) error {
	var body oapi.PostOrderJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	order, err := h.uc.PlaceOrder(c.UserContext(), body.MemberId, mapper.FromDTOOrderLines(body.Items))
	if err != nil {
		h.log.Infow("place order failed", "member_id", body.MemberId, "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOOrder(*order))
}

// GetOrder returns an order by id.
func (h *Handler) GetOrder(c *fiber.Ctx, id oapi.ID) error {
	return h.orderAction(c, id, h.uc.Order)
}

// PostCancelOrder cancels an order and restores stock.
func (h *Handler) PostCancelOrder(c *fiber.Ctx, id oapi.ID) error {
	return h.orderAction(c, id, h.uc.CancelOrder)
}

// PostDeliverOrder completes an order's delivery.
func (h *Handler) PostDeliverOrder(c *fiber.Ctx, id oapi.ID) error {
	return h.orderAction(c, id, h.uc.CompleteDelivery)
}

func (h *Handler) orderAction(c *fiber.Ctx, id int64, fn func(context.Context, int64) (*entities.Order, error)) error {
	order, err := fn(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOOrder(*order))
}
