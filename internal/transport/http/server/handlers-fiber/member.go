package handlers_fiber

import (
	"net/http"

	"jpashop/internal/entities"
	"jpashop/internal/mapper"
	"jpashop/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostMember joins a new member.
func (h *Handler) PostMember(c *fiber.Ctx) error {
	var body oapi.PostMemberJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	member, err := h.uc.JoinMember(c.UserContext(), mapper.FromDTOCreateMember(body))
	if err != nil {
		h.log.Infow("join member failed", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(oapi.CreateMemberResponse{Id: member.ID})
}

// GetMembers searches members with optional conditions, one page at a time.
func (h *Handler) GetMembers(c *fiber.Ctx, params oapi.GetMembersParams) error {
	cond := entities.MemberSearch{
		Username: stringOr(params.Username),
		TeamName: stringOr(params.TeamName),
		AgeGoe:   params.AgeGoe,
		AgeLoe:   params.AgeLoe,
	}
	req := entities.PageRequest{
		Page: intOr(params.Page, 0),
		Size: intOr(params.Size, h.defaultPageSize),
	}.Normalize(h.defaultPageSize, h.maxPageSize)

	page, err := h.uc.Members(c.UserContext(), cond, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOMemberTeamPage(page))
}

// ListMembers pages every member as id, username and team name.
func (h *Handler) ListMembers(c *fiber.Ctx, params oapi.ListMembersParams) error {
	req := entities.PageRequest{
		Page: intOr(params.Page, 0),
		Size: intOr(params.Size, MemberListPageSize),
	}.Normalize(MemberListPageSize, h.maxPageSize)

	page, err := h.uc.Members(c.UserContext(), entities.MemberSearch{}, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOMemberDtoPage(page))
}

// GetMember returns a member by id.
func (h *Handler) GetMember(c *fiber.Ctx, id oapi.ID) error {
	member, err := h.uc.Member(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOMember(*member))
}

// GetMemberName returns the member's name as plain text.
func (h *Handler) GetMemberName(c *fiber.Ctx, id oapi.ID) error {
	member, err := h.uc.Member(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).SendString(member.Name)
}

// PutMember renames a member.
func (h *Handler) PutMember(c *fiber.Ctx, id oapi.ID) error {
	var body oapi.PutMemberJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	member, err := h.uc.UpdateMember(c.UserContext(), id, entities.MemberUpdate{Name: body.Name, Age: body.Age})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(oapi.UpdateMemberResponse{Id: member.ID, Name: member.Name})
}

// PostBulkAge adds a year to every member at least the given age.
func (h *Handler) PostBulkAge(c *fiber.Ctx) error {
	var body oapi.PostBulkAgeJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	updated, err := h.uc.BulkAgePlus(c.UserContext(), body.Age)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(oapi.BulkAgeResponse{Updated: updated})
}
