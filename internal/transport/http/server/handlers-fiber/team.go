package handlers_fiber

import (
	"net/http"

	"jpashop/internal/entities"
	"jpashop/internal/mapper"
	"jpashop/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostTeam creates an empty team.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body oapi.PostTeamJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	team, err := h.uc.CreateTeam(c.UserContext(), entities.Team{Name: body.Name})
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOTeam(*team))
}

// GetTeams lists teams.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.Teams(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeamList(teams))
}

// GetTeam returns team with members by name.
func (h *Handler) GetTeam(c *fiber.Ctx, name string) error {
	team, err := h.uc.Team(c.UserContext(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeam(*team))
}
