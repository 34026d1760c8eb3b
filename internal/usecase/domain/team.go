package domain

import (
	"context"
	"fmt"
	"strings"

	"jpashop/internal/entities"
)

// CreateTeam creates an empty team.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: team name is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateTeam(ctx, team)
}

// Team returns team by name.
func (u *Usecase) Team(ctx context.Context, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: team name is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, name)
}

// Teams lists every team.
func (u *Usecase) Teams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListTeams(ctx)
}
