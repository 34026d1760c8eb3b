package postgres

import (
	"context"
	"errors"
	"fmt"

	"jpashop/internal/auditor"
	"jpashop/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertTeamQuery = `
INSERT INTO teams(name, created_by, updated_by) VALUES ($1, $2, $2)
RETURNING id, created_at, updated_at, created_by, updated_by`
	selectTeamIDQuery      = `SELECT id FROM teams WHERE name = $1`
	selectTeamQuery        = `SELECT id, name, created_at, updated_at, created_by, updated_by FROM teams WHERE name = $1`
	selectTeamsQuery       = `SELECT id, name, created_at, updated_at, created_by, updated_by FROM teams ORDER BY id`
	selectTeamMembersQuery = `SELECT ` + memberColumns + memberFrom + ` WHERE m.team_id = $1 ORDER BY m.id`
)

// CreateTeam inserts a team; duplicate names yield ErrTeamExists.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	res := entities.Team{Name: team.Name, Members: []entities.Member{}}
	err := p.db.QueryRow(ctx, insertTeamQuery, team.Name, auditor.FromContext(ctx)).
		Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt, &res.CreatedBy, &res.UpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrTeamExists
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}

	p.log.Infow("team created", "team", team.Name)
	return &res, nil
}

// GetTeam fetches team with members by name.
func (p *Postgres) GetTeam(ctx context.Context, name string) (*entities.Team, error) {
	var team entities.Team
	if err := scanTeam(p.db.QueryRow(ctx, selectTeamQuery, name), &team); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	members, err := p.queryMembers(ctx, selectTeamMembersQuery, team.ID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	team.Members = members
	return &team, nil
}

// ListTeams returns teams without members.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, selectTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := scanTeam(rows, &t); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}
	return teams, nil
}

func scanTeam(row pgx.Row, t *entities.Team) error {
	return row.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt, &t.CreatedBy, &t.UpdatedBy)
}
