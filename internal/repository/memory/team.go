package memory

import (
	"context"
	"sort"

	"jpashop/internal/auditor"
	"jpashop/internal/entities"
)

// CreateTeam stores a team; duplicate names yield ErrTeamExists.
func (m *Memory) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teamByName(team.Name); ok {
		return nil, entities.ErrTeamExists
	}

	m.seqTeam++
	stored := entities.Team{ID: m.seqTeam, Name: team.Name}
	stored.Touch(auditor.FromContext(ctx), m.now())
	m.teams[stored.ID] = stored

	m.log.Infow("team created", "team", team.Name)
	stored.Members = []entities.Member{}
	return &stored, nil
}

// GetTeam fetches team with members by name.
func (m *Memory) GetTeam(_ context.Context, name string) (*entities.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	team, ok := m.teamByName(name)
	if !ok {
		return nil, entities.ErrTeamNotFound
	}

	team.Members = make([]entities.Member, 0)
	for _, member := range m.sortedMembers() {
		if member.TeamID != nil && *member.TeamID == team.ID {
			team.Members = append(team.Members, m.withTeamName(member))
		}
	}
	return &team, nil
}

// ListTeams returns teams without members.
func (m *Memory) ListTeams(_ context.Context) ([]entities.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.Team, 0, len(m.teams))
	for _, t := range m.teams {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (m *Memory) teamByName(name string) (entities.Team, bool) {
	for _, t := range m.teams {
		if t.Name == name {
			return t, true
		}
	}
	return entities.Team{}, false
}
