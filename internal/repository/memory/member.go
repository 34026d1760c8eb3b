package memory

import (
	"context"
	"sort"

	"jpashop/internal/auditor"
	"jpashop/internal/entities"
)

// SaveMember stores a member, resolving its team by name when only the name is given.
// Names are unique: a taken name yields ErrMemberExists.
func (m *Memory) SaveMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nameTaken(member.Name, 0) {
		return nil, entities.ErrMemberExists
	}

	if member.TeamID == nil && member.TeamName != "" {
		team, ok := m.teamByName(member.TeamName)
		if !ok {
			return nil, entities.ErrTeamNotFound
		}
		member.TeamID = &team.ID
	}

	m.seqMember++
	member.ID = m.seqMember
	member.Auditable = entities.Auditable{}
	member.Touch(auditor.FromContext(ctx), m.now())
	m.members[member.ID] = member

	m.log.Infow("member saved", "member_id", member.ID, "name", member.Name)
	res := m.withTeamName(member)
	return &res, nil
}

// GetMember fetches a member with its team name.
func (m *Memory) GetMember(_ context.Context, id int64) (*entities.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	member, ok := m.members[id]
	if !ok {
		return nil, entities.ErrMemberNotFound
	}
	res := m.withTeamName(member)
	return &res, nil
}

// FindMembersByName returns members with exactly the given name.
func (m *Memory) FindMembersByName(_ context.Context, name string) ([]entities.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.Member, 0)
	for _, member := range m.sortedMembers() {
		if member.Name == name {
			res = append(res, m.withTeamName(member))
		}
	}
	return res, nil
}

// ListMembers returns all members ordered by id.
func (m *Memory) ListMembers(_ context.Context) ([]entities.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.Member, 0, len(m.members))
	for _, member := range m.sortedMembers() {
		res = append(res, m.withTeamName(member))
	}
	return res, nil
}

// UpdateMember changes name and, when given, age.
func (m *Memory) UpdateMember(ctx context.Context, id int64, upd entities.MemberUpdate) (*entities.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	member, ok := m.members[id]
	if !ok {
		return nil, entities.ErrMemberNotFound
	}
	if m.nameTaken(upd.Name, id) {
		return nil, entities.ErrMemberExists
	}
	member.Name = upd.Name
	if upd.Age != nil {
		member.Age = *upd.Age
	}
	member.Touch(auditor.FromContext(ctx), m.now())
	m.members[id] = member

	res := m.withTeamName(member)
	return &res, nil
}

// SearchMembers returns member/team projections matching cond.
func (m *Memory) SearchMembers(_ context.Context, cond entities.MemberSearch) ([]entities.MemberTeam, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.searchLocked(cond), nil
}

// SearchMembersPage returns one page of projections; the count runs only when needed.
func (m *Memory) SearchMembersPage(_ context.Context, cond entities.MemberSearch, req entities.PageRequest) (entities.Page[entities.MemberTeam], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.searchLocked(cond)
	from := req.Offset()
	if from > len(all) {
		from = len(all)
	}
	to := from + req.Size
	if to > len(all) {
		to = len(all)
	}
	content := append([]entities.MemberTeam(nil), all[from:to]...)

	return entities.NewPage(content, req, func() (int64, error) {
		return int64(len(all)), nil
	})
}

// BulkAgePlus increments the age of every member at least age years old.
func (m *Memory) BulkAgePlus(ctx context.Context, age int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var affected int64
	now, by := m.now(), auditor.FromContext(ctx)
	for id, member := range m.members {
		if member.Age >= age {
			member.Age++
			member.Touch(by, now)
			m.members[id] = member
			affected++
		}
	}
	return affected, nil
}

func (m *Memory) searchLocked(cond entities.MemberSearch) []entities.MemberTeam {
	res := make([]entities.MemberTeam, 0)
	for _, member := range m.sortedMembers() {
		mt := entities.MemberTeam{MemberID: member.ID, Username: member.Name, Age: member.Age}
		if member.TeamID != nil {
			if team, ok := m.teams[*member.TeamID]; ok {
				id, name := team.ID, team.Name
				mt.TeamID = &id
				mt.TeamName = &name
			}
		}
		if cond.Matches(mt) {
			res = append(res, mt)
		}
	}
	return res
}

// nameTaken reports whether a member other than except already uses name.
func (m *Memory) nameTaken(name string, except int64) bool {
	for id, member := range m.members {
		if id != except && member.Name == name {
			return true
		}
	}
	return false
}

func (m *Memory) sortedMembers() []entities.Member {
	res := make([]entities.Member, 0, len(m.members))
	for _, member := range m.members {
		res = append(res, member)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (m *Memory) withTeamName(member entities.Member) entities.Member {
	member.TeamName = ""
	if member.TeamID != nil {
		id := *member.TeamID
		member.TeamID = &id
		if team, ok := m.teams[id]; ok {
			member.TeamName = team.Name
		}
	}
	return member
}
