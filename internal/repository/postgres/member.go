package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"jpashop/internal/auditor"
	"jpashop/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	memberColumns = `m.id, m.name, m.age, m.city, m.street, m.zipcode, m.team_id, COALESCE(t.name, ''),
m.created_at, m.updated_at, m.created_by, m.updated_by`
	memberFrom        = ` FROM members m LEFT JOIN teams t ON t.id = m.team_id`
	insertMemberQuery = `
INSERT INTO members(name, age, city, street, zipcode, team_id, created_by, updated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING id`
	selectMemberQuery        = `SELECT ` + memberColumns + memberFrom + ` WHERE m.id = $1`
	selectMembersByNameQuery = `SELECT ` + memberColumns + memberFrom + ` WHERE m.name = $1 ORDER BY m.id`
	selectMembersQuery       = `SELECT ` + memberColumns + memberFrom + ` ORDER BY m.id`
	updateMemberQuery        = `
UPDATE members
SET name = $2, age = COALESCE($3, age), updated_at = NOW(), updated_by = $4
WHERE id = $1`
	bulkAgePlusQuery       = `UPDATE members SET age = age + 1, updated_at = NOW(), updated_by = $2 WHERE age >= $1`
	memberTeamColumns      = `SELECT m.id, m.name, m.age, t.id, t.name`
	memberTeamCountColumns = `SELECT COUNT(*)`
)

// SaveMember inserts a member, resolving its team by name when only the name is given.
func (p *Postgres) SaveMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	if member.TeamID == nil && member.TeamName != "" {
		var teamID int64
		if err := p.db.QueryRow(ctx, selectTeamIDQuery, member.TeamName).Scan(&teamID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, entities.ErrTeamNotFound
			}
			return nil, fmt.Errorf("team lookup: %w", err)
		}
		member.TeamID = &teamID
	}

	var id int64
	err := p.db.QueryRow(ctx, insertMemberQuery,
		member.Name, member.Age,
		member.Address.City, member.Address.Street, member.Address.Zipcode,
		member.TeamID, auditor.FromContext(ctx),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrMemberExists
		}
		p.log.Errorw("failed to insert member", "error", err, "name", member.Name)
		return nil, fmt.Errorf("insert member: %w", err)
	}

	p.log.Infow("member saved", "member_id", id, "name", member.Name)
	return p.GetMember(ctx, id)
}

// GetMember fetches a member with its team name.
func (p *Postgres) GetMember(ctx context.Context, id int64) (*entities.Member, error) {
	m, err := scanMember(p.db.QueryRow(ctx, selectMemberQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &m, nil
}

// FindMembersByName returns members with exactly the given name.
func (p *Postgres) FindMembersByName(ctx context.Context, name string) ([]entities.Member, error) {
	return p.queryMembers(ctx, selectMembersByNameQuery, name)
}

// ListMembers returns all members ordered by id.
func (p *Postgres) ListMembers(ctx context.Context) ([]entities.Member, error) {
	return p.queryMembers(ctx, selectMembersQuery)
}

// UpdateMember changes name and, when given, age.
func (p *Postgres) UpdateMember(ctx context.Context, id int64, upd entities.MemberUpdate) (*entities.Member, error) {
	tag, err := p.db.Exec(ctx, updateMemberQuery, id, upd.Name, upd.Age, auditor.FromContext(ctx))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrMemberExists
		}
		p.log.Errorw("failed to update member", "error", err, "member_id", id)
		return nil, fmt.Errorf("update member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrMemberNotFound
	}

	p.log.Infow("member updated", "member_id", id)
	return p.GetMember(ctx, id)
}

// SearchMembers returns member/team projections matching cond.
func (p *Postgres) SearchMembers(ctx context.Context, cond entities.MemberSearch) ([]entities.MemberTeam, error) {
	where, args := buildMemberFilter(cond)
	return p.queryMemberTeams(ctx, memberTeamColumns+memberFrom+where+" ORDER BY m.id", args...)
}

// SearchMembersPage returns one page of projections; the count query runs only when needed.
func (p *Postgres) SearchMembersPage(ctx context.Context, cond entities.MemberSearch, req entities.PageRequest) (entities.Page[entities.MemberTeam], error) {
	where, args := buildMemberFilter(cond)

	var b strings.Builder
	b.WriteString(memberTeamColumns)
	b.WriteString(memberFrom)
	b.WriteString(where)
	b.WriteString(" ORDER BY m.id LIMIT $")
	b.WriteString(strconv.Itoa(len(args) + 1))
	b.WriteString(" OFFSET $")
	b.WriteString(strconv.Itoa(len(args) + 2))

	contentArgs := append(append([]any{}, args...), req.Size, req.Offset())
	content, err := p.queryMemberTeams(ctx, b.String(), contentArgs...)
	if err != nil {
		return entities.Page[entities.MemberTeam]{}, err
	}

	return entities.NewPage(content, req, func() (int64, error) {
		var total int64
		if err := p.db.QueryRow(ctx, memberTeamCountColumns+memberFrom+where, args...).Scan(&total); err != nil {
			return 0, fmt.Errorf("count members: %w", err)
		}
		return total, nil
	})
}

// BulkAgePlus increments the age of every member at least age years old.
func (p *Postgres) BulkAgePlus(ctx context.Context, age int) (int64, error) {
	tag, err := p.db.Exec(ctx, bulkAgePlusQuery, age, auditor.FromContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("bulk age plus: %w", err)
	}
	p.log.Infow("member ages bumped", "age_goe", age, "affected", tag.RowsAffected())
	return tag.RowsAffected(), nil
}

func buildMemberFilter(cond entities.MemberSearch) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)
	idx := 1
	if cond.Username != "" {
		conditions = append(conditions, "m.name = $"+strconv.Itoa(idx))
		args = append(args, cond.Username)
		idx++
	}
	if cond.TeamName != "" {
		conditions = append(conditions, "t.name = $"+strconv.Itoa(idx))
		args = append(args, cond.TeamName)
		idx++
	}
	if cond.AgeGoe != nil {
		conditions = append(conditions, "m.age >= $"+strconv.Itoa(idx))
		args = append(args, *cond.AgeGoe)
		idx++
	}
	if cond.AgeLoe != nil {
		conditions = append(conditions, "m.age <= $"+strconv.Itoa(idx))
		args = append(args, *cond.AgeLoe)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (p *Postgres) queryMembers(ctx context.Context, query string, args ...any) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

func (p *Postgres) queryMemberTeams(ctx context.Context, query string, args ...any) ([]entities.MemberTeam, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		p.log.Errorw("failed to search members", "error", err)
		return nil, fmt.Errorf("search members: %w", err)
	}
	defer rows.Close()

	res := make([]entities.MemberTeam, 0)
	for rows.Next() {
		var mt entities.MemberTeam
		if err := rows.Scan(&mt.MemberID, &mt.Username, &mt.Age, &mt.TeamID, &mt.TeamName); err != nil {
			return nil, fmt.Errorf("scan member team: %w", err)
		}
		res = append(res, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate member teams: %w", err)
	}
	return res, nil
}

func scanMember(row pgx.Row) (entities.Member, error) {
	var m entities.Member
	err := row.Scan(
		&m.ID, &m.Name, &m.Age,
		&m.Address.City, &m.Address.Street, &m.Address.Zipcode,
		&m.TeamID, &m.TeamName,
		&m.CreatedAt, &m.UpdatedAt, &m.CreatedBy, &m.UpdatedBy,
	)
	return m, err
}
