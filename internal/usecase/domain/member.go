package domain

import (
	"context"
	"fmt"
	"math"
	"strings"

	"jpashop/internal/entities"
)

// JoinMember registers a member whose name is not yet taken.
func (u *Usecase) JoinMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	member.Name = strings.TrimSpace(member.Name)
	if member.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if member.Age < 0 {
		return nil, fmt.Errorf("%w: age must not be negative", entities.ErrInvalidArgument)
	}

	existing, err := u.repo.FindMembersByName(ctx, member.Name)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		u.log.Infow("duplicate member rejected", "name", member.Name)
		return nil, entities.ErrMemberExists
	}

	return u.repo.SaveMember(ctx, member)
}

// Member returns a member by id.
func (u *Usecase) Member(ctx context.Context, id int64) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: member id must be positive", entities.ErrInvalidArgument)
	}
	return u.repo.GetMember(ctx, id)
}

// UpdateMember renames a member and optionally changes the age.
func (u *Usecase) UpdateMember(ctx context.Context, id int64, upd entities.MemberUpdate) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	upd.Name = strings.TrimSpace(upd.Name)
	switch {
	case id <= 0:
		return nil, fmt.Errorf("%w: member id must be positive", entities.ErrInvalidArgument)
	case upd.Name == "":
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	case upd.Age != nil && *upd.Age < 0:
		return nil, fmt.Errorf("%w: age must not be negative", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateMember(ctx, id, upd)
}

// Members returns one page of members matching cond.
func (u *Usecase) Members(ctx context.Context, cond entities.MemberSearch, req entities.PageRequest) (entities.Page[entities.MemberTeam], error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateMemberSearch(cond); err != nil {
		return entities.Page[entities.MemberTeam]{}, err
	}
	req = req.Normalize(entities.DefaultPageSize, entities.MaxPageSize)
	if req.Page > math.MaxInt/req.Size {
		return entities.Page[entities.MemberTeam]{}, fmt.Errorf("%w: page %d is out of range", entities.ErrInvalidArgument, req.Page)
	}
	return u.repo.SearchMembersPage(ctx, cond, req)
}

// SearchMembers returns every member matching cond.
func (u *Usecase) SearchMembers(ctx context.Context, cond entities.MemberSearch) ([]entities.MemberTeam, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateMemberSearch(cond); err != nil {
		return nil, err
	}
	return u.repo.SearchMembers(ctx, cond)
}

// BulkAgePlus adds one year to every member at least age years old.
func (u *Usecase) BulkAgePlus(ctx context.Context, age int) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if age < 0 {
		return 0, fmt.Errorf("%w: age must not be negative", entities.ErrInvalidArgument)
	}
	return u.repo.BulkAgePlus(ctx, age)
}

func validateMemberSearch(cond entities.MemberSearch) error {
	if cond.AgeGoe != nil && *cond.AgeGoe < 0 {
		return fmt.Errorf("%w: age_goe must not be negative", entities.ErrInvalidArgument)
	}
	if cond.AgeLoe != nil && *cond.AgeLoe < 0 {
		return fmt.Errorf("%w: age_loe must not be negative", entities.ErrInvalidArgument)
	}
	if cond.AgeGoe != nil && cond.AgeLoe != nil && *cond.AgeGoe > *cond.AgeLoe {
		return fmt.Errorf("%w: age_goe must not exceed age_loe", entities.ErrInvalidArgument)
	}
	return nil
}
