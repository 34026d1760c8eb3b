package entities

// Member is a shop customer.
type Member struct {
	ID       int64
	Name     string
	Age      int
	Address  Address
	TeamID   *int64
	TeamName string
	Auditable
}

// MemberUpdate holds editable member fields.
type MemberUpdate struct {
	Name string
	Age  *int
}

// MemberTeam is a flat member projection joined with its team.
type MemberTeam struct {
	MemberID int64
	Username string
	Age      int
	TeamID   *int64
	TeamName *string
}

// MemberSearch filters members; unset fields add no predicate.
type MemberSearch struct {
	Username string
	TeamName string
	AgeGoe   *int
	AgeLoe   *int
}

// Matches reports whether m satisfies every set predicate.
func (s MemberSearch) Matches(m MemberTeam) bool {
	if s.Username != "" && m.Username != s.Username {
		return false
	}
	if s.TeamName != "" && (m.TeamName == nil || *m.TeamName != s.TeamName) {
		return false
	}
	if s.AgeGoe != nil && m.Age < *s.AgeGoe {
		return false
	}
	if s.AgeLoe != nil && m.Age > *s.AgeLoe {
		return false
	}
	return true
}
