package entities

import "time"

// Auditable carries creation and modification metadata shared by persisted entities.
type Auditable struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}

// Touch stamps creation fields on first call and modification fields on every call.
func (a *Auditable) Touch(by string, now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
		a.CreatedBy = by
	}
	a.UpdatedAt = now
	a.UpdatedBy = by
}

// Address is an embedded value object.
type Address struct {
	City    string
	Street  string
	Zipcode string
}
