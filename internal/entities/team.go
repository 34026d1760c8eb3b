package entities

// Team groups members under a unique name.
type Team struct {
	ID      int64
	Name    string
	Members []Member
	Auditable
}
