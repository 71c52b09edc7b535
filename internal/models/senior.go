package models

// Risk level constants
const (
	RiskHigh   = "HR"
	RiskMedium = "MR"
	RiskLow    = "LR"
)

// ValidRisk reports whether s is one of the three recognized risk levels.
func ValidRisk(s string) bool {
	return s == RiskHigh || s == RiskMedium || s == RiskLow
}

// Senior represents a care recipient. The numeric ID is assigned once at
// creation and survives edits. Caregiver is a denormalized copy of the
// assigned caregiver (nil when unassigned); it is kept current by the
// store's rebind pass whenever the caregiver itself is edited.
type Senior struct {
	ID int
	Person
	Risk      string
	Caregiver *Caregiver
}

// Same reports whether two seniors are the same entity (name + phone).
func (s Senior) Same(other Senior) bool {
	return s.Person.Same(other.Person)
}

// WithPinned returns a copy of the senior with the pinned flag set.
func (s Senior) WithPinned(pinned bool) Senior {
	s.Pinned = pinned
	return s
}

// WithCaregiver returns a copy of the senior referencing the given
// caregiver. Pass nil to clear the reference.
func (s Senior) WithCaregiver(c *Caregiver) Senior {
	s.Caregiver = c
	return s
}
