package models

// Caregiver represents a caregiver entity. The numeric ID is assigned once
// at creation and survives edits; a caregiver does not track its seniors,
// the inverse relationship is computed by scanning the senior collection.
type Caregiver struct {
	ID int
	Person
}

// Same reports whether two caregivers are the same entity (name + phone).
func (c Caregiver) Same(other Caregiver) bool {
	return c.Person.Same(other.Person)
}

// WithPinned returns a copy of the caregiver with the pinned flag set.
func (c Caregiver) WithPinned(pinned bool) Caregiver {
	c.Pinned = pinned
	return c
}
