// Package models contains domain types for careledger entities.
// Persistence lives behind the repository interfaces in ports/secondary.
package models

// Person holds the fields shared by both tracked categories.
// Values are immutable by convention: edits build a new value carrying
// the original identifier rather than mutating in place.
type Person struct {
	Name    string
	Phone   string
	Address string
	Note    string
	Pinned  bool
}

// Same reports whether two persons are the same entity for duplicate
// detection. Only name and phone participate; address and note do not.
func (p Person) Same(other Person) bool {
	return p.Name == other.Name && p.Phone == other.Phone
}
