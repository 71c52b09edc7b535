package roster

// Sequence produces monotonically increasing integer identifiers for one
// category. Allocation never fails and is advisory only: the caller must
// use each returned value exactly once. The counter never decreases, so
// identifiers are never reused after deletion.
type Sequence struct {
	last int
}

// Next reserves and returns the next identifier.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Observe raises the counter to at least id. Called once per entity after
// a bulk load so that fresh identifiers never collide with loaded ones.
func (s *Sequence) Observe(id int) {
	if id > s.last {
		s.last = id
	}
}

// High returns the highest identifier observed or allocated so far.
func (s *Sequence) High() int {
	return s.last
}
