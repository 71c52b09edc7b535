package roster

import (
	"fmt"

	"github.com/example/careledger/internal/models"
)

// UnpinScope selects which categories an unpin operation clears.
type UnpinScope string

// Unpin scope constants
const (
	ScopeSeniors    UnpinScope = "seniors"
	ScopeCaregivers UnpinScope = "caregivers"
	ScopeBoth       UnpinScope = "both"
)

// ValidScope reports whether s is a recognized unpin scope.
func ValidScope(s UnpinScope) bool {
	return s == ScopeSeniors || s == ScopeCaregivers || s == ScopeBoth
}

// PinSenior pins the senior with the given identifier. At most one senior
// is pinned at a time: every other pinned senior is unpinned first. The
// pin state is derived from the entity flags alone; there is no separate
// pinned-id variable to desync. Pinning an already-pinned senior is an
// idempotent success and reports already=true. Caregiver pin state is
// independent and untouched.
func (s *Store) PinSenior(id int) (sr models.Senior, already bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sr, i := s.seniorByID(id)
	if i < 0 {
		return models.Senior{}, false, fmt.Errorf("%w: %d", ErrNoSuchSenior, id)
	}
	if sr.Pinned {
		return sr, true, nil
	}
	for j := 0; j < s.seniors.Len(); j++ {
		if other := s.seniors.at(j); other.Pinned {
			s.seniors.set(j, other.WithPinned(false))
		}
	}
	pinned := sr.WithPinned(true)
	s.seniors.set(i, pinned)
	return pinned, false, nil
}

// PinCaregiver pins the caregiver with the given identifier, with the
// same semantics as PinSenior.
func (s *Store) PinCaregiver(id int) (c models.Caregiver, already bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, i := s.caregiverByID(id)
	if i < 0 {
		return models.Caregiver{}, false, fmt.Errorf("%w: %d", ErrNoSuchCaregiver, id)
	}
	if c.Pinned {
		return c, true, nil
	}
	for j := 0; j < s.caregivers.Len(); j++ {
		if other := s.caregivers.at(j); other.Pinned {
			s.caregivers.set(j, other.WithPinned(false))
		}
	}
	pinned := c.WithPinned(true)
	s.caregivers.set(i, pinned)
	return pinned, false, nil
}

// Unpin clears the pinned flag on every pinned entry within scope and
// returns how many were cleared. Fails with ErrNothingPinned if the
// scope held no pinned entry; an unpin that does nothing is an error,
// not a silent success.
func (s *Store) Unpin(scope UnpinScope) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := 0
	if scope == ScopeSeniors || scope == ScopeBoth {
		for i := 0; i < s.seniors.Len(); i++ {
			if sr := s.seniors.at(i); sr.Pinned {
				s.seniors.set(i, sr.WithPinned(false))
				cleared++
			}
		}
	}
	if scope == ScopeCaregivers || scope == ScopeBoth {
		for i := 0; i < s.caregivers.Len(); i++ {
			if c := s.caregivers.at(i); c.Pinned {
				s.caregivers.set(i, c.WithPinned(false))
				cleared++
			}
		}
	}
	if cleared == 0 {
		return 0, fmt.Errorf("unpin %s: %w", scope, ErrNothingPinned)
	}
	return cleared, nil
}
