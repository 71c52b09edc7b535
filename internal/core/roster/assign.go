package roster

import (
	"fmt"

	"github.com/example/careledger/internal/models"
)

// Assign links the senior to the caregiver, both resolved by identifier.
// One caregiver may be linked from many seniors; a senior links to at
// most one caregiver. Fails with ErrAlreadyAssigned if the senior's
// current reference is already the same person as the target caregiver.
// Returns the committed senior value.
func (s *Store) Assign(seniorID, caregiverID int) (models.Senior, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sr, i := s.seniorByID(seniorID)
	if i < 0 {
		return models.Senior{}, fmt.Errorf("%w: %d", ErrNoSuchSenior, seniorID)
	}
	c, j := s.caregiverByID(caregiverID)
	if j < 0 {
		return models.Senior{}, fmt.Errorf("%w: %d", ErrNoSuchCaregiver, caregiverID)
	}
	if sr.Caregiver != nil && sr.Caregiver.Same(c) {
		return models.Senior{}, fmt.Errorf("senior %d: %w", seniorID, ErrAlreadyAssigned)
	}

	cp := c
	edited := sr.WithCaregiver(&cp)
	s.seniors.set(i, edited)
	return edited, nil
}

// Unassign clears the senior's caregiver reference. Fails with
// ErrNotAssigned unless the current reference carries the given
// caregiver identifier. Returns the committed senior value.
func (s *Store) Unassign(seniorID, caregiverID int) (models.Senior, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sr, i := s.seniorByID(seniorID)
	if i < 0 {
		return models.Senior{}, fmt.Errorf("%w: %d", ErrNoSuchSenior, seniorID)
	}
	if sr.Caregiver == nil || sr.Caregiver.ID != caregiverID {
		return models.Senior{}, fmt.Errorf("senior %d: %w", seniorID, ErrNotAssigned)
	}

	edited := sr.WithCaregiver(nil)
	s.seniors.set(i, edited)
	return edited, nil
}

// SeniorsOfCaregiver returns the seniors whose caregiver reference
// carries the given identifier. The inverse relationship is computed by
// linear scan on demand; caregivers do not track their seniors.
func (s *Store) SeniorsOfCaregiver(caregiverID int) []models.Senior {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Senior
	for i := 0; i < s.seniors.Len(); i++ {
		if sr := s.seniors.at(i); sr.Caregiver != nil && sr.Caregiver.ID == caregiverID {
			out = append(out, sr)
		}
	}
	return out
}
