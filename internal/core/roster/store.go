package roster

import (
	"fmt"
	"sync"

	"github.com/example/careledger/internal/models"
)

// Store is the relational person store: one identity-unique collection
// per category plus one sequence allocator per category. It is the sole
// mutation surface for roster state. A single coarse mutex spans every
// public operation because assignment, cascade, and rebind logic
// read-then-write across both collections and must never observe a
// half-updated peer collection.
type Store struct {
	mu           sync.Mutex
	seniors      *List[models.Senior]
	caregivers   *List[models.Caregiver]
	seniorSeq    Sequence
	caregiverSeq Sequence
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		seniors:    NewList[models.Senior](),
		caregivers: NewList[models.Caregiver](),
	}
}

// NextSeniorID reserves the next senior identifier.
func (s *Store) NextSeniorID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seniorSeq.Next()
}

// NextCaregiverID reserves the next caregiver identifier.
func (s *Store) NextCaregiverID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caregiverSeq.Next()
}

// AddSenior inserts a senior, returning ErrDuplicateEntity if an entry
// with the same name and phone already exists.
func (s *Store) AddSenior(sr models.Senior) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.seniors.Add(sr); err != nil {
		return fmt.Errorf("add senior %q: %w", sr.Name, err)
	}
	s.seniorSeq.Observe(sr.ID)
	return nil
}

// AddCaregiver inserts a caregiver, returning ErrDuplicateEntity if an
// entry with the same name and phone already exists.
func (s *Store) AddCaregiver(c models.Caregiver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.caregivers.Add(c); err != nil {
		return fmt.Errorf("add caregiver %q: %w", c.Name, err)
	}
	s.caregiverSeq.Observe(c.ID)
	return nil
}

// SetSenior replaces target with edited, preserving position. Identifier
// preservation is the caller's responsibility (edits carry the original ID).
func (s *Store) SetSenior(target, edited models.Senior) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.seniors.Replace(target, edited); err != nil {
		return fmt.Errorf("edit senior %q: %w", target.Name, err)
	}
	return nil
}

// SetCaregiver replaces target with edited, then unconditionally rebinds:
// every senior whose caregiver reference carries the edited caregiver's
// identifier is replaced with a copy holding the new caregiver value.
// Without the rebind pass seniors would display and serialize a stale
// snapshot of the caregiver.
func (s *Store) SetCaregiver(target, edited models.Caregiver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.caregivers.Replace(target, edited); err != nil {
		return fmt.Errorf("edit caregiver %q: %w", target.Name, err)
	}
	for i := 0; i < s.seniors.Len(); i++ {
		sr := s.seniors.at(i)
		if sr.Caregiver != nil && sr.Caregiver.ID == edited.ID {
			cp := edited
			s.seniors.set(i, sr.WithCaregiver(&cp))
		}
	}
	return nil
}

// RemoveSenior removes a senior. No cascade is required: nothing
// references seniors.
func (s *Store) RemoveSenior(target models.Senior) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.seniors.Remove(target); err != nil {
		return fmt.Errorf("remove senior %q: %w", target.Name, err)
	}
	return nil
}

// RemoveCaregiver clears the caregiver reference on every senior whose
// caregiver is the same person as target, then removes target from the
// caregiver collection. Clearing happens first so that a dangling
// reference is never externally observable; the presence check happens
// before either step so a failed remove mutates nothing.
func (s *Store) RemoveCaregiver(target models.Caregiver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.caregivers.Contains(target) {
		return fmt.Errorf("remove caregiver %q: %w", target.Name, ErrEntityNotFound)
	}
	for i := 0; i < s.seniors.Len(); i++ {
		sr := s.seniors.at(i)
		if sr.Caregiver != nil && sr.Caregiver.Same(target) {
			s.seniors.set(i, sr.WithCaregiver(nil))
		}
	}
	if err := s.caregivers.Remove(target); err != nil {
		return fmt.Errorf("remove caregiver %q: %w", target.Name, err)
	}
	return nil
}

// SeniorWithID returns the senior with the given identifier.
func (s *Store) SeniorWithID(id int) (models.Senior, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sr, i := s.seniorByID(id)
	return sr, i >= 0
}

// CaregiverWithID returns the caregiver with the given identifier.
func (s *Store) CaregiverWithID(id int) (models.Caregiver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, i := s.caregiverByID(id)
	return c, i >= 0
}

// PhoneInUse reports whether any entry in either category uses the given
// phone number. A senior and a caregiver may not share a phone.
func (s *Store) PhoneInUse(phone string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < s.seniors.Len(); i++ {
		if s.seniors.at(i).Phone == phone {
			return true
		}
	}
	for i := 0; i < s.caregivers.Len(); i++ {
		if s.caregivers.at(i).Phone == phone {
			return true
		}
	}
	return false
}

// Seniors returns a snapshot of the senior collection in insertion order.
func (s *Store) Seniors() []models.Senior {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seniors.Items()
}

// Caregivers returns a snapshot of the caregiver collection in insertion order.
func (s *Store) Caregivers() []models.Caregiver {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caregivers.Items()
}

// ResetData replaces the full store state with the given ordered lists
// and recomputes both allocators from the data so that newly created
// entities never collide with loaded ones. Counters are raised, never
// lowered.
func (s *Store) ResetData(seniors []models.Senior, caregivers []models.Caregiver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seniors = NewList(seniors...)
	s.caregivers = NewList(caregivers...)
	for _, sr := range seniors {
		s.seniorSeq.Observe(sr.ID)
	}
	for _, c := range caregivers {
		s.caregiverSeq.Observe(c.ID)
	}
}

// ObserveHighWater raises the allocators to at least the given persisted
// high-water marks. Legacy snapshots without marks pass zeros, leaving
// the data-derived counters from ResetData in effect.
func (s *Store) ObserveHighWater(seniorHigh, caregiverHigh int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seniorSeq.Observe(seniorHigh)
	s.caregiverSeq.Observe(caregiverHigh)
}

// SeniorHighWater returns the highest senior identifier allocated or observed.
func (s *Store) SeniorHighWater() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seniorSeq.High()
}

// CaregiverHighWater returns the highest caregiver identifier allocated or observed.
func (s *Store) CaregiverHighWater() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caregiverSeq.High()
}

// seniorByID scans for a senior by identifier. Caller must hold s.mu.
func (s *Store) seniorByID(id int) (models.Senior, int) {
	for i := 0; i < s.seniors.Len(); i++ {
		if sr := s.seniors.at(i); sr.ID == id {
			return sr, i
		}
	}
	return models.Senior{}, -1
}

// caregiverByID scans for a caregiver by identifier. Caller must hold s.mu.
func (s *Store) caregiverByID(id int) (models.Caregiver, int) {
	for i := 0; i < s.caregivers.Len(); i++ {
		if c := s.caregivers.at(i); c.ID == id {
			return c, i
		}
	}
	return models.Caregiver{}, -1
}
