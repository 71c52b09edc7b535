package roster

import (
	"errors"
	"testing"

	"github.com/example/careledger/internal/models"
)

// seedStore builds a store with one caregiver (id 1) and two seniors
// (ids 1, 2), senior 1 assigned to the caregiver.
func seedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()

	cg := caregiver(s.NextCaregiverID(), "Mei Hui", "90000002")
	if err := s.AddCaregiver(cg); err != nil {
		t.Fatalf("seed caregiver: %v", err)
	}
	sr1 := senior(s.NextSeniorID(), "Lim Ah Kow", "91234567")
	sr1.Caregiver = &cg
	if err := s.AddSenior(sr1); err != nil {
		t.Fatalf("seed senior 1: %v", err)
	}
	sr2 := senior(s.NextSeniorID(), "Tan Bee Leng", "92222222")
	if err := s.AddSenior(sr2); err != nil {
		t.Fatalf("seed senior 2: %v", err)
	}
	return s
}

func TestStoreAddPropagatesDuplicates(t *testing.T) {
	s := seedStore(t)

	err := s.AddSenior(senior(9, "Lim Ah Kow", "91234567"))
	if !errors.Is(err, ErrDuplicateEntity) {
		t.Fatalf("expected ErrDuplicateEntity, got %v", err)
	}
	if len(s.Seniors()) != 2 {
		t.Errorf("failed add mutated the store")
	}
}

func TestStorePhoneInUseSpansBothCategories(t *testing.T) {
	s := seedStore(t)

	if !s.PhoneInUse("91234567") {
		t.Error("senior phone not reported in use")
	}
	if !s.PhoneInUse("90000002") {
		t.Error("caregiver phone not reported in use")
	}
	if s.PhoneInUse("99999999") {
		t.Error("unknown phone reported in use")
	}
}

func TestStoreRemoveCaregiverCascades(t *testing.T) {
	s := seedStore(t)
	cg, _ := s.CaregiverWithID(1)

	if err := s.RemoveCaregiver(cg); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if _, ok := s.CaregiverWithID(1); ok {
		t.Error("caregiver still resolvable after delete")
	}
	sr, _ := s.SeniorWithID(1)
	if sr.Caregiver != nil {
		t.Errorf("senior still references deleted caregiver %d", sr.Caregiver.ID)
	}
}

func TestStoreRemoveCaregiverAbsentMutatesNothing(t *testing.T) {
	s := seedStore(t)

	err := s.RemoveCaregiver(caregiver(9, "Ghost", "98888888"))
	if !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
	sr, _ := s.SeniorWithID(1)
	if sr.Caregiver == nil {
		t.Error("failed remove cleared an assignment")
	}
}

func TestStoreSetCaregiverRebindsSeniors(t *testing.T) {
	s := seedStore(t)
	cg, _ := s.CaregiverWithID(1)

	edited := cg
	edited.Phone = "90000009"
	if err := s.SetCaregiver(cg, edited); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	sr, _ := s.SeniorWithID(1)
	if sr.Caregiver == nil {
		t.Fatal("assignment lost during caregiver edit")
	}
	if sr.Caregiver.Phone != "90000009" {
		t.Errorf("senior holds stale caregiver phone %s", sr.Caregiver.Phone)
	}

	// Unassigned seniors are untouched.
	sr2, _ := s.SeniorWithID(2)
	if sr2.Caregiver != nil {
		t.Error("rebind touched an unassigned senior")
	}
}

func TestStoreAssign(t *testing.T) {
	s := seedStore(t)

	// Senior 2 is unassigned; assigning works.
	sr, err := s.Assign(2, 1)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if sr.Caregiver == nil || sr.Caregiver.ID != 1 {
		t.Fatalf("assignment not committed: %+v", sr.Caregiver)
	}

	// Assigning again is rejected.
	if _, err := s.Assign(2, 1); !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
	}

	if _, err := s.Assign(99, 1); !errors.Is(err, ErrNoSuchSenior) {
		t.Fatalf("expected ErrNoSuchSenior, got %v", err)
	}
	if _, err := s.Assign(2, 99); !errors.Is(err, ErrNoSuchCaregiver) {
		t.Fatalf("expected ErrNoSuchCaregiver, got %v", err)
	}
}

func TestStoreUnassign(t *testing.T) {
	s := seedStore(t)

	// Senior 2 has no caregiver.
	if _, err := s.Unassign(2, 1); !errors.Is(err, ErrNotAssigned) {
		t.Fatalf("expected ErrNotAssigned for unassigned senior, got %v", err)
	}
	// Senior 1 is assigned to caregiver 1, not 5.
	if _, err := s.Unassign(1, 5); !errors.Is(err, ErrNotAssigned) {
		t.Fatalf("expected ErrNotAssigned for wrong caregiver, got %v", err)
	}

	sr, err := s.Unassign(1, 1)
	if err != nil {
		t.Fatalf("unassign failed: %v", err)
	}
	if sr.Caregiver != nil {
		t.Error("reference not cleared")
	}
}

func TestStoreSeniorsOfCaregiver(t *testing.T) {
	s := seedStore(t)
	if _, err := s.Assign(2, 1); err != nil {
		t.Fatalf("assign: %v", err)
	}

	assigned := s.SeniorsOfCaregiver(1)
	if len(assigned) != 2 {
		t.Fatalf("expected 2 assigned seniors, got %d", len(assigned))
	}
	if s.SeniorsOfCaregiver(42) != nil {
		t.Error("expected no seniors for unknown caregiver")
	}
}

func TestStorePinExclusivity(t *testing.T) {
	s := seedStore(t)

	if _, already, err := s.PinSenior(1); err != nil || already {
		t.Fatalf("pin senior 1: already=%v err=%v", already, err)
	}
	if _, already, err := s.PinSenior(2); err != nil || already {
		t.Fatalf("pin senior 2: already=%v err=%v", already, err)
	}

	// Exactly senior 2 is pinned now.
	pinned := 0
	for _, sr := range s.Seniors() {
		if sr.Pinned {
			pinned++
			if sr.ID != 2 {
				t.Errorf("wrong senior pinned: %d", sr.ID)
			}
		}
	}
	if pinned != 1 {
		t.Fatalf("expected exactly one pinned senior, got %d", pinned)
	}
}

func TestStorePinIsIdempotent(t *testing.T) {
	s := seedStore(t)

	if _, _, err := s.PinSenior(1); err != nil {
		t.Fatalf("pin: %v", err)
	}
	_, already, err := s.PinSenior(1)
	if err != nil {
		t.Fatalf("second pin: %v", err)
	}
	if !already {
		t.Error("second pin did not report already pinned")
	}
}

func TestStorePinCategoriesAreIndependent(t *testing.T) {
	s := seedStore(t)

	if _, _, err := s.PinCaregiver(1); err != nil {
		t.Fatalf("pin caregiver: %v", err)
	}
	if _, _, err := s.PinSenior(1); err != nil {
		t.Fatalf("pin senior: %v", err)
	}

	cg, _ := s.CaregiverWithID(1)
	if !cg.Pinned {
		t.Error("senior pin cleared caregiver pin state")
	}
}

func TestStorePinUnknownID(t *testing.T) {
	s := seedStore(t)

	if _, _, err := s.PinSenior(99); !errors.Is(err, ErrNoSuchSenior) {
		t.Fatalf("expected ErrNoSuchSenior, got %v", err)
	}
	if _, _, err := s.PinCaregiver(99); !errors.Is(err, ErrNoSuchCaregiver) {
		t.Fatalf("expected ErrNoSuchCaregiver, got %v", err)
	}
}

func TestStoreUnpinScopes(t *testing.T) {
	s := seedStore(t)
	if _, _, err := s.PinSenior(1); err != nil {
		t.Fatalf("pin senior: %v", err)
	}
	if _, _, err := s.PinCaregiver(1); err != nil {
		t.Fatalf("pin caregiver: %v", err)
	}

	cleared, err := s.Unpin(ScopeSeniors)
	if err != nil {
		t.Fatalf("unpin seniors: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("expected 1 cleared, got %d", cleared)
	}
	cg, _ := s.CaregiverWithID(1)
	if !cg.Pinned {
		t.Error("seniors-scoped unpin cleared a caregiver pin")
	}

	// Repeating within the now-empty scope is an error, not a no-op.
	if _, err := s.Unpin(ScopeSeniors); !errors.Is(err, ErrNothingPinned) {
		t.Fatalf("expected ErrNothingPinned, got %v", err)
	}

	cleared, err = s.Unpin(ScopeBoth)
	if err != nil {
		t.Fatalf("unpin both: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("expected caregiver pin cleared, got %d", cleared)
	}
}

func TestStoreResetDataRecomputesAllocators(t *testing.T) {
	s := NewStore()
	s.ResetData(
		[]models.Senior{senior(7, "Lim Ah Kow", "91234567")},
		[]models.Caregiver{caregiver(4, "Mei Hui", "90000002")},
	)

	if got := s.NextSeniorID(); got != 8 {
		t.Errorf("next senior id = %d, want 8", got)
	}
	if got := s.NextCaregiverID(); got != 5 {
		t.Errorf("next caregiver id = %d, want 5", got)
	}
}

func TestStoreIdentifiersNeverReused(t *testing.T) {
	s := seedStore(t)

	sr, _ := s.SeniorWithID(2)
	if err := s.RemoveSenior(sr); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := s.NextSeniorID(); got <= 2 {
		t.Errorf("id %d reused after deletion", got)
	}
}

func TestStoreObserveHighWater(t *testing.T) {
	s := NewStore()
	s.ResetData(
		[]models.Senior{senior(3, "Lim Ah Kow", "91234567")},
		nil,
	)
	s.ObserveHighWater(10, 6)

	if got := s.NextSeniorID(); got != 11 {
		t.Errorf("next senior id = %d, want 11 (persisted mark wins over data max)", got)
	}
	if got := s.NextCaregiverID(); got != 7 {
		t.Errorf("next caregiver id = %d, want 7", got)
	}
}
