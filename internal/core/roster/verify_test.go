package roster

import (
	"strings"
	"testing"

	"github.com/example/careledger/internal/models"
)

func TestVerifyInvariantsCleanData(t *testing.T) {
	s := seedStore(t)
	problems := VerifyInvariants(s.Seniors(), s.Caregivers())
	if len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
}

func TestVerifyInvariantsFindsViolations(t *testing.T) {
	ghost := caregiver(9, "Ghost", "98888888")
	seniors := []models.Senior{
		func() models.Senior {
			sr := senior(1, "Lim Ah Kow", "91234567")
			sr.Caregiver = &ghost
			return sr.WithPinned(true)
		}(),
		senior(2, "Tan Bee Leng", "90000002").WithPinned(true), // shares caregiver phone
	}
	caregivers := []models.Caregiver{
		caregiver(1, "Mei Hui", "90000002"),
	}

	problems := VerifyInvariants(seniors, caregivers)
	joined := strings.Join(problems, "\n")
	for _, want := range []string{
		"phone 90000002",
		"caregiver 9 which does not exist",
		"2 seniors are pinned",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing problem %q in:\n%s", want, joined)
		}
	}
}

func TestVerifyInvariantsStaleCopy(t *testing.T) {
	live := caregiver(1, "Mei Hui", "90000009") // phone changed
	stale := caregiver(1, "Mei Hui", "90000002")
	sr := senior(1, "Lim Ah Kow", "91234567")
	sr.Caregiver = &stale

	problems := VerifyInvariants([]models.Senior{sr}, []models.Caregiver{live})
	joined := strings.Join(problems, "\n")
	if !strings.Contains(joined, "stale copy") {
		t.Errorf("stale caregiver copy not reported:\n%s", joined)
	}
}
