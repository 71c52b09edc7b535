package roster

import (
	"fmt"

	"github.com/example/careledger/internal/models"
)

// VerifyInvariants checks a pair of collections against the store
// invariants and returns one human-readable line per violation. Used by
// the doctor command against loaded snapshots; an empty result means the
// data is consistent.
func VerifyInvariants(seniors []models.Senior, caregivers []models.Caregiver) []string {
	var problems []string

	for i := range seniors {
		for j := i + 1; j < len(seniors); j++ {
			if seniors[i].Same(seniors[j]) {
				problems = append(problems, fmt.Sprintf("seniors %d and %d are the same person (%s, %s)",
					seniors[i].ID, seniors[j].ID, seniors[i].Name, seniors[i].Phone))
			}
			if seniors[i].ID == seniors[j].ID {
				problems = append(problems, fmt.Sprintf("senior id %d is used twice", seniors[i].ID))
			}
		}
	}
	for i := range caregivers {
		for j := i + 1; j < len(caregivers); j++ {
			if caregivers[i].Same(caregivers[j]) {
				problems = append(problems, fmt.Sprintf("caregivers %d and %d are the same person (%s, %s)",
					caregivers[i].ID, caregivers[j].ID, caregivers[i].Name, caregivers[i].Phone))
			}
			if caregivers[i].ID == caregivers[j].ID {
				problems = append(problems, fmt.Sprintf("caregiver id %d is used twice", caregivers[i].ID))
			}
		}
	}

	phones := make(map[string]string)
	for _, sr := range seniors {
		key := fmt.Sprintf("senior %d", sr.ID)
		if prev, ok := phones[sr.Phone]; ok {
			problems = append(problems, fmt.Sprintf("phone %s is used by both %s and %s", sr.Phone, prev, key))
		} else {
			phones[sr.Phone] = key
		}
	}
	for _, c := range caregivers {
		key := fmt.Sprintf("caregiver %d", c.ID)
		if prev, ok := phones[c.Phone]; ok {
			problems = append(problems, fmt.Sprintf("phone %s is used by both %s and %s", c.Phone, prev, key))
		} else {
			phones[c.Phone] = key
		}
	}

	byID := make(map[int]models.Caregiver, len(caregivers))
	for _, c := range caregivers {
		byID[c.ID] = c
	}
	for _, sr := range seniors {
		if sr.Caregiver == nil {
			continue
		}
		live, ok := byID[sr.Caregiver.ID]
		if !ok {
			problems = append(problems, fmt.Sprintf("senior %d references caregiver %d which does not exist", sr.ID, sr.Caregiver.ID))
			continue
		}
		if !live.Same(*sr.Caregiver) {
			problems = append(problems, fmt.Sprintf("senior %d carries a stale copy of caregiver %d", sr.ID, sr.Caregiver.ID))
		}
	}

	pinnedSeniors := 0
	for _, sr := range seniors {
		if sr.Pinned {
			pinnedSeniors++
		}
	}
	if pinnedSeniors > 1 {
		problems = append(problems, fmt.Sprintf("%d seniors are pinned; at most one is allowed", pinnedSeniors))
	}
	pinnedCaregivers := 0
	for _, c := range caregivers {
		if c.Pinned {
			pinnedCaregivers++
		}
	}
	if pinnedCaregivers > 1 {
		problems = append(problems, fmt.Sprintf("%d caregivers are pinned; at most one is allowed", pinnedCaregivers))
	}

	return problems
}
