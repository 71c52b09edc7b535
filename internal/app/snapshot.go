package app

import (
	"fmt"

	"github.com/example/careledger/internal/core/roster"
	"github.com/example/careledger/internal/models"
	"github.com/example/careledger/internal/ports/secondary"
)

// encodeSnapshot flattens the store state into persistence records. The
// caregiver reference is written as the caregiver's identifier plus the
// legacy (name, phone) composite key, so older builds can still resolve
// the assignment.
func encodeSnapshot(store *roster.Store) *secondary.Snapshot {
	seniors := store.Seniors()
	caregivers := store.Caregivers()

	snap := &secondary.Snapshot{
		Seniors:    make([]secondary.SeniorRecord, 0, len(seniors)),
		Caregivers: make([]secondary.CaregiverRecord, 0, len(caregivers)),
	}

	for _, sr := range seniors {
		rec := secondary.SeniorRecord{
			ID:      sr.ID,
			Name:    sr.Name,
			Phone:   sr.Phone,
			Address: sr.Address,
			Note:    sr.Note,
			Pinned:  sr.Pinned,
			Risk:    sr.Risk,
		}
		if sr.Caregiver != nil {
			id := sr.Caregiver.ID
			rec.CaregiverID = &id
			rec.CaregiverName = sr.Caregiver.Name
			rec.CaregiverPhone = sr.Caregiver.Phone
		}
		snap.Seniors = append(snap.Seniors, rec)
	}
	for _, c := range caregivers {
		snap.Caregivers = append(snap.Caregivers, secondary.CaregiverRecord{
			ID:      c.ID,
			Name:    c.Name,
			Phone:   c.Phone,
			Address: c.Address,
			Note:    c.Note,
			Pinned:  c.Pinned,
		})
	}

	seniorHigh := store.SeniorHighWater()
	caregiverHigh := store.CaregiverHighWater()
	snap.SeniorHigh = &seniorHigh
	snap.CaregiverHigh = &caregiverHigh
	return snap
}

// decodeSnapshot rebuilds domain values from persistence records.
// Missing required fields, an invalid risk discriminator, or an
// unresolvable caregiver reference make the snapshot corrupt: the load
// attempt fails and nothing is applied.
func decodeSnapshot(snap *secondary.Snapshot) ([]models.Senior, []models.Caregiver, error) {
	caregivers := make([]models.Caregiver, 0, len(snap.Caregivers))
	for i, rec := range snap.Caregivers {
		if rec.ID <= 0 || rec.Name == "" || rec.Phone == "" {
			return nil, nil, fmt.Errorf("caregiver record %d is missing a required field: %w", i, roster.ErrCorruptState)
		}
		caregivers = append(caregivers, models.Caregiver{
			ID: rec.ID,
			Person: models.Person{
				Name:    rec.Name,
				Phone:   rec.Phone,
				Address: rec.Address,
				Note:    rec.Note,
				Pinned:  rec.Pinned,
			},
		})
	}

	seniors := make([]models.Senior, 0, len(snap.Seniors))
	for i, rec := range snap.Seniors {
		if rec.ID <= 0 || rec.Name == "" || rec.Phone == "" {
			return nil, nil, fmt.Errorf("senior record %d is missing a required field: %w", i, roster.ErrCorruptState)
		}
		if !models.ValidRisk(rec.Risk) {
			return nil, nil, fmt.Errorf("senior record %d has invalid risk %q: %w", i, rec.Risk, roster.ErrCorruptState)
		}

		ref, err := resolveCaregiverRef(rec, caregivers)
		if err != nil {
			return nil, nil, err
		}

		seniors = append(seniors, models.Senior{
			ID: rec.ID,
			Person: models.Person{
				Name:    rec.Name,
				Phone:   rec.Phone,
				Address: rec.Address,
				Note:    rec.Note,
				Pinned:  rec.Pinned,
			},
			Risk:      rec.Risk,
			Caregiver: ref,
		})
	}

	return seniors, caregivers, nil
}

// resolveCaregiverRef resolves a persisted assignment against the loaded
// caregiver collection: by identifier when present, by the legacy
// (name, phone) composite key otherwise.
func resolveCaregiverRef(rec secondary.SeniorRecord, caregivers []models.Caregiver) (*models.Caregiver, error) {
	if rec.CaregiverID != nil {
		for _, c := range caregivers {
			if c.ID == *rec.CaregiverID {
				cp := c
				return &cp, nil
			}
		}
		return nil, fmt.Errorf("senior %d references caregiver %d which is not in the snapshot: %w",
			rec.ID, *rec.CaregiverID, roster.ErrCorruptState)
	}
	if rec.CaregiverName == "" && rec.CaregiverPhone == "" {
		return nil, nil
	}
	for _, c := range caregivers {
		if c.Name == rec.CaregiverName && c.Phone == rec.CaregiverPhone {
			cp := c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("senior %d references caregiver (%s, %s) which is not in the snapshot: %w",
		rec.ID, rec.CaregiverName, rec.CaregiverPhone, roster.ErrCorruptState)
}
