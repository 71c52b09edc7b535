// Package app implements the primary ports: the operation layer that
// runs ordered validation against the store, commits mutations, and
// persists a snapshot after every committed operation.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/careledger/internal/core/roster"
	"github.com/example/careledger/internal/models"
	"github.com/example/careledger/internal/ports/primary"
	"github.com/example/careledger/internal/ports/secondary"
)

// RosterServiceImpl implements the RosterService interface over the
// in-memory store and a snapshot store.
type RosterServiceImpl struct {
	store     *roster.Store
	snapshots secondary.SnapshotStore
}

// NewRosterService creates a new RosterService with injected dependencies.
func NewRosterService(store *roster.Store, snapshots secondary.SnapshotStore) *RosterServiceImpl {
	return &RosterServiceImpl{
		store:     store,
		snapshots: snapshots,
	}
}

// AddSenior validates and inserts a new senior. Validation order: required
// fields, risk rank, phone uniqueness across both categories, caregiver
// resolution; only then is an identifier allocated and the insert committed.
func (s *RosterServiceImpl) AddSenior(ctx context.Context, req primary.AddSeniorRequest) (models.Senior, error) {
	if req.Name == "" || req.Phone == "" {
		return models.Senior{}, fmt.Errorf("senior needs a name and a phone number")
	}
	if !models.ValidRisk(req.Risk) {
		return models.Senior{}, fmt.Errorf("invalid risk level %q (expected HR, MR or LR)", req.Risk)
	}
	if s.store.PhoneInUse(req.Phone) {
		return models.Senior{}, fmt.Errorf("phone %s is already in use: %w", req.Phone, roster.ErrDuplicateEntity)
	}

	var ref *models.Caregiver
	if req.CaregiverID != 0 {
		c, ok := s.store.CaregiverWithID(req.CaregiverID)
		if !ok {
			return models.Senior{}, fmt.Errorf("%w: %d", roster.ErrNoSuchCaregiver, req.CaregiverID)
		}
		ref = &c
	}

	sr := models.Senior{
		ID: s.store.NextSeniorID(),
		Person: models.Person{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
			Note:    req.Note,
		},
		Risk:      req.Risk,
		Caregiver: ref,
	}
	if err := s.store.AddSenior(sr); err != nil {
		return models.Senior{}, err
	}
	if err := s.save(ctx); err != nil {
		return models.Senior{}, err
	}
	return sr, nil
}

// EditSenior replaces a senior with an edited copy carrying the same
// identifier and caregiver reference. Empty request fields keep the
// current value.
func (s *RosterServiceImpl) EditSenior(ctx context.Context, req primary.EditSeniorRequest) (models.Senior, error) {
	target, ok := s.store.SeniorWithID(req.SeniorID)
	if !ok {
		return models.Senior{}, fmt.Errorf("%w: %d", roster.ErrNoSuchSenior, req.SeniorID)
	}

	edited := target
	if req.Name != "" {
		edited.Name = req.Name
	}
	if req.Phone != "" {
		edited.Phone = req.Phone
	}
	if req.Address != "" {
		edited.Address = req.Address
	}
	if req.Note != "" {
		edited.Note = req.Note
	}
	if req.Risk != "" {
		if !models.ValidRisk(req.Risk) {
			return models.Senior{}, fmt.Errorf("invalid risk level %q (expected HR, MR or LR)", req.Risk)
		}
		edited.Risk = req.Risk
	}

	if edited.Phone != target.Phone && s.store.PhoneInUse(edited.Phone) {
		return models.Senior{}, fmt.Errorf("phone %s is already in use: %w", edited.Phone, roster.ErrDuplicateEntity)
	}
	if err := s.store.SetSenior(target, edited); err != nil {
		return models.Senior{}, err
	}
	if err := s.save(ctx); err != nil {
		return models.Senior{}, err
	}
	return edited, nil
}

// ListSeniors lists seniors in insertion order, optionally filtered by a
// case-insensitive name keyword and a risk rank.
func (s *RosterServiceImpl) ListSeniors(ctx context.Context, filters primary.SeniorFilters) ([]models.Senior, error) {
	keyword := strings.ToLower(filters.Keyword)
	var out []models.Senior
	for _, sr := range s.store.Seniors() {
		if keyword != "" && !strings.Contains(strings.ToLower(sr.Name), keyword) {
			continue
		}
		if filters.Risk != "" && sr.Risk != filters.Risk {
			continue
		}
		out = append(out, sr)
	}
	return out, nil
}

// AddCaregiver validates and inserts a new caregiver.
func (s *RosterServiceImpl) AddCaregiver(ctx context.Context, req primary.AddCaregiverRequest) (models.Caregiver, error) {
	if req.Name == "" || req.Phone == "" {
		return models.Caregiver{}, fmt.Errorf("caregiver needs a name and a phone number")
	}
	if s.store.PhoneInUse(req.Phone) {
		return models.Caregiver{}, fmt.Errorf("phone %s is already in use: %w", req.Phone, roster.ErrDuplicateEntity)
	}

	c := models.Caregiver{
		ID: s.store.NextCaregiverID(),
		Person: models.Person{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
			Note:    req.Note,
		},
	}
	if err := s.store.AddCaregiver(c); err != nil {
		return models.Caregiver{}, err
	}
	if err := s.save(ctx); err != nil {
		return models.Caregiver{}, err
	}
	return c, nil
}

// EditCaregiver replaces a caregiver with an edited copy. The store
// rebinds every assigned senior to the new caregiver value as part of
// the same operation, so no senior serializes a stale copy.
func (s *RosterServiceImpl) EditCaregiver(ctx context.Context, req primary.EditCaregiverRequest) (models.Caregiver, error) {
	target, ok := s.store.CaregiverWithID(req.CaregiverID)
	if !ok {
		return models.Caregiver{}, fmt.Errorf("%w: %d", roster.ErrNoSuchCaregiver, req.CaregiverID)
	}

	edited := target
	if req.Name != "" {
		edited.Name = req.Name
	}
	if req.Phone != "" {
		edited.Phone = req.Phone
	}
	if req.Address != "" {
		edited.Address = req.Address
	}
	if req.Note != "" {
		edited.Note = req.Note
	}

	if edited.Phone != target.Phone && s.store.PhoneInUse(edited.Phone) {
		return models.Caregiver{}, fmt.Errorf("phone %s is already in use: %w", edited.Phone, roster.ErrDuplicateEntity)
	}
	if err := s.store.SetCaregiver(target, edited); err != nil {
		return models.Caregiver{}, err
	}
	if err := s.save(ctx); err != nil {
		return models.Caregiver{}, err
	}
	return edited, nil
}

// ListCaregivers lists caregivers in insertion order, optionally filtered
// by a case-insensitive name keyword.
func (s *RosterServiceImpl) ListCaregivers(ctx context.Context, filters primary.CaregiverFilters) ([]models.Caregiver, error) {
	keyword := strings.ToLower(filters.Keyword)
	var out []models.Caregiver
	for _, c := range s.store.Caregivers() {
		if keyword != "" && !strings.Contains(strings.ToLower(c.Name), keyword) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// GetCaregiver returns a caregiver and the seniors assigned to it. The
// inverse relationship is computed by scanning the senior collection.
func (s *RosterServiceImpl) GetCaregiver(ctx context.Context, caregiverID int) (models.Caregiver, []models.Senior, error) {
	c, ok := s.store.CaregiverWithID(caregiverID)
	if !ok {
		return models.Caregiver{}, nil, fmt.Errorf("%w: %d", roster.ErrNoSuchCaregiver, caregiverID)
	}
	return c, s.store.SeniorsOfCaregiver(caregiverID), nil
}

// Delete removes the named senior and/or caregiver. A request naming
// neither fails; an identifier that does not resolve is skipped silently.
// Deleting a caregiver cascades: every senior referencing it loses the
// reference before the caregiver is removed.
func (s *RosterServiceImpl) Delete(ctx context.Context, req primary.DeleteRequest) (primary.DeleteResult, error) {
	if req.SeniorID == 0 && req.CaregiverID == 0 {
		return primary.DeleteResult{}, fmt.Errorf("delete: %w", roster.ErrNoPersonsSpecified)
	}

	var res primary.DeleteResult
	if req.SeniorID != 0 {
		if target, ok := s.store.SeniorWithID(req.SeniorID); ok {
			if err := s.store.RemoveSenior(target); err != nil {
				return res, err
			}
			res.SeniorDeleted = true
		}
	}
	if req.CaregiverID != 0 {
		if target, ok := s.store.CaregiverWithID(req.CaregiverID); ok {
			if err := s.store.RemoveCaregiver(target); err != nil {
				return res, err
			}
			res.CaregiverDeleted = true
		}
	}

	if res.SeniorDeleted || res.CaregiverDeleted {
		if err := s.save(ctx); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Assign links a senior to a caregiver.
func (s *RosterServiceImpl) Assign(ctx context.Context, seniorID, caregiverID int) (models.Senior, error) {
	sr, err := s.store.Assign(seniorID, caregiverID)
	if err != nil {
		return models.Senior{}, err
	}
	if err := s.save(ctx); err != nil {
		return models.Senior{}, err
	}
	return sr, nil
}

// Unassign clears a senior's caregiver reference.
func (s *RosterServiceImpl) Unassign(ctx context.Context, seniorID, caregiverID int) (models.Senior, error) {
	sr, err := s.store.Unassign(seniorID, caregiverID)
	if err != nil {
		return models.Senior{}, err
	}
	if err := s.save(ctx); err != nil {
		return models.Senior{}, err
	}
	return sr, nil
}

// Pin pins exactly one senior or one caregiver. Pinning an already-pinned
// target is an idempotent success; nothing is written in that case.
func (s *RosterServiceImpl) Pin(ctx context.Context, req primary.PinRequest) (primary.PinResult, error) {
	if req.SeniorID != 0 && req.CaregiverID != 0 {
		return primary.PinResult{}, fmt.Errorf("pin targets one senior or one caregiver, not both")
	}

	var res primary.PinResult
	switch {
	case req.SeniorID != 0:
		sr, already, err := s.store.PinSenior(req.SeniorID)
		if err != nil {
			return primary.PinResult{}, err
		}
		res = primary.PinResult{Already: already, Senior: &sr}
	case req.CaregiverID != 0:
		c, already, err := s.store.PinCaregiver(req.CaregiverID)
		if err != nil {
			return primary.PinResult{}, err
		}
		res = primary.PinResult{Already: already, Caregiver: &c}
	default:
		return primary.PinResult{}, fmt.Errorf("pin target not specified: %w", roster.ErrNoSuchSenior)
	}

	if !res.Already {
		if err := s.save(ctx); err != nil {
			return primary.PinResult{}, err
		}
	}
	return res, nil
}

// Unpin clears the pinned flag on every pinned entry within scope.
func (s *RosterServiceImpl) Unpin(ctx context.Context, scope roster.UnpinScope) (int, error) {
	if !roster.ValidScope(scope) {
		return 0, fmt.Errorf("invalid unpin scope %q (expected seniors, caregivers or both)", scope)
	}
	cleared, err := s.store.Unpin(scope)
	if err != nil {
		return 0, err
	}
	if err := s.save(ctx); err != nil {
		return 0, err
	}
	return cleared, nil
}

// Load replaces in-memory state from the persisted snapshot and raises
// the allocators past every identifier seen, using the persisted
// high-water marks when present and the data maxima otherwise.
func (s *RosterServiceImpl) Load(ctx context.Context) error {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	seniors, caregivers, err := decodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	s.store.ResetData(seniors, caregivers)
	var seniorHigh, caregiverHigh int
	if snap.SeniorHigh != nil {
		seniorHigh = *snap.SeniorHigh
	}
	if snap.CaregiverHigh != nil {
		caregiverHigh = *snap.CaregiverHigh
	}
	s.store.ObserveHighWater(seniorHigh, caregiverHigh)
	return nil
}

// Verify re-checks the store invariants against the current state.
func (s *RosterServiceImpl) Verify(ctx context.Context) []string {
	return roster.VerifyInvariants(s.store.Seniors(), s.store.Caregivers())
}

// save writes the full current state to the snapshot store. Called after
// every committed mutation.
func (s *RosterServiceImpl) save(ctx context.Context) error {
	if err := s.snapshots.Save(ctx, encodeSnapshot(s.store)); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	return nil
}

// Ensure RosterServiceImpl implements the interface
var _ primary.RosterService = (*RosterServiceImpl)(nil)
