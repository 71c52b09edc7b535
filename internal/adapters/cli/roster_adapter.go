package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/careledger/internal/core/roster"
	"github.com/example/careledger/internal/ports/primary"
)

// RosterAdapter handles the cross-category operations: delete, assign,
// unassign, pin, unpin, and the doctor report.
type RosterAdapter struct {
	service primary.RosterService
	out     io.Writer
}

// NewRosterAdapter creates a new RosterAdapter with the given service.
func NewRosterAdapter(service primary.RosterService, out io.Writer) *RosterAdapter {
	return &RosterAdapter{
		service: service,
		out:     out,
	}
}

// Delete removes the named senior and/or caregiver.
func (a *RosterAdapter) Delete(ctx context.Context, req primary.DeleteRequest) error {
	res, err := a.service.Delete(ctx, req)
	if err != nil {
		return err
	}

	if res.SeniorDeleted {
		fmt.Fprintf(a.out, "✓ Deleted senior %d\n", req.SeniorID)
	} else if req.SeniorID != 0 {
		fmt.Fprintf(a.out, "Senior %d not found, skipped\n", req.SeniorID)
	}
	if res.CaregiverDeleted {
		fmt.Fprintf(a.out, "✓ Deleted caregiver %d (assigned seniors unassigned)\n", req.CaregiverID)
	} else if req.CaregiverID != 0 {
		fmt.Fprintf(a.out, "Caregiver %d not found, skipped\n", req.CaregiverID)
	}
	return nil
}

// Assign links a senior to a caregiver.
func (a *RosterAdapter) Assign(ctx context.Context, seniorID, caregiverID int) error {
	sr, err := a.service.Assign(ctx, seniorID, caregiverID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Assigned senior %d (%s) to caregiver %d (%s)\n",
		sr.ID, sr.Name, sr.Caregiver.ID, sr.Caregiver.Name)
	return nil
}

// Unassign clears a senior's caregiver reference.
func (a *RosterAdapter) Unassign(ctx context.Context, seniorID, caregiverID int) error {
	sr, err := a.service.Unassign(ctx, seniorID, caregiverID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Unassigned senior %d (%s) from caregiver %d\n", sr.ID, sr.Name, caregiverID)
	return nil
}

// Pin pins one senior or one caregiver.
func (a *RosterAdapter) Pin(ctx context.Context, req primary.PinRequest) error {
	res, err := a.service.Pin(ctx, req)
	if err != nil {
		return err
	}

	switch {
	case res.Senior != nil && res.Already:
		fmt.Fprintf(a.out, "Senior %d (%s) is already pinned\n", res.Senior.ID, res.Senior.Name)
	case res.Senior != nil:
		fmt.Fprintf(a.out, "✓ Pinned senior %d (%s)\n", res.Senior.ID, res.Senior.Name)
	case res.Caregiver != nil && res.Already:
		fmt.Fprintf(a.out, "Caregiver %d (%s) is already pinned\n", res.Caregiver.ID, res.Caregiver.Name)
	case res.Caregiver != nil:
		fmt.Fprintf(a.out, "✓ Pinned caregiver %d (%s)\n", res.Caregiver.ID, res.Caregiver.Name)
	}
	return nil
}

// Unpin clears pinned entries within scope.
func (a *RosterAdapter) Unpin(ctx context.Context, scope roster.UnpinScope) error {
	cleared, err := a.service.Unpin(ctx, scope)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Unpinned %d entries (scope: %s)\n", cleared, scope)
	return nil
}

// Doctor reports invariant violations in the current state.
func (a *RosterAdapter) Doctor(ctx context.Context) error {
	problems := a.service.Verify(ctx)
	if len(problems) == 0 {
		fmt.Fprintln(a.out, "✓ Roster data is consistent")
		return nil
	}

	fmt.Fprintf(a.out, "Found %d problems:\n", len(problems))
	for _, p := range problems {
		fmt.Fprintf(a.out, "  ✗ %s\n", p)
	}
	return fmt.Errorf("roster data is inconsistent")
}
