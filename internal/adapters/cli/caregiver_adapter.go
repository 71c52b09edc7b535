package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/careledger/internal/ports/primary"
)

// CaregiverAdapter translates caregiver CLI operations to RosterService calls.
type CaregiverAdapter struct {
	service primary.RosterService
	out     io.Writer
}

// NewCaregiverAdapter creates a new CaregiverAdapter with the given service.
func NewCaregiverAdapter(service primary.RosterService, out io.Writer) *CaregiverAdapter {
	return &CaregiverAdapter{
		service: service,
		out:     out,
	}
}

// Add creates a new caregiver.
func (a *CaregiverAdapter) Add(ctx context.Context, req primary.AddCaregiverRequest) error {
	c, err := a.service.AddCaregiver(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Added caregiver %d: %s (%s)\n", c.ID, c.Name, c.Phone)
	return nil
}

// Edit updates a caregiver's fields. Assigned seniors pick up the new
// values through the store's rebind pass.
func (a *CaregiverAdapter) Edit(ctx context.Context, req primary.EditCaregiverRequest) error {
	c, err := a.service.EditCaregiver(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Updated caregiver %d: %s (%s)\n", c.ID, c.Name, c.Phone)
	return nil
}

// List lists caregivers with an optional keyword filter.
func (a *CaregiverAdapter) List(ctx context.Context, filters primary.CaregiverFilters) error {
	caregivers, err := a.service.ListCaregivers(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list caregivers: %w", err)
	}

	if len(caregivers) == 0 {
		fmt.Fprintln(a.out, "No caregivers found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tADDRESS")
	fmt.Fprintln(w, "--\t----\t-----\t-------")
	for _, c := range caregivers {
		address := c.Address
		if address == "" {
			address = "-"
		}
		fmt.Fprintf(w, "%d\t%s%s\t%s\t%s\n", c.ID, c.Name, pinnedMark(c.Pinned), c.Phone, address)
	}
	return w.Flush()
}

// Show displays one caregiver plus the seniors assigned to it.
func (a *CaregiverAdapter) Show(ctx context.Context, caregiverID int) error {
	c, seniors, err := a.service.GetCaregiver(ctx, caregiverID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nCaregiver %d: %s%s\n", c.ID, c.Name, pinnedMark(c.Pinned))
	fmt.Fprintf(a.out, "Phone:   %s\n", c.Phone)
	if c.Address != "" {
		fmt.Fprintf(a.out, "Address: %s\n", c.Address)
	}
	if c.Note != "" {
		fmt.Fprintf(a.out, "Note:    %s\n", c.Note)
	}

	if len(seniors) == 0 {
		fmt.Fprintln(a.out, "No seniors assigned")
		return nil
	}
	fmt.Fprintf(a.out, "Assigned seniors (%d):\n", len(seniors))
	for _, sr := range seniors {
		fmt.Fprintf(a.out, "  %d  %s (%s, risk %s)\n", sr.ID, sr.Name, sr.Phone, riskLabel(sr.Risk))
	}
	return nil
}
