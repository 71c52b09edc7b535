// Package cli provides thin CLI adapters that translate between CLI
// concerns and the roster service. Adapters format output but delegate
// all domain logic to the service.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/careledger/internal/models"
	"github.com/example/careledger/internal/ports/primary"
)

// SeniorAdapter translates senior CLI operations to RosterService calls.
type SeniorAdapter struct {
	service primary.RosterService
	out     io.Writer
}

// NewSeniorAdapter creates a new SeniorAdapter with the given service.
func NewSeniorAdapter(service primary.RosterService, out io.Writer) *SeniorAdapter {
	return &SeniorAdapter{
		service: service,
		out:     out,
	}
}

// Add creates a new senior.
func (a *SeniorAdapter) Add(ctx context.Context, req primary.AddSeniorRequest) error {
	sr, err := a.service.AddSenior(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Added senior %d: %s (%s)\n", sr.ID, sr.Name, sr.Phone)
	fmt.Fprintf(a.out, "  Risk: %s\n", riskLabel(sr.Risk))
	if sr.Caregiver != nil {
		fmt.Fprintf(a.out, "  Caregiver: %d (%s)\n", sr.Caregiver.ID, sr.Caregiver.Name)
	}
	return nil
}

// Edit updates a senior's fields.
func (a *SeniorAdapter) Edit(ctx context.Context, req primary.EditSeniorRequest) error {
	sr, err := a.service.EditSenior(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Updated senior %d: %s (%s)\n", sr.ID, sr.Name, sr.Phone)
	return nil
}

// List lists seniors with optional keyword and risk filters.
func (a *SeniorAdapter) List(ctx context.Context, filters primary.SeniorFilters) error {
	seniors, err := a.service.ListSeniors(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list seniors: %w", err)
	}

	if len(seniors) == 0 {
		fmt.Fprintln(a.out, "No seniors found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tRISK\tCAREGIVER")
	fmt.Fprintln(w, "--\t----\t-----\t----\t---------")
	for _, sr := range seniors {
		fmt.Fprintf(w, "%d\t%s%s\t%s\t%s\t%s\n",
			sr.ID, sr.Name, pinnedMark(sr.Pinned), sr.Phone, riskLabel(sr.Risk), caregiverColumn(sr.Caregiver))
	}
	return w.Flush()
}

func caregiverColumn(c *models.Caregiver) string {
	if c == nil {
		return "-"
	}
	return fmt.Sprintf("%d (%s)", c.ID, c.Name)
}

func pinnedMark(pinned bool) string {
	if !pinned {
		return ""
	}
	return color.New(color.FgHiMagenta).Sprint(" [pinned]")
}

func riskLabel(risk string) string {
	switch risk {
	case models.RiskHigh:
		return color.New(color.FgRed).Sprint(risk)
	case models.RiskMedium:
		return color.New(color.FgYellow).Sprint(risk)
	case models.RiskLow:
		return color.New(color.FgHiGreen).Sprint(risk)
	}
	return risk
}
