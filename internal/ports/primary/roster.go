// Package primary defines the primary ports (driving interfaces) for the
// application: the operations the CLI adapters invoke, expressed as
// structured requests over fully-parsed arguments. The service never sees
// raw command text.
package primary

import (
	"context"

	"github.com/example/careledger/internal/core/roster"
	"github.com/example/careledger/internal/models"
)

// AddSeniorRequest carries the fields for a new senior. CaregiverID zero
// means no assignment at creation.
type AddSeniorRequest struct {
	Name        string
	Phone       string
	Address     string
	Note        string
	Risk        string
	CaregiverID int
}

// EditSeniorRequest carries edits for an existing senior. Empty string
// fields are left unchanged; the identifier itself never changes.
type EditSeniorRequest struct {
	SeniorID int
	Name     string
	Phone    string
	Address  string
	Note     string
	Risk     string
}

// AddCaregiverRequest carries the fields for a new caregiver.
type AddCaregiverRequest struct {
	Name    string
	Phone   string
	Address string
	Note    string
}

// EditCaregiverRequest carries edits for an existing caregiver. Empty
// string fields are left unchanged.
type EditCaregiverRequest struct {
	CaregiverID int
	Name        string
	Phone       string
	Address     string
	Note        string
}

// SeniorFilters narrows senior listings. Keyword matches names
// case-insensitively; Risk matches the risk rank exactly.
type SeniorFilters struct {
	Keyword string
	Risk    string
}

// CaregiverFilters narrows caregiver listings.
type CaregiverFilters struct {
	Keyword string
}

// DeleteRequest names the entities to remove. Zero means not specified;
// a request specifying neither is rejected. An identifier that does not
// resolve is skipped, not an error.
type DeleteRequest struct {
	SeniorID    int
	CaregiverID int
}

// DeleteResult reports which halves of a delete request were applied.
type DeleteResult struct {
	SeniorDeleted    bool
	CaregiverDeleted bool
}

// PinRequest targets exactly one senior or one caregiver, never both.
type PinRequest struct {
	SeniorID    int
	CaregiverID int
}

// PinResult reports the outcome of a pin operation. Already means the
// target was pinned before the request; that is a success, not an error.
type PinResult struct {
	Already   bool
	Senior    *models.Senior
	Caregiver *models.Caregiver
}

// RosterService is the operation layer over the relational person store:
// every mutation runs its ordered validation (duplicate phone across both
// categories, identifier resolution) before committing, and persists a
// snapshot after each commit.
type RosterService interface {
	AddSenior(ctx context.Context, req AddSeniorRequest) (models.Senior, error)
	EditSenior(ctx context.Context, req EditSeniorRequest) (models.Senior, error)
	ListSeniors(ctx context.Context, filters SeniorFilters) ([]models.Senior, error)

	AddCaregiver(ctx context.Context, req AddCaregiverRequest) (models.Caregiver, error)
	EditCaregiver(ctx context.Context, req EditCaregiverRequest) (models.Caregiver, error)
	ListCaregivers(ctx context.Context, filters CaregiverFilters) ([]models.Caregiver, error)

	// GetCaregiver returns the caregiver and the seniors assigned to it.
	GetCaregiver(ctx context.Context, caregiverID int) (models.Caregiver, []models.Senior, error)

	Delete(ctx context.Context, req DeleteRequest) (DeleteResult, error)

	Assign(ctx context.Context, seniorID, caregiverID int) (models.Senior, error)
	Unassign(ctx context.Context, seniorID, caregiverID int) (models.Senior, error)

	Pin(ctx context.Context, req PinRequest) (PinResult, error)
	Unpin(ctx context.Context, scope roster.UnpinScope) (int, error)

	// Load replaces in-memory state from the persisted snapshot. A missing
	// snapshot loads empty state; malformed data fails the load attempt
	// with a corrupt-state error.
	Load(ctx context.Context) error

	// Verify re-checks the store invariants and returns one line per
	// violation found.
	Verify(ctx context.Context) []string
}
