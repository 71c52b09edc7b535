// Package secondary defines the secondary ports (driven adapters) for the
// application. The snapshot store is the persistence boundary: it moves
// flat records, never domain values, so encoders stay free of domain
// logic.
package secondary

import "context"

// SnapshotStore persists and restores the full roster state.
type SnapshotStore interface {
	// Load reads the persisted snapshot. A missing snapshot yields an
	// empty one, not an error; malformed data yields an error wrapping
	// roster.ErrCorruptState.
	Load(ctx context.Context) (*Snapshot, error)

	// Save atomically replaces the persisted snapshot with the given
	// full state.
	Save(ctx context.Context, snap *Snapshot) error
}

// Snapshot is the full persisted state: both ordered entity lists plus
// the two sequence high-water marks. Nil marks indicate a legacy
// snapshot; the loader then recomputes them from the data before any new
// identifier is allocated.
type Snapshot struct {
	Seniors       []SeniorRecord
	Caregivers    []CaregiverRecord
	SeniorHigh    *int
	CaregiverHigh *int
}

// SeniorRecord is a senior as stored in persistence. The caregiver
// reference is persisted by identifier; CaregiverName/CaregiverPhone are
// the legacy composite key kept for snapshots written before identifiers
// were persisted, resolved against the loaded caregiver collection.
type SeniorRecord struct {
	ID             int
	Name           string
	Phone          string
	Address        string
	Note           string
	Pinned         bool
	Risk           string
	CaregiverID    *int
	CaregiverName  string
	CaregiverPhone string
}

// CaregiverRecord is a caregiver as stored in persistence.
type CaregiverRecord struct {
	ID      int
	Name    string
	Phone   string
	Address string
	Note    string
	Pinned  bool
}
