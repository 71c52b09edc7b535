// Package sqlite contains the SQLite implementation of the snapshot
// store, for installs that keep the roster in a local database instead
// of a JSON file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/careledger/internal/ports/secondary"
)

// Sequence mark categories
const (
	categorySeniors    = "seniors"
	categoryCaregivers = "caregivers"
)

// SnapshotRepository implements secondary.SnapshotStore with SQLite.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SQLite snapshot repository.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load reads the full roster state. An empty database yields an empty
// snapshot with nil marks, same as a missing JSON file.
func (r *SnapshotRepository) Load(ctx context.Context) (*secondary.Snapshot, error) {
	snap := &secondary.Snapshot{}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, phone, address, note, pinned FROM caregivers ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to load caregivers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rec secondary.CaregiverRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Phone, &rec.Address, &rec.Note, &rec.Pinned); err != nil {
			return nil, fmt.Errorf("failed to scan caregiver: %w", err)
		}
		snap.Caregivers = append(snap.Caregivers, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load caregivers: %w", err)
	}

	srows, err := r.db.QueryContext(ctx,
		"SELECT id, name, phone, address, note, pinned, risk, caregiver_id FROM seniors ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to load seniors: %w", err)
	}
	defer srows.Close()
	for srows.Next() {
		var rec secondary.SeniorRecord
		var caregiverID sql.NullInt64
		if err := srows.Scan(&rec.ID, &rec.Name, &rec.Phone, &rec.Address, &rec.Note, &rec.Pinned, &rec.Risk, &caregiverID); err != nil {
			return nil, fmt.Errorf("failed to scan senior: %w", err)
		}
		if caregiverID.Valid {
			id := int(caregiverID.Int64)
			rec.CaregiverID = &id
		}
		snap.Seniors = append(snap.Seniors, rec)
	}
	if err := srows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load seniors: %w", err)
	}

	seniorHigh, err := r.loadMark(ctx, categorySeniors)
	if err != nil {
		return nil, err
	}
	caregiverHigh, err := r.loadMark(ctx, categoryCaregivers)
	if err != nil {
		return nil, err
	}
	snap.SeniorHigh = seniorHigh
	snap.CaregiverHigh = caregiverHigh

	return snap, nil
}

// Save replaces the full roster state in a single transaction.
func (r *SnapshotRepository) Save(ctx context.Context, snap *secondary.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer tx.Rollback()

	// Seniors reference caregivers, so they go first on delete and last
	// on insert.
	if _, err := tx.ExecContext(ctx, "DELETE FROM seniors"); err != nil {
		return fmt.Errorf("failed to clear seniors: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM caregivers"); err != nil {
		return fmt.Errorf("failed to clear caregivers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sequence_marks"); err != nil {
		return fmt.Errorf("failed to clear sequence marks: %w", err)
	}

	for _, c := range snap.Caregivers {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO caregivers (id, name, phone, address, note, pinned) VALUES (?, ?, ?, ?, ?, ?)",
			c.ID, c.Name, c.Phone, c.Address, c.Note, c.Pinned,
		); err != nil {
			return fmt.Errorf("failed to save caregiver %d: %w", c.ID, err)
		}
	}
	for _, sr := range snap.Seniors {
		var caregiverID sql.NullInt64
		if sr.CaregiverID != nil {
			caregiverID = sql.NullInt64{Int64: int64(*sr.CaregiverID), Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO seniors (id, name, phone, address, note, pinned, risk, caregiver_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			sr.ID, sr.Name, sr.Phone, sr.Address, sr.Note, sr.Pinned, sr.Risk, caregiverID,
		); err != nil {
			return fmt.Errorf("failed to save senior %d: %w", sr.ID, err)
		}
	}

	if snap.SeniorHigh != nil {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO sequence_marks (category, high_water) VALUES (?, ?)",
			categorySeniors, *snap.SeniorHigh,
		); err != nil {
			return fmt.Errorf("failed to save senior sequence mark: %w", err)
		}
	}
	if snap.CaregiverHigh != nil {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO sequence_marks (category, high_water) VALUES (?, ?)",
			categoryCaregivers, *snap.CaregiverHigh,
		); err != nil {
			return fmt.Errorf("failed to save caregiver sequence mark: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) loadMark(ctx context.Context, category string) (*int, error) {
	var high int
	err := r.db.QueryRowContext(ctx,
		"SELECT high_water FROM sequence_marks WHERE category = ?", category,
	).Scan(&high)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s sequence mark: %w", category, err)
	}
	return &high, nil
}

// Ensure SnapshotRepository implements the interface
var _ secondary.SnapshotStore = (*SnapshotRepository)(nil)
