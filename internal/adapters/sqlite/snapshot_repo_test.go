// Package sqlite_test contains integration tests for the SQLite snapshot
// repository. Test databases are in-memory and load the authoritative
// schema via db.GetSchemaSQL so test and production schemas cannot drift.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/careledger/internal/adapters/sqlite"
	"github.com/example/careledger/internal/db"
	"github.com/example/careledger/internal/models"
	"github.com/example/careledger/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func intp(n int) *int { return &n }

func TestLoadEmptyDatabase(t *testing.T) {
	repo := sqlite.NewSnapshotRepository(setupTestDB(t))

	snap, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(snap.Seniors) != 0 || len(snap.Caregivers) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
	if snap.SeniorHigh != nil || snap.CaregiverHigh != nil {
		t.Error("expected nil marks for an empty database")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewSnapshotRepository(setupTestDB(t))

	in := &secondary.Snapshot{
		Caregivers: []secondary.CaregiverRecord{
			{ID: 1, Name: "Mei Hui", Phone: "90000002", Address: "Blk 12 Bedok", Pinned: true},
			{ID: 2, Name: "Ng Siew Lan", Phone: "90000003"},
		},
		Seniors: []secondary.SeniorRecord{
			{ID: 1, Name: "Lim Ah Kow", Phone: "91234567", Risk: models.RiskHigh, CaregiverID: intp(1)},
			{ID: 2, Name: "Tan Bee Leng", Phone: "92222222", Note: "lives alone", Risk: models.RiskLow},
		},
		SeniorHigh:    intp(5),
		CaregiverHigh: intp(2),
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out.Seniors) != 2 || len(out.Caregivers) != 2 {
		t.Fatalf("unexpected shape: %d seniors, %d caregivers", len(out.Seniors), len(out.Caregivers))
	}

	// Insertion order preserved.
	if out.Caregivers[0].Name != "Mei Hui" || !out.Caregivers[0].Pinned {
		t.Errorf("caregiver fields lost: %+v", out.Caregivers[0])
	}
	sr := out.Seniors[0]
	if sr.Risk != models.RiskHigh || sr.CaregiverID == nil || *sr.CaregiverID != 1 {
		t.Errorf("senior reference lost: %+v", sr)
	}
	if out.Seniors[1].CaregiverID != nil {
		t.Error("unassigned senior gained a reference")
	}
	if out.SeniorHigh == nil || *out.SeniorHigh != 5 {
		t.Errorf("senior mark lost: %v", out.SeniorHigh)
	}
	if out.CaregiverHigh == nil || *out.CaregiverHigh != 2 {
		t.Errorf("caregiver mark lost: %v", out.CaregiverHigh)
	}
}

func TestSaveReplacesPreviousState(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewSnapshotRepository(setupTestDB(t))

	if err := repo.Save(ctx, &secondary.Snapshot{
		Caregivers: []secondary.CaregiverRecord{
			{ID: 1, Name: "Mei Hui", Phone: "90000002"},
		},
		Seniors: []secondary.SeniorRecord{
			{ID: 1, Name: "Lim Ah Kow", Phone: "91234567", Risk: models.RiskLow, CaregiverID: intp(1)},
		},
		SeniorHigh:    intp(1),
		CaregiverHigh: intp(1),
	}); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Second save drops the caregiver and the assignment.
	if err := repo.Save(ctx, &secondary.Snapshot{
		Seniors: []secondary.SeniorRecord{
			{ID: 1, Name: "Lim Ah Kow", Phone: "91234567", Risk: models.RiskLow},
		},
		SeniorHigh:    intp(1),
		CaregiverHigh: intp(1),
	}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out.Caregivers) != 0 {
		t.Errorf("previous caregivers not replaced: %+v", out.Caregivers)
	}
	if out.Seniors[0].CaregiverID != nil {
		t.Error("previous assignment survived the replace")
	}
}
