package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/careledger/internal/core/roster"
	"github.com/example/careledger/internal/models"
	"github.com/example/careledger/internal/ports/secondary"
)

func intp(n int) *int { return &n }

func TestLoadMissingFileYieldsEmptySnapshot(t *testing.T) {
	s := NewSnapshotStore(filepath.Join(t.TempDir(), "roster.json"))

	snap, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(snap.Seniors) != 0 || len(snap.Caregivers) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
	if snap.SeniorHigh != nil || snap.CaregiverHigh != nil {
		t.Error("expected nil sequence marks for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "roster.json")
	s := NewSnapshotStore(path)

	in := &secondary.Snapshot{
		Seniors: []secondary.SeniorRecord{
			{ID: 1, Name: "Lim Ah Kow", Phone: "91234567", Address: "Blk 30 Geylang",
				Risk: models.RiskHigh, Pinned: true,
				CaregiverID: intp(2), CaregiverName: "Mei Hui", CaregiverPhone: "90000002"},
		},
		Caregivers: []secondary.CaregiverRecord{
			{ID: 2, Name: "Mei Hui", Phone: "90000002", Note: "weekday shifts"},
		},
		SeniorHigh:    intp(4),
		CaregiverHigh: intp(2),
	}
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out.Seniors) != 1 || len(out.Caregivers) != 1 {
		t.Fatalf("unexpected shape: %+v", out)
	}
	sr := out.Seniors[0]
	if sr.Name != "Lim Ah Kow" || sr.Risk != models.RiskHigh || !sr.Pinned {
		t.Errorf("senior fields lost: %+v", sr)
	}
	if sr.CaregiverID == nil || *sr.CaregiverID != 2 || sr.CaregiverName != "Mei Hui" {
		t.Errorf("caregiver reference lost: %+v", sr)
	}
	if out.SeniorHigh == nil || *out.SeniorHigh != 4 {
		t.Errorf("sequence mark lost: %v", out.SeniorHigh)
	}
	if out.Caregivers[0].Note != "weekday shifts" {
		t.Errorf("caregiver note lost: %+v", out.Caregivers[0])
	}
}

func TestLoadLegacyFileWithoutMarks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	legacy := `{
	  "seniors": [
	    {"id": 3, "name": "Lim Ah Kow", "phone": "91234567", "risk": "MR",
	     "caregiverName": "Mei Hui", "caregiverPhone": "90000002"}
	  ],
	  "caregivers": [
	    {"id": 1, "name": "Mei Hui", "phone": "90000002"}
	  ]
	}`
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	snap, err := NewSnapshotStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if snap.SeniorHigh != nil || snap.CaregiverHigh != nil {
		t.Error("legacy file produced sequence marks")
	}
	sr := snap.Seniors[0]
	if sr.CaregiverID != nil {
		t.Error("legacy file produced an identifier reference")
	}
	if sr.CaregiverName != "Mei Hui" || sr.CaregiverPhone != "90000002" {
		t.Errorf("composite key not surfaced: %+v", sr)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	_, err := NewSnapshotStore(path).Load(context.Background())
	if !errors.Is(err, roster.ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
}

func TestSaveReplacesAtomically(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.json")
	s := NewSnapshotStore(path)

	if err := s.Save(ctx, &secondary.Snapshot{}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.Save(ctx, &secondary.Snapshot{
		Caregivers: []secondary.CaregiverRecord{{ID: 1, Name: "Mei Hui", Phone: "90000002"}},
	}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "roster.json" {
		t.Errorf("unexpected directory contents: %v", entries)
	}

	snap, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(snap.Caregivers) != 1 {
		t.Errorf("second save not visible: %+v", snap)
	}
}
