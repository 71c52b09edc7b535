// Package jsonfile persists roster snapshots as a single JSON document
// on local disk. It is the default persistence backend.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/example/careledger/internal/core/roster"
	"github.com/example/careledger/internal/ports/secondary"
)

// SnapshotStore reads and writes a roster snapshot at a fixed path.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore creates a snapshot store for the given file path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// snapshotFile is the on-disk layout. Sequence marks and the legacy
// caregiver composite key are optional so old files keep decoding.
type snapshotFile struct {
	Seniors       []seniorJSON    `json:"seniors"`
	Caregivers    []caregiverJSON `json:"caregivers"`
	SeniorHigh    *int            `json:"seniorSeq,omitempty"`
	CaregiverHigh *int            `json:"caregiverSeq,omitempty"`
}

type seniorJSON struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Address        string `json:"address,omitempty"`
	Note           string `json:"note,omitempty"`
	Pinned         bool   `json:"pinned,omitempty"`
	Risk           string `json:"risk"`
	CaregiverID    *int   `json:"caregiverId,omitempty"`
	CaregiverName  string `json:"caregiverName,omitempty"`
	CaregiverPhone string `json:"caregiverPhone,omitempty"`
}

type caregiverJSON struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Note    string `json:"note,omitempty"`
	Pinned  bool   `json:"pinned,omitempty"`
}

// Load reads the snapshot file. A missing file yields an empty snapshot;
// a file that does not parse yields ErrCorruptState.
func (s *SnapshotStore) Load(ctx context.Context) (*secondary.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &secondary.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", s.path, err, roster.ErrCorruptState)
	}

	snap := &secondary.Snapshot{
		SeniorHigh:    file.SeniorHigh,
		CaregiverHigh: file.CaregiverHigh,
	}
	for _, sr := range file.Seniors {
		snap.Seniors = append(snap.Seniors, secondary.SeniorRecord{
			ID:             sr.ID,
			Name:           sr.Name,
			Phone:          sr.Phone,
			Address:        sr.Address,
			Note:           sr.Note,
			Pinned:         sr.Pinned,
			Risk:           sr.Risk,
			CaregiverID:    sr.CaregiverID,
			CaregiverName:  sr.CaregiverName,
			CaregiverPhone: sr.CaregiverPhone,
		})
	}
	for _, c := range file.Caregivers {
		snap.Caregivers = append(snap.Caregivers, secondary.CaregiverRecord{
			ID:      c.ID,
			Name:    c.Name,
			Phone:   c.Phone,
			Address: c.Address,
			Note:    c.Note,
			Pinned:  c.Pinned,
		})
	}
	return snap, nil
}

// Save writes the snapshot atomically: the document is written to a temp
// file in the same directory and renamed over the target, so a crash
// mid-write never leaves a truncated snapshot behind.
func (s *SnapshotStore) Save(ctx context.Context, snap *secondary.Snapshot) error {
	file := snapshotFile{
		SeniorHigh:    snap.SeniorHigh,
		CaregiverHigh: snap.CaregiverHigh,
		Seniors:       make([]seniorJSON, 0, len(snap.Seniors)),
		Caregivers:    make([]caregiverJSON, 0, len(snap.Caregivers)),
	}
	for _, sr := range snap.Seniors {
		file.Seniors = append(file.Seniors, seniorJSON{
			ID:             sr.ID,
			Name:           sr.Name,
			Phone:          sr.Phone,
			Address:        sr.Address,
			Note:           sr.Note,
			Pinned:         sr.Pinned,
			Risk:           sr.Risk,
			CaregiverID:    sr.CaregiverID,
			CaregiverName:  sr.CaregiverName,
			CaregiverPhone: sr.CaregiverPhone,
		})
	}
	for _, c := range snap.Caregivers {
		file.Caregivers = append(file.Caregivers, caregiverJSON{
			ID:      c.ID,
			Name:    c.Name,
			Phone:   c.Phone,
			Address: c.Address,
			Note:    c.Note,
			Pinned:  c.Pinned,
		})
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".roster-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Ensure SnapshotStore implements the interface
var _ secondary.SnapshotStore = (*SnapshotStore)(nil)
