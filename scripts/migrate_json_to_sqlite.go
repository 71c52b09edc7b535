//go:build ignore

package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Senior mirrors the JSON snapshot layout
type Senior struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Note           string `json:"note"`
	Pinned         bool   `json:"pinned"`
	Risk           string `json:"risk"`
	CaregiverID    *int   `json:"caregiverId"`
	CaregiverName  string `json:"caregiverName"`
	CaregiverPhone string `json:"caregiverPhone"`
}

// Caregiver mirrors the JSON snapshot layout
type Caregiver struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
	Pinned  bool   `json:"pinned"`
}

type snapshot struct {
	Seniors       []Senior    `json:"seniors"`
	Caregivers    []Caregiver `json:"caregivers"`
	SeniorHigh    *int        `json:"seniorSeq"`
	CaregiverHigh *int        `json:"caregiverSeq"`
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS caregivers (
    id      INTEGER PRIMARY KEY,
    name    TEXT NOT NULL,
    phone   TEXT NOT NULL,
    address TEXT NOT NULL DEFAULT '',
    note    TEXT NOT NULL DEFAULT '',
    pinned  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS seniors (
    id           INTEGER PRIMARY KEY,
    name         TEXT NOT NULL,
    phone        TEXT NOT NULL,
    address      TEXT NOT NULL DEFAULT '',
    note         TEXT NOT NULL DEFAULT '',
    pinned       INTEGER NOT NULL DEFAULT 0,
    risk         TEXT NOT NULL,
    caregiver_id INTEGER REFERENCES caregivers(id)
);

CREATE TABLE IF NOT EXISTS sequence_marks (
    category   TEXT PRIMARY KEY,
    high_water INTEGER NOT NULL
);
`

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview migration without executing")
	flag.Parse()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
		os.Exit(1)
	}
	dataDir := filepath.Join(homeDir, ".careledger")
	jsonPath := filepath.Join(dataDir, "roster.json")
	dbPath := filepath.Join(dataDir, "roster.db")

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", jsonPath, err)
		os.Exit(1)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", jsonPath, err)
		os.Exit(1)
	}

	// Legacy files carry (name, phone) references instead of ids;
	// resolve them up front so the database only ever stores ids.
	byKey := make(map[string]int, len(snap.Caregivers))
	for _, c := range snap.Caregivers {
		byKey[c.Name+"\x00"+c.Phone] = c.ID
	}
	for i, sr := range snap.Seniors {
		if sr.CaregiverID != nil || sr.CaregiverName == "" {
			continue
		}
		id, ok := byKey[sr.CaregiverName+"\x00"+sr.CaregiverPhone]
		if !ok {
			fmt.Fprintf(os.Stderr, "Senior %d references unknown caregiver (%s, %s)\n",
				sr.ID, sr.CaregiverName, sr.CaregiverPhone)
			os.Exit(1)
		}
		snap.Seniors[i].CaregiverID = &id
	}

	fmt.Printf("Migrating %d seniors and %d caregivers from %s\n",
		len(snap.Seniors), len(snap.Caregivers), jsonPath)
	if *dryRun {
		fmt.Println("Dry run, nothing written")
		return
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", dbPath, err)
		os.Exit(1)
	}
	defer db.Close()
	if _, err := db.Exec(schemaSQL); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating schema: %v\n", err)
		os.Exit(1)
	}

	tx, err := db.Begin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting transaction: %v\n", err)
		os.Exit(1)
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM seniors", "DELETE FROM caregivers", "DELETE FROM sequence_marks"} {
		if _, err := tx.Exec(stmt); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing tables: %v\n", err)
			os.Exit(1)
		}
	}
	for _, c := range snap.Caregivers {
		if _, err := tx.Exec(
			"INSERT INTO caregivers (id, name, phone, address, note, pinned) VALUES (?, ?, ?, ?, ?, ?)",
			c.ID, c.Name, c.Phone, c.Address, c.Note, c.Pinned,
		); err != nil {
			fmt.Fprintf(os.Stderr, "Error inserting caregiver %d: %v\n", c.ID, err)
			os.Exit(1)
		}
	}
	for _, sr := range snap.Seniors {
		var ref sql.NullInt64
		if sr.CaregiverID != nil {
			ref = sql.NullInt64{Int64: int64(*sr.CaregiverID), Valid: true}
		}
		if _, err := tx.Exec(
			"INSERT INTO seniors (id, name, phone, address, note, pinned, risk, caregiver_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			sr.ID, sr.Name, sr.Phone, sr.Address, sr.Note, sr.Pinned, sr.Risk, ref,
		); err != nil {
			fmt.Fprintf(os.Stderr, "Error inserting senior %d: %v\n", sr.ID, err)
			os.Exit(1)
		}
	}

	seniorHigh, caregiverHigh := 0, 0
	for _, sr := range snap.Seniors {
		if sr.ID > seniorHigh {
			seniorHigh = sr.ID
		}
	}
	for _, c := range snap.Caregivers {
		if c.ID > caregiverHigh {
			caregiverHigh = c.ID
		}
	}
	if snap.SeniorHigh != nil && *snap.SeniorHigh > seniorHigh {
		seniorHigh = *snap.SeniorHigh
	}
	if snap.CaregiverHigh != nil && *snap.CaregiverHigh > caregiverHigh {
		caregiverHigh = *snap.CaregiverHigh
	}
	for category, high := range map[string]int{"seniors": seniorHigh, "caregivers": caregiverHigh} {
		if _, err := tx.Exec(
			"INSERT INTO sequence_marks (category, high_water) VALUES (?, ?)",
			category, high,
		); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing sequence mark: %v\n", err)
			os.Exit(1)
		}
	}

	if err := tx.Commit(); err != nil {
		fmt.Fprintf(os.Stderr, "Error committing: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Done. Set \"backend\": \"sqlite\" in %s to switch over.\n",
		filepath.Join(dataDir, "config.json"))
}
