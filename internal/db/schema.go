package db

// GetSchemaSQL returns the authoritative schema. Tests load their
// in-memory databases from this same string so test and production
// schemas cannot drift.
func GetSchemaSQL() string {
	return schemaSQL
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

-- One row per category; absent rows mean a legacy database whose marks
-- are recomputed from the data on load.
CREATE TABLE IF NOT EXISTS sequence_marks (
    category   TEXT PRIMARY KEY,
    high_water INTEGER NOT NULL
);
`
