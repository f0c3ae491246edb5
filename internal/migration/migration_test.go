package migration

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte(`CREATE TABLE things (id TEXT PRIMARY KEY);`)},
		"002_extend.sql": {Data: []byte(`ALTER TABLE things ADD COLUMN name TEXT;`)},
	}

	r := NewRunner(db, fsys)
	applied, err := r.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied %d migrations, want 2", applied)
	}

	version, err := r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	if _, err := db.Exec(`INSERT INTO things (id, name) VALUES ('a', 'b')`); err != nil {
		t.Errorf("migrated schema unusable: %v", err)
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte(`CREATE TABLE things (id TEXT PRIMARY KEY);`)},
	}

	r := NewRunner(db, fsys)
	if _, err := r.ApplyMigrations(nil); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}

	applied, err := r.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("second apply ran %d migrations, want 0", applied)
	}
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	r := NewRunner(openTestDB(t), fstest.MapFS{})
	version, err := r.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("fresh database version = %d, want 0", version)
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{
			"no version prefix",
			fstest.MapFS{"create.sql": {Data: []byte(`SELECT 1;`)}},
		},
		{
			"non-numeric version",
			fstest.MapFS{"abc_create.sql": {Data: []byte(`SELECT 1;`)}},
		},
		{
			"duplicate versions",
			fstest.MapFS{
				"001_a.sql": {Data: []byte(`SELECT 1;`)},
				"001_b.sql": {Data: []byte(`SELECT 1;`)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(openTestDB(t), tt.fsys)
			if _, err := r.ReadMigrationFiles(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReadMigrationFilesSorted(t *testing.T) {
	fsys := fstest.MapFS{
		"010_third.sql":  {Data: []byte(`SELECT 3;`)},
		"002_second.sql": {Data: []byte(`SELECT 2;`)},
		"001_first.sql":  {Data: []byte(`SELECT 1;`)},
	}

	r := NewRunner(openTestDB(t), fsys)
	migrations, err := r.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("got %d migrations, want 3", len(migrations))
	}
	for i, want := range []int{1, 2, 10} {
		if migrations[i].Version != want {
			t.Errorf("migrations[%d].Version = %d, want %d", i, migrations[i].Version, want)
		}
	}
}

func TestValidateVersion(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_create.sql": {Data: []byte(`CREATE TABLE things (id TEXT PRIMARY KEY);`)},
		"002_extend.sql": {Data: []byte(`ALTER TABLE things ADD COLUMN name TEXT;`)},
	}

	r := NewRunner(db, fsys)

	// A database behind the latest migration must be rejected.
	if err := r.ValidateVersion(); err == nil {
		t.Error("expected stale schema to fail validation")
	}

	if _, err := r.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if err := r.ValidateVersion(); err != nil {
		t.Errorf("current schema failed validation: %v", err)
	}
}
