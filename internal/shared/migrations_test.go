package shared

import (
	"database/sql"
	"testing"
)

func migrationDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&count)
	if err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	return count > 0
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(migrations) == 0 {
		t.Fatal("expected at least one embedded migration")
	}

	for i, m := range migrations {
		if m.Up == "" || m.Down == "" {
			t.Errorf("migration %d missing a direction", m.Version)
		}
		if i > 0 && migrations[i-1].Version >= m.Version {
			t.Error("migrations must be sorted by version")
		}
	}
}

func TestRunMigrations(t *testing.T) {
	t.Run("Creates Schema", func(t *testing.T) {
		db := migrationDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !tableExists(t, db, "schema_migrations") {
			t.Error("expected schema_migrations table")
		}
		if !tableExists(t, db, "sessions") {
			t.Error("expected sessions table")
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		db := migrationDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		if err := RunMigrations(db); err != nil {
			t.Fatalf("second run should be a no-op, got %v", err)
		}

		var applied int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
			t.Fatalf("failed to count applied migrations: %v", err)
		}

		migrations, _ := loadMigrations()
		if applied != len(migrations) {
			t.Errorf("expected %d applied migrations, got %d", len(migrations), applied)
		}
	})
}

func TestRollbackMigration(t *testing.T) {
	t.Run("Reverts Latest", func(t *testing.T) {
		db := migrationDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		if err := RollbackMigration(db); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if tableExists(t, db, "sessions") {
			t.Error("expected sessions table to be dropped")
		}
	})

	t.Run("Nothing To Rollback", func(t *testing.T) {
		db := migrationDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
		migrations, _ := loadMigrations()
		for range migrations {
			if err := RollbackMigration(db); err != nil {
				t.Fatalf("rollback failed: %v", err)
			}
		}

		if err := RollbackMigration(db); err == nil {
			t.Error("expected error with nothing left to rollback")
		}
	})
}

func TestStripComments(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain statement", "SELECT 1", "SELECT 1"},
		{"trailing comment", "SELECT 1 -- one", "SELECT 1"},
		{"comment-only line", "-- header\nSELECT 1", "SELECT 1"},
		{"whitespace collapsed", "  SELECT 1  \n\n", "SELECT 1"},
		{"empty after stripping", "-- nothing here", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripComments(tc.input); got != tc.want {
				t.Errorf("stripComments(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
