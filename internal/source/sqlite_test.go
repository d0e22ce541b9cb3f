package source

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/confdash/internal/schema"
)

// createDB creates a SQLite database in a temp dir and runs the given
// statements against it.
func createDB(t *testing.T, stmts []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conference.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	return path
}

func createSessionsDB(t *testing.T) string {
	t.Helper()
	return createDB(t, []string{
		`CREATE TABLE sessions (
			id INTEGER PRIMARY KEY,
			day TEXT, date TEXT, time TEXT,
			beg REAL, "end" REAL,
			sponsor TEXT, type TEXT, title TEXT, location TEXT, url TEXT,
			fee INTEGER
		)`,
		`INSERT INTO sessions (day, date, time, beg, "end", sponsor, type, title, location, url, fee)
		 VALUES ('Fri', 'Jul 10', '9:00 AM', 9, 10, 'RStudio', 'Invited Keynote', 'The Future of Shiny', 'Main Hall', 'https://example.org/s/1', 0)`,
		`INSERT INTO sessions (day, date, time, beg, "end", sponsor, type, title, location, url, fee)
		 VALUES ('Sat', 'Jul 11', '2:00 PM', 14.5, 17, NULL, 'Workshop', 'Production Shiny Workshop', 'Lab A', 'https://example.org/s/2', 1)`,
	})
}

// ============================================================================
// SQLite Reading Tests
// ============================================================================

func TestReadSQLite(t *testing.T) {
	path := createSessionsDB(t)

	records, err := readSQLite(context.Background(), path, schema.Sessions)
	if err != nil {
		t.Fatalf("readSQLite() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first["day"] != "Fri" || first["title"] != "The Future of Shiny" {
		t.Errorf("first record = %v", first)
	}

	// Typed columns arrive as their text forms for the shared parser.
	if first["beg"] != "9" || first["fee"] != "0" {
		t.Errorf("typed cells = beg %q fee %q, want text forms", first["beg"], first["fee"])
	}
	if records[1]["beg"] != "14.5" {
		t.Errorf("fractional hour = %q, want 14.5", records[1]["beg"])
	}
	if got, ok := records[1]["sponsor"]; ok && got != "" {
		t.Errorf("NULL sponsor = %q, want empty", got)
	}
}

func TestReadSQLite_ThroughParser(t *testing.T) {
	path := createSessionsDB(t)

	records, err := readSQLite(context.Background(), path, schema.Sessions)
	if err != nil {
		t.Fatalf("readSQLite() error: %v", err)
	}
	sessions, err := ParseSessions(records)
	if err != nil {
		t.Fatalf("ParseSessions() error: %v", err)
	}

	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].BegHour != 9 || sessions[0].HasFee {
		t.Errorf("sessions[0] = %+v", sessions[0])
	}
	if sessions[1].BegHour != 14.5 || !sessions[1].HasFee || sessions[1].Sponsor != "" {
		t.Errorf("sessions[1] = %+v", sessions[1])
	}
}

func TestReadSQLite_RowidOrder(t *testing.T) {
	// Rows inserted out of display order still come back in insertion
	// order, which is what the snapshot preserves.
	path := createDB(t, []string{
		`CREATE TABLE talks (title TEXT, url TEXT, fee TEXT)`,
		`INSERT INTO talks VALUES ('third written first', 'u', 'no')`,
		`INSERT INTO talks VALUES ('then this one', 'u', 'no')`,
	})

	records, err := readSQLite(context.Background(), path, schema.Talks)
	if err != nil {
		t.Fatalf("readSQLite() error: %v", err)
	}
	if records[0]["title"] != "third written first" || records[1]["title"] != "then this one" {
		t.Errorf("records out of rowid order: %v", records)
	}
}

func TestReadSQLite_PrefixLocator(t *testing.T) {
	path := createSessionsDB(t)

	records, err := readSQLite(context.Background(), "sqlite:"+path, schema.Sessions)
	if err != nil {
		t.Fatalf("readSQLite() with sqlite: prefix error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestReadSQLite_TextualBooleans(t *testing.T) {
	path := createDB(t, []string{
		`CREATE TABLE talks (title TEXT, url TEXT, fee TEXT)`,
		`INSERT INTO talks VALUES ('Paid Masterclass', 'u', 'TRUE')`,
	})

	records, err := readSQLite(context.Background(), path, schema.Talks)
	if err != nil {
		t.Fatalf("readSQLite() error: %v", err)
	}
	talks, err := ParseTalks(records)
	if err != nil {
		t.Fatalf("ParseTalks() error: %v", err)
	}
	if !talks[0].HasFee {
		t.Error("TRUE fee cell should parse to true")
	}
}

func TestReadSQLite_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")

	_, err := readSQLite(context.Background(), path, schema.Sessions)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "no such file") {
		t.Errorf("error = %q, want the missing-file text preserved", err)
	}
}

func TestReadSQLite_MissingTable(t *testing.T) {
	path := createDB(t, []string{`CREATE TABLE unrelated (x TEXT)`})

	_, err := readSQLite(context.Background(), path, schema.Talks)
	if err == nil {
		t.Fatal("expected an error for a database without the table")
	}
}

// ============================================================================
// Locator Claim Tests
// ============================================================================

func TestClaimsSQLite(t *testing.T) {
	tests := []struct {
		locator string
		want    bool
	}{
		{"conference.db", true},
		{"data/conference.sqlite", true},
		{"data/conference.sqlite3", true},
		{"sqlite:/var/data/whatever", true},
		{"data/sessions.csv", false},
		{"postgres://host/db", false},
	}

	for _, tt := range tests {
		if got := claimsSQLite(tt.locator); got != tt.want {
			t.Errorf("claimsSQLite(%q) = %v, want %v", tt.locator, got, tt.want)
		}
	}
}
