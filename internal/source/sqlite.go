package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/JonMunkholm/confdash/internal/schema"

	_ "modernc.org/sqlite"
)

func init() {
	Register(sqliteKind())
}

func sqliteKind() Kind {
	return Kind{
		Name:   "sqlite",
		Claims: claimsSQLite,
		Read:   readSQLite,
	}
}

// claimsSQLite matches an explicit sqlite: prefix or the conventional
// file extensions.
func claimsSQLite(locator string) bool {
	if strings.HasPrefix(locator, "sqlite:") {
		return true
	}
	l := strings.ToLower(locator)
	return strings.HasSuffix(l, ".db") ||
		strings.HasSuffix(l, ".sqlite") ||
		strings.HasSuffix(l, ".sqlite3")
}

// readSQLite reads one reference table from a SQLite file. The database
// is opened read-only and rows come back in rowid order, which for an
// ordinary table is insertion order. Cells scan through NullString so
// numeric and boolean affinities arrive as their text forms; NULL cells
// arrive as empty.
func readSQLite(ctx context.Context, locator string, table schema.Table) ([]Record, error) {
	// Accept both sqlite:file.db and sqlite://file.db spellings.
	path := strings.TrimPrefix(strings.TrimPrefix(locator, "sqlite://"), "sqlite:")

	// mode=ro on a missing file reports an unhelpful generic error, so
	// check existence first.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	names := table.Names()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quoteIdentifier(n)
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid",
		strings.Join(quoted, ", "), quoteIdentifier(table.Key))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table.Key, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		cells := make([]sql.NullString, len(names))
		dest := make([]any, len(names))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s row %d: %w", table.Key, len(records)+1, err)
		}
		rec := make(Record, len(names))
		for i, name := range names {
			if cells[i].Valid {
				rec[name] = cells[i].String
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", table.Key, err)
	}

	return records, nil
}

// quoteIdentifier quotes a SQL identifier. The sessions contract includes
// the reserved word "end", so every name goes through this.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
