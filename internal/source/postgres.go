package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonMunkholm/confdash/internal/schema"
)

func init() {
	Register(postgresKind())
}

func postgresKind() Kind {
	return Kind{
		Name:   "postgres",
		Claims: claimsPostgres,
		Read:   readPostgres,
	}
}

func claimsPostgres(locator string) bool {
	return strings.HasPrefix(locator, "postgres://") ||
		strings.HasPrefix(locator, "postgresql://")
}

// readPostgres reads one reference table from a Postgres database. The
// table must carry an integer id column; rows come back in id order so
// the snapshot preserves the curated source order. Every column is cast
// to text in the query, which keeps the scan loop free of per-type
// handling and lets the parser apply the same conversions as for files.
func readPostgres(ctx context.Context, locator string, table schema.Table) ([]Record, error) {
	pool, err := pgxpool.New(ctx, locator)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	names := table.Names()
	selects := make([]string, len(names))
	for i, n := range names {
		selects[i] = quoteIdentifier(n) + "::text"
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id",
		strings.Join(selects, ", "), quoteIdentifier(table.Key))

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table.Key, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("scan %s row %d: %w", table.Key, len(records)+1, err)
		}
		rec := make(Record, len(names))
		for i, name := range names {
			if i >= len(values) {
				break
			}
			if s, ok := values[i].(string); ok {
				rec[name] = s
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", table.Key, err)
	}

	return records, nil
}
