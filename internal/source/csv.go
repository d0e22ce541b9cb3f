package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JonMunkholm/confdash/internal/schema"
)

func init() {
	Register(csvKind())
}

func csvKind() Kind {
	return Kind{
		Name:   "csv",
		Claims: claimsCSV,
		Read:   readCSV,
	}
}

func claimsCSV(locator string) bool {
	return strings.HasSuffix(strings.ToLower(locator), ".csv")
}

// readCSV reads one reference table from a CSV file. The first row is
// the header; it is resolved case-insensitively against the table
// contract and extra columns are ignored. A UTF-8 BOM on the first
// header cell is stripped.
func readCSV(ctx context.Context, locator string, table schema.Table) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(locator)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", table.Key, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	idx, err := table.ResolveHeader(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", table.Key, err)
		}
		rec := make(Record, len(table.Columns))
		for _, c := range table.Columns {
			if pos, ok := idx[c.Name]; ok && pos < len(row) {
				rec[c.Name] = row[pos]
			}
		}
		records = append(records, rec)
	}

	return records, nil
}
