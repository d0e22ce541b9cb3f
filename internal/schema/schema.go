// Package schema defines the column contracts for the two reference
// tables the dashboard serves. Every source kind (CSV file, Postgres,
// SQLite) resolves its header or column list against these tables before
// any row is converted, so a malformed source is rejected at startup
// instead of surfacing as a half-empty view.
package schema

import (
	"fmt"
	"strings"
)

// ColumnKind is the expected data type for a table column.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindNumeric
	KindBool
)

// Column defines one expected column in a reference table.
type Column struct {
	Name     string     // Canonical column name, matched case-insensitively
	Kind     ColumnKind // Expected data type
	Required bool       // Column must exist in the source
	Aliases  []string   // Alternate header spellings accepted on ingest
}

// Table is the full column contract for one reference table.
type Table struct {
	Key     string // Table identifier: "sessions" or "talks"
	Columns []Column
}

// Sessions defines the expected columns for the sessions table.
var Sessions = Table{
	Key: "sessions",
	Columns: []Column{
		{Name: "day", Kind: KindText, Required: true},
		{Name: "date", Kind: KindText, Required: true},
		{Name: "time", Kind: KindText, Required: true},
		{Name: "beg", Kind: KindNumeric, Required: true, Aliases: []string{"beg_time_round"}},
		{Name: "end", Kind: KindNumeric, Required: true, Aliases: []string{"end_time_round"}},
		{Name: "sponsor", Kind: KindText, Required: true},
		{Name: "type", Kind: KindText, Required: true},
		{Name: "title", Kind: KindText, Required: true, Aliases: []string{"session"}},
		{Name: "location", Kind: KindText, Required: true},
		{Name: "url", Kind: KindText, Required: true},
		{Name: "fee", Kind: KindBool, Required: true, Aliases: []string{"has_fee"}},
	},
}

// Talks defines the expected columns for the talks table.
var Talks = Table{
	Key: "talks",
	Columns: []Column{
		{Name: "title", Kind: KindText, Required: true},
		{Name: "url", Kind: KindText, Required: true},
		{Name: "fee", Kind: KindBool, Required: true, Aliases: []string{"has_fee"}},
	},
}

// HeaderIndex maps column names (lowercase) to their position in a
// source header row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a source header row.
// Keys are lowercased and trimmed for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		idx[key] = i
	}
	return idx
}

// Names returns the canonical column names in contract order. Database
// sources use this to build their SELECT lists.
func (t Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the column definition for the given canonical name.
func (t Table) Lookup(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ResolveHeader validates that all required columns exist in the source
// header. Returns a mapping from canonical column name to index, or an
// error listing the missing columns. A header may use an alias spelling
// for a column; the returned index is always keyed by the canonical
// name. Extra columns in the source are tolerated and ignored.
func (t Table) ResolveHeader(header []string) (HeaderIndex, error) {
	idx := MakeHeaderIndex(header)
	var missing []string

	for _, c := range t.Columns {
		if _, ok := idx[c.Name]; !ok {
			for _, a := range c.Aliases {
				if pos, ok := idx[strings.ToLower(a)]; ok {
					idx[c.Name] = pos
					break
				}
			}
		}
		if !c.Required {
			continue
		}
		if _, ok := idx[c.Name]; !ok {
			missing = append(missing, c.Name)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required columns: %s", t.Key, strings.Join(missing, ", "))
	}

	return idx, nil
}

// KindName returns a human-readable name for a column kind.
func KindName(k ColumnKind) string {
	switch k {
	case KindText:
		return "text"
	case KindNumeric:
		return "numeric"
	case KindBool:
		return "bool"
	default:
		return "value"
	}
}
