package source

// parse.go converts raw source records into the domain tables.
//
// Conversion is permissive about representation and strict about meaning.
// Hours accept any numeric spelling strconv understands; booleans accept
// the usual spreadsheet spellings (true/false, yes/no, 1/0, TRUE/FALSE).
// But a cell that cannot be interpreted at all, an unknown day code, or a
// session that begins after it ends rejects the whole load: a snapshot
// with silently dropped or mangled rows would be worse than no snapshot.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JonMunkholm/confdash/internal/core"
)

// ParseSessions converts raw records into the sessions table, preserving
// source order. Row numbers in errors are 1-based data rows.
func ParseSessions(records []Record) ([]core.Session, error) {
	sessions := make([]core.Session, 0, len(records))
	for i, rec := range records {
		row := i + 1

		day := asString(rec["day"])
		if !core.IsDayCode(day) {
			return nil, badValue("sessions", row, day, "day")
		}

		beg, ok := asFloat(rec["beg"])
		if !ok {
			return nil, badValue("sessions", row, rec["beg"], "beg")
		}
		end, ok := asFloat(rec["end"])
		if !ok {
			return nil, badValue("sessions", row, rec["end"], "end")
		}
		if beg > end {
			return nil, fmt.Errorf("sessions row %d: session begins after it ends", row)
		}

		fee, ok := asBool(rec["fee"])
		if !ok {
			return nil, badValue("sessions", row, rec["fee"], "fee")
		}

		sessions = append(sessions, core.Session{
			Day:      day,
			Date:     asString(rec["date"]),
			Time:     asString(rec["time"]),
			BegHour:  beg,
			EndHour:  end,
			Sponsor:  asString(rec["sponsor"]),
			Type:     asString(rec["type"]),
			Title:    asString(rec["title"]),
			Location: asString(rec["location"]),
			URL:      asString(rec["url"]),
			HasFee:   fee,
		})
	}
	return sessions, nil
}

// ParseTalks converts raw records into the talks table, preserving
// source order.
func ParseTalks(records []Record) ([]core.Talk, error) {
	talks := make([]core.Talk, 0, len(records))
	for i, rec := range records {
		row := i + 1

		fee, ok := asBool(rec["fee"])
		if !ok {
			return nil, badValue("talks", row, rec["fee"], "fee")
		}

		talks = append(talks, core.Talk{
			Title:  asString(rec["title"]),
			URL:    asString(rec["url"]),
			HasFee: fee,
		})
	}
	return talks, nil
}

func badValue(table string, row int, raw, column string) error {
	return fmt.Errorf("%s row %d: bad value %q for column %q", table, row, raw, column)
}

// asString trims surrounding whitespace. Cell text is otherwise kept
// verbatim; it feeds both matching and display.
func asString(s string) string {
	return strings.TrimSpace(s)
}

// asFloat converts a numeric cell. Reports false for anything strconv
// cannot parse, including the empty cell.
func asFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// asBool converts a boolean cell.
// Accepts various representations: true/false, yes/no, t/f, y/n, 1/0.
func asBool(s string) (bool, bool) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "true", "t", "yes", "y", "1":
		return true, true
	case "false", "f", "no", "n", "0":
		return false, true
	default:
		return false, false
	}
}
