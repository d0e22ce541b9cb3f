package source

import (
	"strings"
	"testing"
)

func sessionRecord(overrides map[string]string) Record {
	rec := Record{
		"day":      "Fri",
		"date":     "Jul 10",
		"time":     "9:00 AM",
		"beg":      "9",
		"end":      "10",
		"sponsor":  "RStudio",
		"type":     "Invited Keynote",
		"title":    "The Future of Shiny",
		"location": "Main Hall",
		"url":      "https://example.org/s/1",
		"fee":      "FALSE",
	}
	for k, v := range overrides {
		rec[k] = v
	}
	return rec
}

// ============================================================================
// Session Parsing Tests
// ============================================================================

func TestParseSessions(t *testing.T) {
	sessions, err := ParseSessions([]Record{sessionRecord(nil)})
	if err != nil {
		t.Fatalf("ParseSessions() error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}

	s := sessions[0]
	if s.Day != "Fri" || s.Date != "Jul 10" || s.Time != "9:00 AM" {
		t.Errorf("label fields = %q/%q/%q", s.Day, s.Date, s.Time)
	}
	if s.BegHour != 9 || s.EndHour != 10 {
		t.Errorf("hours = %g..%g, want 9..10", s.BegHour, s.EndHour)
	}
	if s.HasFee {
		t.Error("FALSE fee cell should parse to false")
	}
	if s.Title != "The Future of Shiny" || s.URL != "https://example.org/s/1" {
		t.Errorf("title/url = %q/%q", s.Title, s.URL)
	}
}

func TestParseSessions_CellHandling(t *testing.T) {
	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		sessions, err := ParseSessions([]Record{sessionRecord(map[string]string{
			"day":   " Fri ",
			"title": "  Padded Title  ",
			"beg":   " 9.5 ",
		})})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sessions[0].Day != "Fri" {
			t.Errorf("day = %q, want Fri", sessions[0].Day)
		}
		if sessions[0].Title != "Padded Title" {
			t.Errorf("title = %q", sessions[0].Title)
		}
		if sessions[0].BegHour != 9.5 {
			t.Errorf("beg = %g, want 9.5", sessions[0].BegHour)
		}
	})

	t.Run("fractional hours", func(t *testing.T) {
		sessions, err := ParseSessions([]Record{sessionRecord(map[string]string{
			"beg": "8.5",
			"end": "17.25",
		})})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sessions[0].BegHour != 8.5 || sessions[0].EndHour != 17.25 {
			t.Errorf("hours = %g..%g", sessions[0].BegHour, sessions[0].EndHour)
		}
	})

	t.Run("empty sponsor cell is valid", func(t *testing.T) {
		sessions, err := ParseSessions([]Record{sessionRecord(map[string]string{"sponsor": ""})})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sessions[0].Sponsor != "" {
			t.Errorf("sponsor = %q, want empty", sessions[0].Sponsor)
		}
	})

	t.Run("zero-length session is valid", func(t *testing.T) {
		if _, err := ParseSessions([]Record{sessionRecord(map[string]string{
			"beg": "12",
			"end": "12",
		})}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestParseSessions_Errors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		wantErr   string
	}{
		{
			name:      "unknown day code",
			overrides: map[string]string{"day": "Friday"},
			wantErr:   `sessions row 1: bad value "Friday" for column "day"`,
		},
		{
			name:      "empty day cell",
			overrides: map[string]string{"day": ""},
			wantErr:   `sessions row 1: bad value "" for column "day"`,
		},
		{
			name:      "non-numeric begin hour",
			overrides: map[string]string{"beg": "nine"},
			wantErr:   `sessions row 1: bad value "nine" for column "beg"`,
		},
		{
			name:      "empty end hour",
			overrides: map[string]string{"end": ""},
			wantErr:   `sessions row 1: bad value "" for column "end"`,
		},
		{
			name:      "inverted hours",
			overrides: map[string]string{"beg": "17", "end": "9"},
			wantErr:   "sessions row 1: session begins after it ends",
		},
		{
			name:      "unrecognized fee cell",
			overrides: map[string]string{"fee": "maybe"},
			wantErr:   `sessions row 1: bad value "maybe" for column "fee"`,
		},
		{
			name:      "empty fee cell",
			overrides: map[string]string{"fee": ""},
			wantErr:   `sessions row 1: bad value "" for column "fee"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessions([]Record{sessionRecord(tt.overrides)})
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseSessions_RowNumberInError(t *testing.T) {
	records := []Record{
		sessionRecord(nil),
		sessionRecord(nil),
		sessionRecord(map[string]string{"beg": "bogus"}),
	}

	_, err := ParseSessions(records)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "sessions row 3:") {
		t.Errorf("error = %q, want it to name row 3", err)
	}
}

func TestParseSessions_OrderPreserved(t *testing.T) {
	records := []Record{
		sessionRecord(map[string]string{"title": "first"}),
		sessionRecord(map[string]string{"title": "second"}),
		sessionRecord(map[string]string{"title": "third"}),
	}

	sessions, err := ParseSessions(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if sessions[i].Title != want {
			t.Errorf("sessions[%d].Title = %q, want %q", i, sessions[i].Title, want)
		}
	}
}

func TestParseSessions_Empty(t *testing.T) {
	sessions, err := ParseSessions(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

// ============================================================================
// Talk Parsing Tests
// ============================================================================

func TestParseTalks(t *testing.T) {
	records := []Record{
		{"title": "Why R Matters", "url": "https://example.org/t/1", "fee": "no"},
		{"title": "Paid Masterclass", "url": "https://example.org/t/2", "fee": "TRUE"},
	}

	talks, err := ParseTalks(records)
	if err != nil {
		t.Fatalf("ParseTalks() error: %v", err)
	}
	if len(talks) != 2 {
		t.Fatalf("expected 2 talks, got %d", len(talks))
	}
	if talks[0].Title != "Why R Matters" || talks[0].HasFee {
		t.Errorf("talks[0] = %+v", talks[0])
	}
	if talks[1].Title != "Paid Masterclass" || !talks[1].HasFee {
		t.Errorf("talks[1] = %+v", talks[1])
	}
}

func TestParseTalks_Errors(t *testing.T) {
	records := []Record{
		{"title": "Fine", "url": "u", "fee": "false"},
		{"title": "Broken", "url": "u", "fee": "paid"},
	}

	_, err := ParseTalks(records)
	if err == nil {
		t.Fatal("expected an error")
	}
	want := `talks row 2: bad value "paid" for column "fee"`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

// ============================================================================
// Cell Conversion Tests
// ============================================================================

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		// Valid: plain and fractional numbers, surrounding whitespace.
		{name: "integer", input: "9", want: 9, wantOK: true},
		{name: "fraction", input: "8.5", want: 8.5, wantOK: true},
		{name: "whitespace", input: " 17.25 ", want: 17.25, wantOK: true},
		{name: "zero", input: "0", want: 0, wantOK: true},

		// Invalid: anything strconv rejects.
		{name: "empty", input: "", wantOK: false},
		{name: "words", input: "nine", wantOK: false},
		{name: "trailing unit", input: "9h", wantOK: false},
		{name: "comma decimal", input: "8,5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := asFloat(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("asFloat(%q) = %g, %v, want %g, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAsBool(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   bool
		wantOK bool
	}{
		// Valid: spreadsheet spellings in any case.
		{name: "true", input: "true", want: true, wantOK: true},
		{name: "upper TRUE", input: "TRUE", want: true, wantOK: true},
		{name: "yes", input: "yes", want: true, wantOK: true},
		{name: "y", input: "y", want: true, wantOK: true},
		{name: "one", input: "1", want: true, wantOK: true},
		{name: "false", input: "false", want: false, wantOK: true},
		{name: "upper FALSE", input: "FALSE", want: false, wantOK: true},
		{name: "no", input: "no", want: false, wantOK: true},
		{name: "n", input: "n", want: false, wantOK: true},
		{name: "zero", input: "0", want: false, wantOK: true},
		{name: "whitespace", input: " t ", want: true, wantOK: true},

		// Invalid: everything else.
		{name: "empty", input: "", wantOK: false},
		{name: "maybe", input: "maybe", wantOK: false},
		{name: "numeric two", input: "2", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := asBool(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("asBool(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
