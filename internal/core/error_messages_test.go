package core

import (
	"errors"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "missing file maps correctly",
			err:         errors.New("open data/sessions.csv: no such file or directory"),
			wantCode:    "DAT001",
			wantMessage: "A source file is missing",
		},
		{
			name:        "unreadable file maps correctly",
			err:         errors.New("open data/talks.csv: permission denied"),
			wantCode:    "DAT001",
			wantMessage: "A source file is not readable",
		},
		{
			name:        "schema mismatch maps correctly",
			err:         errors.New("sessions: missing required columns: beg, end"),
			wantCode:    "DAT002",
			wantMessage: "A source table is missing required columns",
		},
		{
			name:        "malformed cell maps correctly",
			err:         errors.New(`sessions row 12: bad value "nine" for column "beg"`),
			wantCode:    "DAT003",
			wantMessage: "A source cell could not be interpreted",
		},
		{
			name:        "inverted session range maps correctly",
			err:         errors.New("sessions row 4: session begins after it ends"),
			wantCode:    "DAT003",
			wantMessage: "A session's time range is inverted",
		},
		{
			name:        "connection refused maps correctly",
			err:         errors.New("dial tcp 127.0.0.1:5432: connection refused"),
			wantCode:    "DAT004",
			wantMessage: "The source database refused the connection",
		},
		{
			name:        "unsupported locator maps correctly",
			err:         errors.New(`unsupported source "ftp://host/sessions"`),
			wantCode:    "DAT005",
			wantMessage: "No source kind claims this locator",
		},
		{
			name:        "unknown day maps correctly",
			err:         errors.New(`unknown day code "Xyz"`),
			wantCode:    "VAL001",
			wantMessage: "Unknown day code",
		},
		{
			name:        "inverted window maps correctly",
			err:         errors.New("invalid time window: 18 after 9"),
			wantCode:    "VAL002",
			wantMessage: "The time window is inverted",
		},
		{
			name:        "non-numeric hour maps correctly",
			err:         errors.New(`invalid hour "noon"`),
			wantCode:    "VAL002",
			wantMessage: "An hour value is not numeric",
		},
		{
			name:        "cancellation maps correctly",
			err:         errors.New("context canceled"),
			wantCode:    "REQ001",
			wantMessage: "Request was cancelled",
		},
		{
			name:        "timeout maps correctly",
			err:         errors.New("context deadline exceeded"),
			wantCode:    "REQ002",
			wantMessage: "Request timed out",
		},
		{
			name:        "rate limit maps correctly",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("NO SUCH FILE or directory"),
			wantCode:    "DAT001",
			wantMessage: "A source file is missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	err := errors.New(`unknown day code "Xyz"`)
	result := FormatUserError(err)

	expected := "Unknown day code (Code: VAL001). Pick days from the day selector"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error is not user facing",
			err:  nil,
			want: false,
		},
		{
			name: "known error is user facing",
			err:  errors.New("unknown day code"),
			want: true,
		},
		{
			name: "unknown error is not user facing",
			err:  errors.New("random internal error xyz"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUserFacing(tt.err)
			if got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}
