package core

import (
	"strings"
	"testing"
)

// ============================================================================
// Session Selection Validation Tests
// ============================================================================

func TestValidateSessionSelections(t *testing.T) {
	tests := []struct {
		name    string
		sel     SessionSelections
		wantErr string
	}{
		// Valid: anything the control surface can actually produce.
		{
			name: "default selections",
			sel:  SessionSelections{Days: []string{"Sat"}, Lo: 7, Hi: 23},
		},
		{
			name: "all days and full clock",
			sel:  SessionSelections{Days: DayCodes(), Lo: 0, Hi: 24},
		},
		{
			name: "no days selected is not an error",
			sel:  SessionSelections{Lo: 7, Hi: 23},
		},
		{
			name: "equal bounds are a valid degenerate window",
			sel:  SessionSelections{Days: []string{"Fri"}, Lo: 12, Hi: 12},
		},
		{
			name: "unknown sponsors and types pass through",
			sel: SessionSelections{
				Days:     []string{"Fri"},
				Lo:       7,
				Hi:       23,
				Sponsors: []string{"Initech"},
				Types:    []string{"Plenary"},
			},
		},

		// Invalid: values only a hand-edited URL can carry.
		{
			name:    "unknown day code",
			sel:     SessionSelections{Days: []string{"Friday"}, Lo: 7, Hi: 23},
			wantErr: `unknown day code "Friday"`,
		},
		{
			name:    "lower-case day code",
			sel:     SessionSelections{Days: []string{"fri"}, Lo: 7, Hi: 23},
			wantErr: `unknown day code "fri"`,
		},
		{
			name:    "one bad day among good ones",
			sel:     SessionSelections{Days: []string{"Fri", "Xyz", "Sat"}, Lo: 7, Hi: 23},
			wantErr: `unknown day code "Xyz"`,
		},
		{
			name:    "inverted time window",
			sel:     SessionSelections{Days: []string{"Fri"}, Lo: 18, Hi: 9},
			wantErr: "invalid time window: 18 after 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionSelections(tt.sel)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSessionSelections_ErrorsMapToCodes(t *testing.T) {
	// The validation error texts must land on the VAL codes so handlers
	// can surface them without extra wiring.
	tests := []struct {
		name     string
		sel      SessionSelections
		wantCode string
	}{
		{
			name:     "unknown day maps to VAL001",
			sel:      SessionSelections{Days: []string{"Xyz"}, Lo: 7, Hi: 23},
			wantCode: "VAL001",
		},
		{
			name:     "inverted window maps to VAL002",
			sel:      SessionSelections{Days: []string{"Fri"}, Lo: 23, Hi: 7},
			wantCode: "VAL002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionSelections(tt.sel)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if got := MapError(err).Code; got != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

// ============================================================================
// Talk Selection Validation Tests
// ============================================================================

func TestValidateTalkSelections(t *testing.T) {
	tests := []struct {
		name string
		sel  TalkSelections
	}{
		{
			name: "empty selections",
			sel:  TalkSelections{},
		},
		{
			name: "known topics",
			sel:  TalkSelections{Topics: []string{"r", "shiny"}},
		},
		{
			name: "unknown topic keys are tolerated",
			sel:  TalkSelections{Topics: []string{"quantum"}},
		},
		{
			name: "arbitrary keywords are tolerated",
			sel:  TalkSelections{Keywords: []string{"c++", "(unbalanced"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateTalkSelections(tt.sel); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
