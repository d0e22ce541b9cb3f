package core

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		ID:           uuid.New(),
		LoadedAt:     time.Date(2026, 7, 9, 18, 30, 0, 0, time.UTC),
		Sessions:     testSessions(),
		Talks:        testTalks(),
		SessionsKind: "csv",
		TalksKind:    "csv",
	}
}

func testService(t *testing.T) *Service {
	t.Helper()
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	svc, err := NewService(testSnapshot(), start)
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}
	return svc
}

// ============================================================================
// Construction Tests
// ============================================================================

func TestNewService_NilSnapshot(t *testing.T) {
	if _, err := NewService(nil, time.Now()); err == nil {
		t.Error("expected an error for a nil snapshot")
	}
}

func TestNewService_DerivesFacets(t *testing.T) {
	svc := testService(t)
	facets := svc.Facets()

	if !reflect.DeepEqual(facets.Days, DayCodes()) {
		t.Errorf("Days = %v, want the seven conference codes", facets.Days)
	}
	wantSponsors := []string{"Appsilon", "Microsoft", "Oracle", "RStudio"}
	if !reflect.DeepEqual(facets.Sponsors, wantSponsors) {
		t.Errorf("Sponsors = %v, want %v", facets.Sponsors, wantSponsors)
	}
	wantTypes := []string{
		"Invited Keynote",
		"Topic Panel",
		"Contributed Lightning", "Contributed Talk",
		"Workshop",
		"Other",
	}
	if !reflect.DeepEqual(facets.Types, wantTypes) {
		t.Errorf("Types = %v, want %v", facets.Types, wantTypes)
	}
}

// ============================================================================
// View Evaluation Tests
// ============================================================================

func TestService_Sessions(t *testing.T) {
	svc := testService(t)

	res, err := svc.Sessions(SessionSelections{Days: []string{"Fri"}, Lo: 7, Hi: 23})
	if err != nil {
		t.Fatalf("Sessions() error: %v", err)
	}
	want := []string{"The Future of Shiny", "Tidy Evaluation in Depth", "Production Shiny Workshop"}
	if got := sessionTitles(res.Rows); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestService_SessionsRejectsBadSelections(t *testing.T) {
	svc := testService(t)

	if _, err := svc.Sessions(SessionSelections{Days: []string{"Xyz"}, Lo: 7, Hi: 23}); err == nil {
		t.Error("expected a validation error for an unknown day code")
	}
	if _, err := svc.Sessions(SessionSelections{Days: []string{"Fri"}, Lo: 23, Hi: 7}); err == nil {
		t.Error("expected a validation error for an inverted window")
	}
}

func TestService_Talks(t *testing.T) {
	svc := testService(t)

	res, err := svc.Talks(TalkSelections{Topics: []string{"r"}})
	if err != nil {
		t.Fatalf("Talks() error: %v", err)
	}
	want := []string{"Why R Matters", "Teaching with R"}
	if got := talkTitles(res.Rows); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestService_Topics(t *testing.T) {
	svc := testService(t)

	if got, want := svc.Topics(), TalkTopics(); !reflect.DeepEqual(got, want) {
		t.Errorf("Topics() = %v, want the fixed choice table", got)
	}
}

// ============================================================================
// Metadata Tests
// ============================================================================

func TestService_DefaultDay(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "before the conference",
			now:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			want: "Sat",
		},
		{
			name: "during the conference",
			now:  time.Date(2026, 7, 11, 9, 0, 0, 0, time.UTC),
			want: "Sat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.DefaultDay(tt.now); got != tt.want {
				t.Errorf("DefaultDay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestService_Meta(t *testing.T) {
	snapshot := testSnapshot()
	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	svc, err := NewService(snapshot, start)
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}

	meta := svc.Meta(time.Date(2026, 7, 14, 12, 0, 0, 0, time.UTC))

	if meta.SnapshotID != snapshot.ID.String() {
		t.Errorf("SnapshotID = %q, want %q", meta.SnapshotID, snapshot.ID.String())
	}
	if !meta.LoadedAt.Equal(snapshot.LoadedAt) {
		t.Errorf("LoadedAt = %v, want %v", meta.LoadedAt, snapshot.LoadedAt)
	}
	if meta.SessionsKind != "csv" || meta.TalksKind != "csv" {
		t.Errorf("kinds = %q/%q, want csv/csv", meta.SessionsKind, meta.TalksKind)
	}
	if meta.SessionCount != len(snapshot.Sessions) {
		t.Errorf("SessionCount = %d, want %d", meta.SessionCount, len(snapshot.Sessions))
	}
	if meta.TalkCount != len(snapshot.Talks) {
		t.Errorf("TalkCount = %d, want %d", meta.TalkCount, len(snapshot.Talks))
	}
	if meta.ConferenceStart != "2026-07-10" {
		t.Errorf("ConferenceStart = %q, want 2026-07-10", meta.ConferenceStart)
	}
	if meta.DefaultDay != "Tue" {
		t.Errorf("DefaultDay = %q, want Tue", meta.DefaultDay)
	}
}

func TestService_SnapshotAccessor(t *testing.T) {
	snapshot := testSnapshot()
	svc, err := NewService(snapshot, time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}

	if svc.Snapshot() != snapshot {
		t.Error("Snapshot() should return the instance handed to NewService")
	}
}
