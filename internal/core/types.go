package core

import (
	"time"

	"github.com/google/uuid"
)

// Session is one scheduled conference session, read-only after load.
// Date and Time are display strings and never used for filtering; the
// rounded hours carry the filterable time range and satisfy
// BegHour <= EndHour.
type Session struct {
	Day      string  // short weekday code, one of the seven conference day codes
	Date     string  // display string for the calendar date
	Time     string  // display string for the time-of-day label
	BegHour  float64 // rounded begin hour of day, 24h scale, may be fractional
	EndHour  float64 // rounded end hour of day, 24h scale
	Sponsor  string  // raw cell; may hold several names joined by ", "
	Type     string  // session-type label
	Title    string  // display title, the keyword-search target
	Location string
	URL      string // link target for the session
	HasFee   bool   // attending requires an added fee
}

// Talk is one presentation, read-only after load.
type Talk struct {
	Title  string
	URL    string
	HasFee bool
}

// Snapshot is the immutable pair of reference tables shared by every
// request. It is assembled once at startup and never written afterwards,
// so readers need no locking.
type Snapshot struct {
	// ID identifies this loaded dataset instance in logs and metadata.
	ID uuid.UUID

	// LoadedAt is when the snapshot was assembled.
	LoadedAt time.Time

	Sessions []Session
	Talks    []Talk

	// SessionsKind and TalksKind name the source kind that produced each
	// table (csv, postgres, sqlite). The locators themselves may carry
	// credentials and are not stored here.
	SessionsKind string
	TalksKind    string
}

// SessionSelections is the per-request filter state for the sessions view.
// Empty slices mean "no constraint" for every facet except Days, which is
// mandatory. Callers populate Lo and Hi with the full 7-23 range when the
// request carries no window.
type SessionSelections struct {
	Days       []string // selected day codes; empty means not ready to filter
	Lo         float64  // window lower bound in hours
	Hi         float64  // window upper bound in hours
	Sponsors   []string // selected sponsor names from the derived facet list
	Types      []string // selected type labels from the derived facet list
	Keywords   []string // free-text keywords, already split and trimmed
	ExcludeFee bool     // drop sessions with an added fee before other filters
}

// TalkSelections is the per-request filter state for the talks view.
type TalkSelections struct {
	Topics     []string // keys of the selected fixed keyword choices
	Keywords   []string // free-text keywords, already split and trimmed
	ExcludeFee bool     // drop talks with an added fee before matching
}

// SessionRow is a decorated session for display: the fixed projection of
// columns plus a synthesized combined date/time label. Decoration never
// affects which rows matched.
type SessionRow struct {
	When     string `json:"when"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Sponsor  string `json:"sponsor"`
}

// TalkRow is a decorated talk: the title paired with its link target.
type TalkRow struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SessionResult is the outcome of one sessions-view evaluation. Ready is
// false when no day was selected; the engine did not run and Rows is
// empty.
type SessionResult struct {
	Ready bool         `json:"ready"`
	Rows  []SessionRow `json:"rows"`
}

// TalkResult is the outcome of one talks-view evaluation.
type TalkResult struct {
	Rows []TalkRow `json:"rows"`
}

// Facets holds the selectable filter choices derived from the snapshot
// once at startup. Each list contains every distinct value appearing in
// the corresponding source column, so an empty selection can safely mean
// "match everything".
type Facets struct {
	Days     []string `json:"days"`     // the seven day codes in conference-week order
	Sponsors []string `json:"sponsors"` // deduplicated, sorted atomic sponsor names
	Types    []string `json:"types"`    // type labels in priority-bucketed order
}

// Meta summarizes the loaded snapshot for the metadata endpoint and the
// check command.
type Meta struct {
	SnapshotID      string    `json:"snapshot_id"`
	LoadedAt        time.Time `json:"loaded_at"`
	SessionsKind    string    `json:"sessions_kind"`
	TalksKind       string    `json:"talks_kind"`
	SessionCount    int       `json:"session_count"`
	TalkCount       int       `json:"talk_count"`
	ConferenceStart string    `json:"conference_start"`
	DefaultDay      string    `json:"default_day"`
}
