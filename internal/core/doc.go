// Package core provides the filtering logic for the conference program
// dashboard.
//
// This package is the heart of the dashboard, containing all domain logic
// independent of any UI or transport layer. It can be used by web handlers,
// CLI tools, or tests without modification.
//
// # Architecture
//
// The package is organized around a few key concepts:
//
//   - Snapshot: The immutable pair of reference tables (sessions, talks)
//     loaded once at startup and shared by every request.
//   - Facets: Selectable filter choices derived from the snapshot once
//     (sponsor names, bucket-ordered session types, day codes).
//   - Filter Engines: Pure functions that turn the current selections and
//     the snapshot into an ordered, decorated subset of rows.
//   - Keyword Matching: The shared conjunctive, case-insensitive
//     substring-or-regex matcher used by both views.
//
// # Filtering
//
// Each render is a pure function of (selections, snapshot). The engines
// never mutate source rows; they select matching rows in source order and
// decorate copies for display:
//
//	sel := core.SessionSelections{
//	    Days:     []string{"Fri"},
//	    Lo:       7,
//	    Hi:       23,
//	    Keywords: core.SplitKeywords("tidy, R"),
//	}
//	result := core.FilterSessions(snapshot.Sessions, sel)
//
// With no day selected the session engine does not evaluate at all; it
// returns a not-ready result so the view can stay pending instead of
// running an unconstrained query.
//
// # Matching Semantics
//
// Keywords combine conjunctively: every keyword must match the title
// (case-insensitive, each keyword a substring or regex fragment). Sponsor
// selections combine disjunctively: a session matches when any selected
// sponsor name appears as a substring of its raw sponsor cell. Empty
// selections relax to "match everything" for every facet except the day,
// which is mandatory.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - DAT001-DAT005: Data source errors (missing files, schema mismatches)
//   - VAL001-VAL002: Selection validation errors
//   - REQ001-REQ002: Request cancellation and timeouts
//   - RATE001: Rate limiting
package core
