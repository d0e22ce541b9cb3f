// Package templates holds the templ components for the dashboard views.
//
// The .templ sources are committed next to their generated _templ.go
// files; regenerate with `templ generate` after editing a source.
package templates

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/confdash/internal/core"
)

// SessionsParams carries everything the sessions page needs: the derived
// facet lists for the controls, the decoded selections so controls render
// in their submitted state, and the evaluated result.
type SessionsParams struct {
	Facets   core.Facets
	Sel      core.SessionSelections
	Query    string // raw keyword text as typed, before splitting
	RawQuery string // full query string, reused by the export link
	Result   core.SessionResult
}

// TalksParams mirrors SessionsParams for the talks page.
type TalksParams struct {
	Topics   []core.TalkTopic
	Sel      core.TalkSelections
	Query    string
	RawQuery string
	Result   core.TalkResult
}

// SessionResultsParams feeds the results fragment, which re-renders on
// every control change.
type SessionResultsParams struct {
	Result   core.SessionResult
	RawQuery string
}

// TalkResultsParams feeds the talks results fragment.
type TalkResultsParams struct {
	Result   core.TalkResult
	RawQuery string
}

// selected reports whether v is one of the currently selected values.
func selected(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// hourValue formats an hour bound for a numeric input, dropping the
// decimal point for whole hours.
func hourValue(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%d", int(h))
	}
	return fmt.Sprintf("%g", h)
}

// countLabel renders "1 session" / "12 sessions".
func countLabel(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// exportURL builds the CSV download link for the current filters.
func exportURL(view, rawQuery string) templ.SafeURL {
	u := "/api/export/" + view
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	return templ.URL(u)
}
