package core

import (
	"fmt"
	"strings"
)

// FilterSessions evaluates the sessions view: it applies the current
// selections to the immutable sessions table and returns the matching
// rows, decorated, in source order. The day facet is mandatory; with no
// day selected the engine does not evaluate and the result reports not
// ready. Every other empty selection relaxes to "match everything".
//
// Predicate order follows the view contract: the fee exclusion runs
// before anything else, then day, time containment, sponsor, type, and
// finally the free-text keywords against the session title. All
// predicates combine with logical AND.
func FilterSessions(sessions []Session, sel SessionSelections) SessionResult {
	if len(sel.Days) == 0 {
		return SessionResult{Ready: false, Rows: []SessionRow{}}
	}

	days := toSet(sel.Days)
	types := toSet(sel.Types)
	keywords := NewKeywordSet(sel.Keywords)

	rows := make([]SessionRow, 0)
	for _, s := range sessions {
		if sel.ExcludeFee && s.HasFee {
			continue
		}
		if !days[s.Day] {
			continue
		}
		// Full containment: partially overlapping sessions are excluded,
		// not clipped.
		if s.BegHour < sel.Lo || s.EndHour > sel.Hi {
			continue
		}
		if len(sel.Sponsors) > 0 && !sponsorMatch(s.Sponsor, sel.Sponsors) {
			continue
		}
		if len(types) > 0 && !types[s.Type] {
			continue
		}
		if !keywords.Match(s.Title) {
			continue
		}
		rows = append(rows, decorateSession(s))
	}

	return SessionResult{Ready: true, Rows: rows}
}

// FilterTalks evaluates the talks view. The effective keyword list is the
// union of the selected fixed-choice patterns and the free-text keywords;
// the shared matcher then applies its conjunctive semantics over that
// union against the talk titles.
func FilterTalks(talks []Talk, sel TalkSelections) TalkResult {
	patterns := make([]string, 0, len(sel.Topics)+len(sel.Keywords))
	for _, key := range sel.Topics {
		if p, ok := TopicPattern(key); ok {
			patterns = append(patterns, p)
		}
	}
	patterns = append(patterns, sel.Keywords...)
	keywords := NewKeywordSet(patterns)

	rows := make([]TalkRow, 0)
	for _, t := range talks {
		if sel.ExcludeFee && t.HasFee {
			continue
		}
		if !keywords.Match(t.Title) {
			continue
		}
		rows = append(rows, TalkRow{Title: t.Title, URL: t.URL})
	}

	return TalkResult{Rows: rows}
}

// sponsorMatch reports whether any selected sponsor name appears as a
// substring of the raw sponsor cell. Disjunctive, unlike the conjunctive
// keyword matcher. A selected name that happens to be a substring of an
// unrelated sponsor's full name will match that cell too; that is the
// view's long-standing behavior.
func sponsorMatch(cell string, selected []string) bool {
	for _, name := range selected {
		if strings.Contains(cell, name) {
			return true
		}
	}
	return false
}

// decorateSession builds the display projection for one matched session.
func decorateSession(s Session) SessionRow {
	return SessionRow{
		When:     sessionWhen(s),
		Title:    s.Title,
		URL:      s.URL,
		Location: s.Location,
		Type:     s.Type,
		Sponsor:  s.Sponsor,
	}
}

// sessionWhen synthesizes the combined date/time label from the day code
// and the two display strings.
func sessionWhen(s Session) string {
	return fmt.Sprintf("%s %s, %s", s.Day, s.Date, s.Time)
}

// toSet builds a membership set from a selection list.
func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
