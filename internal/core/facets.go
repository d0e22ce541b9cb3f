package core

import (
	"sort"
	"strings"
)

// sponsorSeparator joins multiple sponsor names inside one raw cell.
const sponsorSeparator = ", "

// typeOther is the catch-all type bucket, always offered as the last
// selectable type even when no row carries it.
const typeOther = "Other"

// ExtractFacets derives the selectable filter choices from the sessions
// table. Called once at startup; the result is immutable afterwards.
func ExtractFacets(sessions []Session) Facets {
	return Facets{
		Days:     DayCodes(),
		Sponsors: SponsorFacet(sessions),
		Types:    TypeFacet(sessions),
	}
}

// SponsorFacet decomposes the raw sponsor column into the deduplicated,
// sorted list of atomic sponsor names. Cells holding several names joined
// by ", " are split apart; a single-name cell is a no-op split.
func SponsorFacet(sessions []Session) []string {
	cells := make([]string, 0, len(sessions))
	for _, s := range sessions {
		cells = append(cells, s.Sponsor)
	}

	seen := make(map[string]bool)
	var names []string
	for _, name := range strings.Split(strings.Join(cells, sponsorSeparator), sponsorSeparator) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// TypeFacet collects the distinct session-type labels and orders them by
// display priority: Invited-prefixed first, then Topic-prefixed, then
// Contributed-prefixed, then the remainder, each bucket sorted ascending,
// with the literal "Other" appended unconditionally last. The prefix test
// is case-sensitive. Empty cells yield no selectable label and are
// skipped; such rows stay reachable because an empty type selection
// matches every row. This ordering is a display contract; do not replace
// it with a plain sort.
func TypeFacet(sessions []Session) []string {
	seen := make(map[string]bool)
	var invited, topic, contributed, rest []string
	for _, s := range sessions {
		t := s.Type
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		switch {
		case t == typeOther:
			// Appended last regardless of whether it occurs in the data.
		case strings.HasPrefix(t, "Invited"):
			invited = append(invited, t)
		case strings.HasPrefix(t, "Topic"):
			topic = append(topic, t)
		case strings.HasPrefix(t, "Contributed"):
			contributed = append(contributed, t)
		default:
			rest = append(rest, t)
		}
	}

	sort.Strings(invited)
	sort.Strings(topic)
	sort.Strings(contributed)
	sort.Strings(rest)

	types := make([]string, 0, len(seen)+1)
	types = append(types, invited...)
	types = append(types, topic...)
	types = append(types, contributed...)
	types = append(types, rest...)
	types = append(types, typeOther)
	return types
}
