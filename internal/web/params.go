package web

// params.go decodes filter selections from request query parameters. The
// whole selection state round-trips through the URL (day, lo, hi, sponsor,
// type, q, nofee; talks swap the facets for topic), so sharing a link
// reproduces the exact view and the server keeps no per-browser state.

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JonMunkholm/confdash/internal/core"
)

// Hour bounds offered by the time-window controls. Requests that omit a
// bound get the full window, which matches every session.
const (
	hourMin = 7.0
	hourMax = 23.0
)

// decodeSessionSelections builds the sessions-view selections from the
// query. Day preselection for a bare first visit is the handler's call,
// not done here.
func decodeSessionSelections(q url.Values) (core.SessionSelections, error) {
	lo, err := parseHour(q.Get("lo"), hourMin)
	if err != nil {
		return core.SessionSelections{}, err
	}
	hi, err := parseHour(q.Get("hi"), hourMax)
	if err != nil {
		return core.SessionSelections{}, err
	}

	return core.SessionSelections{
		Days:       dropEmpty(q["day"]),
		Lo:         lo,
		Hi:         hi,
		Sponsors:   dropEmpty(q["sponsor"]),
		Types:      dropEmpty(q["type"]),
		Keywords:   core.SplitKeywords(q.Get("q")),
		ExcludeFee: flag(q.Get("nofee")),
	}, nil
}

// decodeTalkSelections builds the talks-view selections from the query.
// Nothing here can fail: unknown topic keys are dropped by the engine and
// free-text keywords accept any string.
func decodeTalkSelections(q url.Values) core.TalkSelections {
	return core.TalkSelections{
		Topics:     dropEmpty(q["topic"]),
		Keywords:   core.SplitKeywords(q.Get("q")),
		ExcludeFee: flag(q.Get("nofee")),
	}
}

// firstVisit reports whether the request carries no query at all, meaning
// the visitor typed or followed the bare path rather than a filtered link.
// Only then does the handler preselect the default day; a present-but-empty
// day parameter means the visitor deselected every day on purpose.
func firstVisit(r *http.Request) bool {
	return r.URL.RawQuery == ""
}

// parseHour parses one window bound, falling back to def when the
// parameter is absent. A non-numeric value is a hand-edited URL.
func parseHour(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	h, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hour %q", raw)
	}
	return h, nil
}

// flag interprets a checkbox parameter.
func flag(v string) bool {
	switch v {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// dropEmpty removes blank entries, which appear when a URL is hand-edited
// with a dangling parameter like "&day=".
func dropEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
