package web

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/confdash/internal/core"
	"github.com/JonMunkholm/confdash/internal/logging"
	"github.com/JonMunkholm/confdash/internal/web/templates"
)

// sessionSelections decodes the query and applies the bare-visit rule
// shared by the page, the JSON API, and the export: a request with no
// query string at all preselects the default day, while a query that
// merely lacks day values means the visitor cleared every day and the
// view stays pending.
func (s *Server) sessionSelections(r *http.Request) (core.SessionSelections, error) {
	sel, err := decodeSessionSelections(r.URL.Query())
	if err != nil {
		return core.SessionSelections{}, err
	}
	if firstVisit(r) {
		sel.Days = []string{s.service.DefaultDay(time.Now())}
	}
	return sel, nil
}

// handleSessionsPage renders the sessions view. HTMX control changes
// re-render only the results fragment; plain requests get the full page.
func (s *Server) handleSessionsPage(w http.ResponseWriter, r *http.Request) {
	sel, err := s.sessionSelections(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	res, err := s.service.Sessions(sel)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	logging.FromContext(r.Context()).Debug("sessions view",
		"days", sel.Days,
		"ready", res.Ready,
		"rows", len(res.Rows),
	)

	if isHTMX(r) {
		templates.SessionResults(templates.SessionResultsParams{
			Result:   res,
			RawQuery: r.URL.RawQuery,
		}).Render(r.Context(), w)
		return
	}

	templates.SessionsPage(templates.SessionsParams{
		Facets:   s.service.Facets(),
		Sel:      sel,
		Query:    r.URL.Query().Get("q"),
		RawQuery: r.URL.RawQuery,
		Result:   res,
	}).Render(r.Context(), w)
}

// handleTalksPage renders the talks view with the same full/fragment
// split as the sessions view.
func (s *Server) handleTalksPage(w http.ResponseWriter, r *http.Request) {
	sel := decodeTalkSelections(r.URL.Query())

	res, err := s.service.Talks(sel)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	logging.FromContext(r.Context()).Debug("talks view",
		"topics", sel.Topics,
		"rows", len(res.Rows),
	)

	if isHTMX(r) {
		templates.TalkResults(templates.TalkResultsParams{
			Result:   res,
			RawQuery: r.URL.RawQuery,
		}).Render(r.Context(), w)
		return
	}

	templates.TalksPage(templates.TalksParams{
		Topics:   s.service.Topics(),
		Sel:      sel,
		Query:    r.URL.Query().Get("q"),
		RawQuery: r.URL.RawQuery,
		Result:   res,
	}).Render(r.Context(), w)
}

// handleAboutPage serves the markdown page rendered at startup.
func (s *Server) handleAboutPage(w http.ResponseWriter, r *http.Request) {
	templates.AboutPage(s.aboutHTML).Render(r.Context(), w)
}

// handleHealth reports liveness plus a snapshot summary.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	meta := s.service.Meta(time.Now())
	writeJSON(w, map[string]interface{}{
		"status":      "ok",
		"snapshot_id": meta.SnapshotID,
		"loaded_at":   meta.LoadedAt,
		"sessions":    meta.SessionCount,
		"talks":       meta.TalkCount,
	})
}

// handleAPISessions serves the sessions view as JSON.
func (s *Server) handleAPISessions(w http.ResponseWriter, r *http.Request) {
	sel, err := s.sessionSelections(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	res, err := s.service.Sessions(sel)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, res)
}

// handleAPITalks serves the talks view as JSON.
func (s *Server) handleAPITalks(w http.ResponseWriter, r *http.Request) {
	res, err := s.service.Talks(decodeTalkSelections(r.URL.Query()))
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, res)
}

// facetsResponse bundles the derived session facets with the fixed
// talk topics.
type facetsResponse struct {
	core.Facets
	Topics []core.TalkTopic `json:"topics"`
}

// handleAPIFacets returns the selectable filter choices for both views.
func (s *Server) handleAPIFacets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, facetsResponse{
		Facets: s.service.Facets(),
		Topics: s.service.Topics(),
	})
}

// handleAPIMeta returns the snapshot summary.
func (s *Server) handleAPIMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.service.Meta(time.Now()))
}

// handleExport downloads the filtered rows of either view as CSV,
// driven by the same query parameters the views use.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	view := chi.URLParam(r, "view")

	switch view {
	case "sessions":
		sel, err := s.sessionSelections(r)
		if err != nil {
			s.respondError(w, r, err, http.StatusBadRequest)
			return
		}
		res, err := s.service.Sessions(sel)
		if err != nil {
			s.respondError(w, r, err, http.StatusBadRequest)
			return
		}
		writeSessionsCSV(w, res)

	case "talks":
		res, err := s.service.Talks(decodeTalkSelections(r.URL.Query()))
		if err != nil {
			s.respondError(w, r, err, http.StatusBadRequest)
			return
		}
		writeTalksCSV(w, res)

	default:
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown export view %q", view))
	}
}

func writeSessionsCSV(w http.ResponseWriter, res core.SessionResult) {
	setCSVHeaders(w, "sessions")

	csvWriter := csv.NewWriter(w)
	csvWriter.Write([]string{"when", "title", "url", "location", "type", "sponsor"})
	for _, row := range res.Rows {
		csvWriter.Write([]string{row.When, row.Title, row.URL, row.Location, row.Type, row.Sponsor})
	}
	csvWriter.Flush()
}

func writeTalksCSV(w http.ResponseWriter, res core.TalkResult) {
	setCSVHeaders(w, "talks")

	csvWriter := csv.NewWriter(w)
	csvWriter.Write([]string{"title", "url"})
	for _, row := range res.Rows {
		csvWriter.Write([]string{row.Title, row.URL})
	}
	csvWriter.Flush()
}

// setCSVHeaders marks the response as a timestamped CSV download.
func setCSVHeaders(w http.ResponseWriter, view string) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.csv", view, timestamp)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
}
