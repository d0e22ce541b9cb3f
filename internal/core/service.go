package core

import (
	"errors"
	"time"
)

// dateOnly is the wire/display format for the conference start date.
const dateOnly = "2006-01-02"

// Service wires the immutable snapshot, the derived facet lists, and the
// filter engines into one entry point for transports. It holds no mutable
// state after construction, so a single instance serves every request
// concurrently without locking.
type Service struct {
	snapshot *Snapshot
	facets   Facets
	start    time.Time // conference start date, midnight UTC
}

// NewService derives the facet lists from the snapshot and returns the
// ready-to-serve instance. The snapshot must already have passed the
// loader's schema and row-invariant checks.
func NewService(snapshot *Snapshot, conferenceStart time.Time) (*Service, error) {
	if snapshot == nil {
		return nil, errors.New("nil snapshot")
	}
	return &Service{
		snapshot: snapshot,
		facets:   ExtractFacets(snapshot.Sessions),
		start:    conferenceStart,
	}, nil
}

// Snapshot returns the loaded reference tables. Callers must treat the
// slices as read-only.
func (s *Service) Snapshot() *Snapshot {
	return s.snapshot
}

// Facets returns the filter choices derived at construction.
func (s *Service) Facets() Facets {
	return s.facets
}

// Topics returns the fixed keyword choices for the talks view.
func (s *Service) Topics() []TalkTopic {
	return TalkTopics()
}

// DefaultDay returns the day code the sessions view preselects when the
// request carries no day at all, computed against the conference start.
func (s *Service) DefaultDay(now time.Time) string {
	return DefaultDay(now, s.start)
}

// Sessions validates the selections and evaluates the sessions view.
func (s *Service) Sessions(sel SessionSelections) (SessionResult, error) {
	if err := ValidateSessionSelections(sel); err != nil {
		return SessionResult{}, err
	}
	return FilterSessions(s.snapshot.Sessions, sel), nil
}

// Talks validates the selections and evaluates the talks view.
func (s *Service) Talks(sel TalkSelections) (TalkResult, error) {
	if err := ValidateTalkSelections(sel); err != nil {
		return TalkResult{}, err
	}
	return FilterTalks(s.snapshot.Talks, sel), nil
}

// Meta summarizes the snapshot for the metadata endpoint and the check
// command.
func (s *Service) Meta(now time.Time) Meta {
	return Meta{
		SnapshotID:      s.snapshot.ID.String(),
		LoadedAt:        s.snapshot.LoadedAt,
		SessionsKind:    s.snapshot.SessionsKind,
		TalksKind:       s.snapshot.TalksKind,
		SessionCount:    len(s.snapshot.Sessions),
		TalkCount:       len(s.snapshot.Talks),
		ConferenceStart: s.start.Format(dateOnly),
		DefaultDay:      s.DefaultDay(now),
	}
}
