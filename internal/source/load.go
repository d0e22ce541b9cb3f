package source

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/confdash/internal/core"
	"github.com/JonMunkholm/confdash/internal/logging"
	"github.com/JonMunkholm/confdash/internal/schema"
)

// Config tells the loader where the two reference tables live.
type Config struct {
	Sessions string        // sessions table locator
	Talks    string        // talks table locator
	Timeout  time.Duration // per-table read deadline, 0 means none
}

// Load reads both reference tables and assembles the immutable snapshot
// the rest of the process serves from. Any failure aborts the whole
// load; there is no partial snapshot.
func Load(ctx context.Context, cfg Config) (*core.Snapshot, error) {
	sessionsKind, sessionRecords, err := readTable(ctx, cfg.Sessions, schema.Sessions, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	sessions, err := ParseSessions(sessionRecords)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Sessions, err)
	}

	talksKind, talkRecords, err := readTable(ctx, cfg.Talks, schema.Talks, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	talks, err := ParseTalks(talkRecords)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Talks, err)
	}

	return &core.Snapshot{
		ID:           uuid.New(),
		LoadedAt:     time.Now().UTC(),
		Sessions:     sessions,
		Talks:        talks,
		SessionsKind: sessionsKind,
		TalksKind:    talksKind,
	}, nil
}

// readTable resolves the locator to a source kind and reads the raw
// records under the configured deadline.
func readTable(ctx context.Context, locator string, table schema.Table, timeout time.Duration) (string, []Record, error) {
	kind, err := Resolve(locator)
	if err != nil {
		return "", nil, err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger := logging.WithFields(ctx, "table", table.Key, "source", kind.Name)
	start := time.Now()

	records, err := kind.Read(ctx, locator, table)
	if err != nil {
		return "", nil, fmt.Errorf("load %s: %w", locator, err)
	}

	logger.Debug("table read", "rows", len(records), "duration", time.Since(start))
	return kind.Name, records, nil
}
