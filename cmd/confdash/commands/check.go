package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/confdash/internal/config"
	"github.com/JonMunkholm/confdash/internal/core"
	"github.com/JonMunkholm/confdash/internal/logging"
	"github.com/JonMunkholm/confdash/internal/source"
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and sources without serving",
		Long: `Load the configuration and both reference tables exactly as serve
would, then print a summary and exit. A non-zero exit means the
dashboard would not start.`,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	start, err := cfg.Data.StartDate()
	if err != nil {
		return err
	}

	snap, err := source.Load(context.Background(), source.Config{
		Sessions: cfg.Data.Sessions,
		Talks:    cfg.Data.Talks,
		Timeout:  cfg.Data.ConnectTimeout,
	})
	if err != nil {
		return err
	}

	service, err := core.NewService(snap, start)
	if err != nil {
		return err
	}

	meta := service.Meta(time.Now())
	facets := service.Facets()

	fmt.Println("Sources:")
	fmt.Printf("  sessions: %s (%d rows)\n", meta.SessionsKind, meta.SessionCount)
	fmt.Printf("  talks:    %s (%d rows)\n", meta.TalksKind, meta.TalkCount)
	fmt.Printf("Conference start: %s, default day today: %s\n", meta.ConferenceStart, meta.DefaultDay)
	fmt.Printf("Sponsors (%d): %s\n", len(facets.Sponsors), strings.Join(facets.Sponsors, ", "))
	fmt.Printf("Types (%d): %s\n", len(facets.Types), strings.Join(facets.Types, ", "))
	fmt.Println("OK")

	return nil
}
