package cmd

import (
	"context"
	"fmt"
	"time"

	"matchcal/core/calendar"
	"matchcal/core/config"
	"matchcal/core/feed"
	"matchcal/core/logger"
	"matchcal/feature/fixture"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	// Flags for the sync command
	syncUpcoming    bool
	syncAll         bool
	syncFullRefresh bool
	syncDryRun      bool
)

// syncCmd runs one reconciliation of the fixture feed against the calendar.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the fixture feed with the calendar once",
	Long: `Fetch the fixture feed, diff it against the calendar events owned by this
sync, and apply the resulting change-set.

Modes:
  --upcoming      sync matches that have not kicked off yet, plus live ones (default)
  --all           sync every fetched match, including completed ones
  --full-refresh  clear all owned events first, then sync every match

The run exits zero when it completes, even if individual writes failed; those
converge on the next run. A feed or auth failure exits non-zero before
anything is written.

Examples:
  # Default: upcoming matches only
  matchcal sync

  # Everything, including results of finished matches
  matchcal sync --all

  # Rebuild the calendar from scratch
  matchcal sync --full-refresh

  # Show the change-set without applying it
  matchcal sync --all --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncUpcoming, "upcoming", false, "Sync only upcoming and live matches (default)")
	syncCmd.Flags().BoolVar(&syncAll, "all", false, "Sync all matches regardless of time or status")
	syncCmd.Flags().BoolVar(&syncFullRefresh, "full-refresh", false, "Clear all owned events, then sync all matches")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Plan and report without touching the calendar")
	syncCmd.MarkFlagsMutuallyExclusive("upcoming", "all", "full-refresh")

	RootCmd.AddCommand(syncCmd)
}

func selectedMode() fixture.Mode {
	switch {
	case syncAll:
		return fixture.ModeAll
	case syncFullRefresh:
		return fixture.ModeFullRefresh
	default:
		return fixture.ModeUpcoming
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, l, _, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer l.Sync()

	result, err := svc.Run(ctx, selectedMode(), syncDryRun)
	if err != nil {
		return err
	}

	printRunSummary(l, result)
	return nil
}

// buildService wires the collaborators from configuration.
func buildService(ctx context.Context) (*fixture.Service, *zap.Logger, *config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Feed.Timezone)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid feed timezone %q: %w", cfg.Feed.Timezone, err)
	}

	feedClient := feed.NewClient(cfg.Feed)

	calClient, err := calendar.NewGoogleClient(ctx, cfg.Calendar, l)
	if err != nil {
		return nil, nil, nil, err
	}

	var limiter *rate.Limiter
	if cfg.Calendar.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Calendar.RequestsPerSecond), 1)
	}

	duration := time.Duration(cfg.Sync.EventDurationMinutes) * time.Minute

	svc := fixture.NewService(feedClient, calClient, loc, duration, limiter, l)
	return svc, l, cfg, nil
}

// printRunSummary reports run health in one log line per concern, enough for
// an operator to judge the run without reading item-level logs.
func printRunSummary(l *zap.Logger, result *fixture.RunResult) {
	l.Info("run summary",
		zap.String("run_id", result.RunID),
		zap.String("mode", result.Mode.String()),
		zap.Int("fetched", result.Fetched),
		zap.Int("malformed", result.Malformed),
		zap.Int("in_scope", result.InScope),
		zap.Int("created", result.Report.Created),
		zap.Int("updated", result.Report.Updated),
		zap.Int("deleted", result.Report.Deleted),
		zap.Int("skipped", result.Report.Skipped),
		zap.Int("failed", result.Report.Failed),
		zap.Int("cleared", result.Report.Cleared),
	)

	if result.Report.Failed > 0 {
		l.Warn("some changes failed to apply; the next run will re-propose them",
			zap.Int("failed", result.Report.Failed))
	}
}
