package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"matchcal/feature/fixture"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchAll bool

// watchCmd runs sync on a cron schedule until interrupted.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run sync periodically on the configured schedule",
	Long: `Runs the sync on the cron schedule from SYNC_SCHEDULE (default every 30
minutes) until SIGINT or SIGTERM. Overlapping runs are skipped, never queued,
so a slow run cannot race a later one against the calendar.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchAll, "all", false, "Sync all matches each run instead of only upcoming ones")

	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, l, cfg, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer l.Sync()

	mode := fixture.ModeUpcoming
	if watchAll {
		mode = fixture.ModeAll
	}

	// The calendar store assumes a single writer per run; skipping an
	// overlapping invocation keeps that true without locking.
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err = c.AddFunc(cfg.Sync.Schedule, func() {
		result, err := svc.Run(ctx, mode, false)
		if err != nil {
			l.Error("scheduled run failed", zap.Error(err))
			return
		}
		printRunSummary(l, result)
	})
	if err != nil {
		return err
	}

	l.Info("watch started",
		zap.String("schedule", cfg.Sync.Schedule),
		zap.String("mode", mode.String()))
	c.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	l.Info("watch stopping")
	<-c.Stop().Done()
	return nil
}
