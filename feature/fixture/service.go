package fixture

import (
	"context"
	"time"

	"matchcal/core/calendar"
	"matchcal/core/feed"
	"matchcal/core/logger"
	"matchcal/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// FeedClient is the read-side collaborator for the fixture source.
type FeedClient interface {
	FetchMatches(ctx context.Context) ([]feed.RawMatch, error)
}

// Service orchestrates one sync run: fetch, normalize, scope, reconcile,
// apply, report.
type Service struct {
	feed     FeedClient
	cal      calendar.Client
	loc      *time.Location
	duration time.Duration
	limiter  *rate.Limiter
	logger   *zap.Logger

	now func() time.Time
}

// NewService creates a sync service.
func NewService(feedClient FeedClient, cal calendar.Client, loc *time.Location, duration time.Duration, limiter *rate.Limiter, log *zap.Logger) *Service {
	return &Service{
		feed:     feedClient,
		cal:      cal,
		loc:      loc,
		duration: duration,
		limiter:  limiter,
		logger:   log,
		now:      time.Now,
	}
}

// RunResult is the operator-facing summary of a run.
type RunResult struct {
	RunID     string
	Mode      Mode
	Fetched   int
	Malformed int
	InScope   int
	Plan      reconcile.PlanSummary
	Report    *reconcile.Report
}

// Run executes one sync in the given mode. It returns an error only for
// scope-wide failures (feed fetch, calendar auth/list, full-refresh clear),
// all of which happen before or instead of partial writes. Per-item write
// failures land in the report and resolve by next-run convergence.
func (s *Service) Run(ctx context.Context, mode Mode, dryRun bool) (*RunResult, error) {
	runID := uuid.NewString()
	l := logger.WithRunID(s.logger, runID)

	l.Info("sync run starting",
		zap.String("mode", mode.String()),
		zap.Bool("dry_run", dryRun))

	raws, err := s.feed.FetchMatches(ctx)
	if err != nil {
		return nil, err
	}

	matches, malformed := NormalizeAll(raws, s.loc, l)
	if malformed > 0 {
		l.Warn("some feed records were malformed",
			zap.Int("malformed", malformed),
			zap.Int("valid", len(matches)))
	}

	scoped := FilterMatches(mode, matches, s.now())

	var current []calendar.Event
	if mode != ModeFullRefresh {
		current, err = s.cal.ListOwnedEvents(ctx)
		if err != nil {
			return nil, err
		}
		current = FilterEvents(mode, current, scoped)
	}

	desired := make([]calendar.Draft, len(scoped))
	for i, m := range scoped {
		desired[i] = MapEvent(m, s.duration)
	}

	plan := reconcile.BuildPlan(desired, current)
	l.Info("change-set planned",
		zap.Int("in_scope", len(scoped)),
		zap.Int("prior_events", len(current)),
		zap.Int("creates", plan.Summary.Creates),
		zap.Int("updates", plan.Summary.Updates),
		zap.Int("deletes", plan.Summary.Deletes),
		zap.Int("skips", plan.Summary.Skips))

	report, err := reconcile.Apply(ctx, s.cal, plan, s.limiter, l, reconcile.Options{
		ClearFirst: mode == ModeFullRefresh,
		DryRun:     dryRun,
	})
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		RunID:     runID,
		Mode:      mode,
		Fetched:   len(raws),
		Malformed: malformed,
		InScope:   len(scoped),
		Plan:      plan.Summary,
		Report:    report,
	}

	l.Info("sync run finished",
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
		zap.Int("deleted", report.Deleted),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
		zap.Int("cleared", report.Cleared),
		zap.Int("malformed", malformed))

	return result, nil
}
