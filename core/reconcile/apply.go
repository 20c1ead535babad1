package reconcile

import (
	"context"

	"matchcal/core/calendar"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Apply executes a plan against the calendar store sequentially, in plan
// order. Each change is applied independently: a failed write is recorded as
// a failed outcome and the run continues, relying on the next run to
// re-propose whatever did not land. There is no in-run retry.
//
// The limiter gates every write call to stay inside the provider's quota; a
// nil limiter disables the gate. The returned error is non-nil only for
// scope-wide failures (context cancellation, a failed full-refresh clear),
// never for per-item ones.
func Apply(ctx context.Context, client calendar.Client, plan *Plan, limiter *rate.Limiter, logger *zap.Logger, opts Options) (*Report, error) {
	report := &Report{}

	if opts.ClearFirst {
		if opts.DryRun {
			logger.Info("dry-run: would clear all owned events")
		} else {
			if err := wait(ctx, limiter); err != nil {
				return report, err
			}
			cleared, err := client.ClearOwnedEvents(ctx)
			report.Cleared = cleared
			if err != nil {
				// Creating on top of an uncleared calendar would
				// duplicate events, so this aborts the run.
				return report, err
			}
			logger.Info("cleared owned events", zap.Int("count", cleared))
		}
	}

	for _, change := range plan.Changes {
		if change.Kind == OpSkip {
			report.Skipped++
			report.Outcomes = append(report.Outcomes, Outcome{Change: change, Applied: false})
			continue
		}

		if opts.DryRun {
			logger.Info("dry-run: would apply change",
				zap.String("op", string(change.Kind)),
				zap.String("match_id", change.MatchID),
				zap.String("event_id", change.EventID))
			report.Outcomes = append(report.Outcomes, Outcome{Change: change, Applied: false})
			continue
		}

		if err := wait(ctx, limiter); err != nil {
			return report, err
		}

		if err := applyChange(ctx, client, change); err != nil {
			report.Failed++
			report.Outcomes = append(report.Outcomes, Outcome{Change: change, Err: err})
			logger.Error("failed to apply change",
				zap.String("op", string(change.Kind)),
				zap.String("match_id", change.MatchID),
				zap.String("event_id", change.EventID),
				zap.Error(err))
			continue
		}

		switch change.Kind {
		case OpCreate:
			report.Created++
		case OpUpdate:
			report.Updated++
		case OpDelete:
			report.Deleted++
		}
		report.Outcomes = append(report.Outcomes, Outcome{Change: change, Applied: true})
	}

	return report, nil
}

func applyChange(ctx context.Context, client calendar.Client, change Change) error {
	switch change.Kind {
	case OpCreate:
		_, err := client.InsertEvent(ctx, *change.Draft)
		return err
	case OpUpdate:
		return client.PatchEvent(ctx, change.EventID, *change.Draft)
	case OpDelete:
		return client.DeleteEvent(ctx, change.EventID)
	}
	return nil
}

func wait(ctx context.Context, limiter *rate.Limiter) error {
	if limiter == nil {
		return ctx.Err()
	}
	return limiter.Wait(ctx)
}
