package fixture

import (
	"time"

	"matchcal/core/calendar"
	"matchcal/feature/fixture/models"
)

// Mode selects which matches a run considers and how prior calendar state is
// presented to the reconciler.
type Mode string

const (
	// ModeUpcoming scopes to matches that have not kicked off yet, plus
	// live ones. The default.
	ModeUpcoming Mode = "upcoming"
	// ModeAll scopes to every fetched match regardless of time or status.
	ModeAll Mode = "all"
	// ModeFullRefresh scopes like all, but the executor clears every
	// owned event first and the reconciler sees an empty prior state.
	ModeFullRefresh Mode = "full-refresh"
)

func (m Mode) String() string { return string(m) }

// FilterMatches returns the matches in scope for the mode, preserving feed
// order.
func FilterMatches(mode Mode, matches []models.Match, now time.Time) []models.Match {
	if mode != ModeUpcoming {
		return matches
	}

	scoped := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.Status == models.StatusLive || !m.Kickoff.Before(now) {
			scoped = append(scoped, m)
		}
	}
	return scoped
}

// FilterEvents restricts the prior-event set presented to the reconciler.
// In upcoming mode only events whose match is itself in scope survive;
// events for matches that still exist upstream but fell out of scope must
// not be proposed for deletion just because they were not re-fetched.
func FilterEvents(mode Mode, events []calendar.Event, scoped []models.Match) []calendar.Event {
	if mode != ModeUpcoming {
		return events
	}

	inScope := make(map[string]struct{}, len(scoped))
	for _, m := range scoped {
		inScope[m.ID] = struct{}{}
	}

	kept := make([]calendar.Event, 0, len(events))
	for _, ev := range events {
		if _, ok := inScope[ev.MatchID]; ok {
			kept = append(kept, ev)
		}
	}
	return kept
}
