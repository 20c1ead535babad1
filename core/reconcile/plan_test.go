package reconcile_test

import (
	"fmt"
	"testing"
	"time"

	"matchcal/core/calendar"
	"matchcal/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kickoff = time.Date(2025, 11, 2, 19, 30, 0, 0, time.UTC)

func draft(matchID, title string, start time.Time) calendar.Draft {
	return calendar.Draft{
		MatchID:     matchID,
		Title:       title,
		Start:       start,
		End:         start.Add(2 * time.Hour),
		Description: "Venue: EMS Stadium",
		Location:    "EMS Stadium",
	}
}

func eventFor(d calendar.Draft, eventID string, created time.Time) calendar.Event {
	return calendar.Event{
		ID:          eventID,
		MatchID:     d.MatchID,
		Created:     created,
		Title:       d.Title,
		Start:       d.Start,
		End:         d.End,
		Description: d.Description,
		Location:    d.Location,
	}
}

func TestBuildPlan_CreateUpdateSkip(t *testing.T) {
	a := draft("1", "A vs B", kickoff)
	b := draft("2", "C vs D (FT 2-1)", kickoff.Add(-72*time.Hour))

	// A exists but with a stale kickoff; B has no event yet.
	stale := eventFor(a, "evt-a", kickoff.Add(-time.Hour))
	stale.Start = a.Start.Add(30 * time.Minute)
	stale.End = a.End.Add(30 * time.Minute)

	plan := reconcile.BuildPlan([]calendar.Draft{a, b}, []calendar.Event{stale})

	require.Len(t, plan.Changes, 2)
	assert.Equal(t, reconcile.OpUpdate, plan.Changes[0].Kind)
	assert.Equal(t, "evt-a", plan.Changes[0].EventID)
	assert.Equal(t, reconcile.OpCreate, plan.Changes[1].Kind)
	assert.Equal(t, "2", plan.Changes[1].MatchID)
	assert.Equal(t, 1, plan.Summary.Creates)
	assert.Equal(t, 1, plan.Summary.Updates)
}

func TestBuildPlan_Idempotent(t *testing.T) {
	a := draft("1", "A vs B", kickoff)
	b := draft("2", "C vs D", kickoff.Add(24*time.Hour))

	current := []calendar.Event{
		eventFor(a, "evt-a", kickoff),
		eventFor(b, "evt-b", kickoff),
	}

	plan := reconcile.BuildPlan([]calendar.Draft{a, b}, current)

	assert.True(t, plan.Summary.Empty())
	assert.Equal(t, 2, plan.Summary.Skips)
	for _, change := range plan.Changes {
		assert.Equal(t, reconcile.OpSkip, change.Kind)
		assert.Equal(t, "unchanged", change.Reason)
	}
}

// TestBuildPlan_Converges applies the plan to a simulated store and verifies
// that re-planning against the resulting state is all-skip.
func TestBuildPlan_Converges(t *testing.T) {
	desired := []calendar.Draft{
		draft("1", "A vs B", kickoff),
		draft("2", "C vs D", kickoff.Add(24*time.Hour)),
		draft("3", "E vs F", kickoff.Add(48*time.Hour)),
	}

	// Store state: one stale event, one orphan, one match missing.
	stale := eventFor(desired[0], "evt-1", kickoff)
	stale.Title = "old title"
	store := map[string]calendar.Event{
		"evt-1": stale,
		"evt-9": eventFor(draft("9", "gone", kickoff), "evt-9", kickoff),
	}

	plan := reconcile.BuildPlan(desired, storeEvents(store))
	applyToStore(store, plan)

	second := reconcile.BuildPlan(desired, storeEvents(store))
	assert.True(t, second.Summary.Empty(), "second run must be all-skip, got %+v", second.Summary)
	assert.Equal(t, len(desired), second.Summary.Skips)
}

func storeEvents(store map[string]calendar.Event) []calendar.Event {
	events := make([]calendar.Event, 0, len(store))
	for _, ev := range store {
		events = append(events, ev)
	}
	return events
}

func applyToStore(store map[string]calendar.Event, plan *reconcile.Plan) {
	n := 0
	for _, change := range plan.Changes {
		switch change.Kind {
		case reconcile.OpCreate:
			n++
			id := fmt.Sprintf("new-%d", n)
			store[id] = eventFor(*change.Draft, id, time.Now())
		case reconcile.OpUpdate:
			store[change.EventID] = eventFor(*change.Draft, change.EventID, store[change.EventID].Created)
		case reconcile.OpDelete:
			delete(store, change.EventID)
		}
	}
}

func TestBuildPlan_DeletesOrphansLast(t *testing.T) {
	a := draft("1", "A vs B", kickoff)
	orphan := eventFor(draft("9", "gone", kickoff), "evt-9", kickoff)

	plan := reconcile.BuildPlan([]calendar.Draft{a}, []calendar.Event{orphan, eventFor(a, "evt-a", kickoff)})

	require.Len(t, plan.Changes, 2)
	assert.Equal(t, reconcile.OpSkip, plan.Changes[0].Kind)
	assert.Equal(t, reconcile.OpDelete, plan.Changes[1].Kind)
	assert.Equal(t, "orphaned", plan.Changes[1].Reason)
	assert.Equal(t, "evt-9", plan.Changes[1].EventID)
}

func TestBuildPlan_FullRefreshDegeneratesToCreates(t *testing.T) {
	desired := []calendar.Draft{
		draft("1", "A vs B", kickoff),
		draft("2", "C vs D", kickoff),
		draft("3", "E vs F", kickoff),
	}

	// Full refresh: the executor cleared the calendar, so prior state is empty.
	plan := reconcile.BuildPlan(desired, nil)

	require.Len(t, plan.Changes, 3)
	for i, change := range plan.Changes {
		assert.Equal(t, reconcile.OpCreate, change.Kind)
		assert.Equal(t, desired[i].MatchID, change.MatchID)
	}
	assert.Equal(t, 3, plan.Summary.Creates)
	assert.Equal(t, 0, plan.Summary.Deletes)
}

func TestBuildPlan_DuplicateEventsNewestWins(t *testing.T) {
	a := draft("1", "A vs B", kickoff)

	older := eventFor(a, "evt-old", kickoff.Add(-2*time.Hour))
	newer := eventFor(a, "evt-new", kickoff.Add(-1*time.Hour))

	plan := reconcile.BuildPlan([]calendar.Draft{a}, []calendar.Event{older, newer})

	require.Len(t, plan.Changes, 2)
	// The newest event is canonical and unchanged; the older one goes.
	assert.Equal(t, reconcile.OpSkip, plan.Changes[0].Kind)
	assert.Equal(t, "evt-new", plan.Changes[0].EventID)
	assert.Equal(t, reconcile.OpDelete, plan.Changes[1].Kind)
	assert.Equal(t, "evt-old", plan.Changes[1].EventID)
	assert.Equal(t, "duplicate", plan.Changes[1].Reason)
}

func TestBuildPlan_ScoreTransitionUpdatesOnlyThatMatch(t *testing.T) {
	a := draft("1", "A vs B (FT 2-1)", kickoff)
	b := draft("2", "C vs D", kickoff.Add(24*time.Hour))

	scheduled := a
	scheduled.Title = "A vs B"
	current := []calendar.Event{
		eventFor(scheduled, "evt-a", kickoff),
		eventFor(b, "evt-b", kickoff),
	}

	plan := reconcile.BuildPlan([]calendar.Draft{a, b}, current)

	require.Len(t, plan.Changes, 2)
	assert.Equal(t, reconcile.OpUpdate, plan.Changes[0].Kind)
	assert.Equal(t, "A vs B (FT 2-1)", plan.Changes[0].Draft.Title)
	assert.Equal(t, reconcile.OpSkip, plan.Changes[1].Kind)
	assert.Equal(t, 1, plan.Summary.Updates)
	assert.Equal(t, 1, plan.Summary.Skips)
}
