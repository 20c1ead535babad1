package reconcile

import "matchcal/core/calendar"

// BuildPlan diffs the desired event drafts against the currently stored
// owned events and produces the ordered change-set that brings the store in
// line with the source.
//
// The caller owns scope semantics: desired must already be filtered to the
// run's mode, and current must only contain events the mode allows touching.
// In particular, upcoming mode must not pass events for past matches, or
// they would be proposed for deletion here.
func BuildPlan(desired []calendar.Draft, current []calendar.Event) *Plan {
	byMatch := make(map[string]calendar.Event, len(current))
	duplicate := make(map[string]struct{})

	for _, ev := range current {
		prev, ok := byMatch[ev.MatchID]
		if !ok {
			byMatch[ev.MatchID] = ev
			continue
		}
		// More than one owned event for a match means a prior run was
		// interrupted between insert and list. The most recently created
		// event is canonical; the rest are flagged for deletion.
		if ev.Created.After(prev.Created) {
			byMatch[ev.MatchID] = ev
			duplicate[prev.ID] = struct{}{}
		} else {
			duplicate[ev.ID] = struct{}{}
		}
	}

	plan := &Plan{}
	desiredIDs := make(map[string]struct{}, len(desired))

	for i := range desired {
		d := desired[i]
		desiredIDs[d.MatchID] = struct{}{}

		ev, ok := byMatch[d.MatchID]
		switch {
		case !ok:
			plan.Changes = append(plan.Changes, Change{
				Kind:    OpCreate,
				MatchID: d.MatchID,
				Draft:   &desired[i],
			})
			plan.Summary.Creates++
		case d.Matches(ev):
			plan.Changes = append(plan.Changes, Change{
				Kind:    OpSkip,
				MatchID: d.MatchID,
				EventID: ev.ID,
				Reason:  "unchanged",
			})
			plan.Summary.Skips++
		default:
			plan.Changes = append(plan.Changes, Change{
				Kind:    OpUpdate,
				MatchID: d.MatchID,
				EventID: ev.ID,
				Draft:   &desired[i],
			})
			plan.Summary.Updates++
		}
	}

	// Deletions go last, in stored order.
	for _, ev := range current {
		if _, dup := duplicate[ev.ID]; dup {
			plan.Changes = append(plan.Changes, Change{
				Kind:    OpDelete,
				MatchID: ev.MatchID,
				EventID: ev.ID,
				Reason:  "duplicate",
			})
			plan.Summary.Deletes++
			continue
		}
		if _, ok := desiredIDs[ev.MatchID]; !ok {
			plan.Changes = append(plan.Changes, Change{
				Kind:    OpDelete,
				MatchID: ev.MatchID,
				EventID: ev.ID,
				Reason:  "orphaned",
			})
			plan.Summary.Deletes++
		}
	}

	return plan
}
