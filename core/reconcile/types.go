package reconcile

import "matchcal/core/calendar"

// OpKind represents the type of change-set entry.
type OpKind string

const (
	// OpCreate inserts a new event for a match with no owned event.
	OpCreate OpKind = "create"
	// OpUpdate rewrites an existing event whose fields drifted.
	OpUpdate OpKind = "update"
	// OpDelete removes an event whose match left the in-scope set.
	OpDelete OpKind = "delete"
	// OpSkip records a match whose event already carries the target fields.
	OpSkip OpKind = "skip"
)

// Change is one entry in a change-set. The reconciler constructs changes;
// the executor applies them and never mutates drafts or events in place.
type Change struct {
	Kind    OpKind
	MatchID string

	// EventID is the existing event, set for update, delete, and skip.
	EventID string

	// Draft holds the target fields, set for create and update.
	Draft *calendar.Draft

	// Reason explains skips ("unchanged") and deletes ("orphaned",
	// "duplicate").
	Reason string
}

// Plan is an ordered change-set plus aggregate counts. Entry order follows
// the input match order with deletions appended last, so a still-present
// match is never created or updated after its own deletion and logs stay
// reproducible across runs.
type Plan struct {
	Changes []Change
	Summary PlanSummary
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	Creates int `json:"creates"`
	Updates int `json:"updates"`
	Deletes int `json:"deletes"`
	Skips   int `json:"skips"`
}

// Empty reports whether the plan proposes no writes at all.
func (s PlanSummary) Empty() bool {
	return s.Creates == 0 && s.Updates == 0 && s.Deletes == 0
}

// Empty reports whether the plan proposes no writes at all.
func (p *Plan) Empty() bool {
	return p.Summary.Empty()
}

// Options controls how a plan is applied.
type Options struct {
	// ClearFirst bulk-deletes every owned event before applying. Used by
	// full-refresh, where the plan was built against an empty prior state.
	ClearFirst bool
	// DryRun logs what would be applied without calling the store.
	DryRun bool
}

// Outcome is the result of applying a single change.
type Outcome struct {
	Change  Change
	Applied bool
	Err     error
}

// Report summarizes an applied (or dry) run for the operator.
type Report struct {
	Cleared int
	Created int
	Updated int
	Deleted int
	Skipped int
	Failed  int

	Outcomes []Outcome
}
