// Package reconcile is the diff engine at the heart of the sync.
//
// BuildPlan compares the desired calendar state (event drafts mapped from the
// in-scope matches) against the currently stored owned events and produces an
// ordered change-set of create, update, delete, and skip entries. Apply
// executes that change-set against the calendar store with per-item failure
// isolation.
//
// # Convergence
//
// The engine is deliberately stateless between runs: the stored events'
// embedded match identity is the only persisted state. A run that fails or
// is terminated part-way leaves the store in a shape the next run simply
// re-diffs, so repeated runs converge without transactions or retries.
// Applying a plan and re-planning against the resulting store state always
// degenerates to all-skip.
//
// # Determinism
//
// Change order follows the input match order with deletions appended last.
// Two runs over identical inputs produce identical plans and identical logs.
package reconcile
