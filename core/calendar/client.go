package calendar

import (
	"context"
	"fmt"
)

// Client defines the capability set the sync needs from a calendar store.
// Exactly five operations; auth and session setup happen at construction.
type Client interface {
	// ListOwnedEvents lists events carrying this sync's ownership marker.
	ListOwnedEvents(ctx context.Context) ([]Event, error)
	// InsertEvent creates an event from the draft and returns its id.
	InsertEvent(ctx context.Context, d Draft) (string, error)
	// PatchEvent overwrites the mapped fields of an existing event.
	PatchEvent(ctx context.Context, eventID string, d Draft) error
	// DeleteEvent removes an event by id.
	DeleteEvent(ctx context.Context, eventID string) error
	// ClearOwnedEvents deletes every owned event and returns how many were
	// removed. Unrelated events in a shared calendar are never touched.
	ClearOwnedEvents(ctx context.Context) (int, error)
}

// AuthError reports a failure to authenticate or build the calendar session.
// It is fatal for the run and occurs before any write.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("calendar auth: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// WriteError reports a single failed write operation. The run continues;
// the next run re-proposes the change from current store state.
type WriteError struct {
	Op      string
	EventID string
	Err     error
}

func (e *WriteError) Error() string {
	if e.EventID != "" {
		return fmt.Sprintf("calendar %s %s: %v", e.Op, e.EventID, e.Err)
	}
	return fmt.Sprintf("calendar %s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
