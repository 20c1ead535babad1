// Package calendar provides an abstraction layer for the calendar store.
//
// It wraps the Google Calendar v3 API behind a five-operation Client
// interface: list owned events, insert, patch, delete, and bulk-clear owned
// events. Ownership is expressed through private extended properties stamped
// on every created event, so the sync can share a calendar with unrelated
// events and still recover its own state without a local database.
//
// # Client Interface
//
// The Client interface abstracts the provider, making it easy to mock
// calendar interactions for unit testing (see core/calendar/mocks).
//
// # Authentication
//
// NewGoogleClient authenticates with a service-account JSON key. Auth
// failures are returned as *AuthError before anything is written; individual
// write failures are *WriteError and never abort a run.
package calendar
