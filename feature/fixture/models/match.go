package models

import "time"

// Status is the lifecycle state of a match.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusLive      Status = "LIVE"
	StatusCompleted Status = "COMPLETED"
	StatusPostponed Status = "POSTPONED"
	StatusCancelled Status = "CANCELLED"
)

// Score is a final or running score. Present only for live and completed
// matches.
type Score struct {
	Home int
	Away int
}

// Match is the canonical match entity, rebuilt fresh from the feed on every
// run. ID is stable across fetches for the same fixture; every other field
// may change between fetches.
type Match struct {
	// ID is the stable external match identifier.
	ID string

	HomeTeam string
	AwayTeam string
	Venue    string

	// Kickoff is timezone-aware, parsed in the feed's local zone.
	Kickoff time.Time

	Status Status
	Score  *Score

	// Broadcast is the ordered list of channel names.
	Broadcast []string
	// StreamURL is the online streaming link, when a broadcast channel
	// offers one.
	StreamURL string

	TicketURL string
}
