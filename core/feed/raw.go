package feed

import (
	"fmt"
	"strconv"
	"strings"
)

// Flag is a loose boolean as the feed delivers it. Most records carry 0/1
// numbers, but quoted numbers and bare booleans show up too, so unmarshalling
// coerces all of them instead of failing the whole batch.
type Flag int

func (f *Flag) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	switch strings.ToLower(s) {
	case "", "null", "false":
		*f = 0
		return nil
	case "true":
		*f = 1
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("flag: cannot parse %s", string(data))
	}
	*f = Flag(n)
	return nil
}

// Bool reports whether the flag is raised.
func (f Flag) Bool() bool { return f == 1 }

// RawChannel is a broadcast channel entry as delivered by the feed.
type RawChannel struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
	Link string `json:"link"`
}

// RawMatch is one match record exactly as delivered by the feed.
// Field validation happens in the normalizer, not here; a record that
// unmarshals is not necessarily well-formed.
type RawMatch struct {
	MatchID  int    `json:"match_id"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`

	// MatchDate is the kickoff timestamp, "2006-01-02 15:04:05" in the
	// feed's local timezone.
	MatchDate string `json:"match_date"`

	Venue string `json:"venue"`
	// Link is the ticket purchase URL, empty when sales are closed.
	Link string `json:"link"`

	// Lifecycle flags.
	Completed   Flag `json:"completed"`
	IsStarted   Flag `json:"is_started"`
	IsCancel    Flag `json:"is_cancel"`
	IsPostponed Flag `json:"is_postponed"`

	// Result is the score as "X - Y", only meaningful once started.
	Result string `json:"result"`

	Broadcast []RawChannel `json:"broadcast"`
}
