package fixture

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"matchcal/core/feed"
	"matchcal/feature/fixture/models"

	"go.uber.org/zap"
)

// feedTimeLayout is how the feed formats kickoff timestamps, without a zone.
const feedTimeLayout = "2006-01-02 15:04:05"

// streamLinks maps broadcast channel names to their online streaming pages.
// The feed's own channel links frequently point at logo assets, so known
// channels are corrected here.
var streamLinks = map[string]string{
	"SPORTS.COM": "https://sports.com/en/slk",
}

// MalformedRecordError reports a raw feed record that cannot be normalized.
// The record is skipped and logged; the run continues with the rest.
type MalformedRecordError struct {
	MatchID int
	Field   string
	Reason  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record (match_id=%d): %s: %s", e.MatchID, e.Field, e.Reason)
}

// Normalize converts one raw feed record into a canonical Match. It is a
// pure transform: a missing match id, missing team name, or unparseable
// timestamp fails with a *MalformedRecordError instead of defaulting.
func Normalize(raw feed.RawMatch, loc *time.Location) (models.Match, error) {
	if raw.MatchID <= 0 {
		return models.Match{}, &MalformedRecordError{MatchID: raw.MatchID, Field: "match_id", Reason: "missing or non-positive"}
	}
	if strings.TrimSpace(raw.HomeTeam) == "" {
		return models.Match{}, &MalformedRecordError{MatchID: raw.MatchID, Field: "home_team", Reason: "empty"}
	}
	if strings.TrimSpace(raw.AwayTeam) == "" {
		return models.Match{}, &MalformedRecordError{MatchID: raw.MatchID, Field: "away_team", Reason: "empty"}
	}

	kickoff, err := time.ParseInLocation(feedTimeLayout, raw.MatchDate, loc)
	if err != nil {
		return models.Match{}, &MalformedRecordError{MatchID: raw.MatchID, Field: "match_date", Reason: fmt.Sprintf("want %q, got %q", feedTimeLayout, raw.MatchDate)}
	}

	m := models.Match{
		ID:        strconv.Itoa(raw.MatchID),
		HomeTeam:  strings.TrimSpace(raw.HomeTeam),
		AwayTeam:  strings.TrimSpace(raw.AwayTeam),
		Venue:     strings.TrimSpace(raw.Venue),
		Kickoff:   kickoff,
		Status:    deriveStatus(raw),
		TicketURL: raw.Link,
	}

	for _, ch := range raw.Broadcast {
		name := strings.TrimSpace(ch.Name)
		if name == "" {
			continue
		}
		m.Broadcast = append(m.Broadcast, name)
		if m.StreamURL == "" {
			if link, ok := streamLinks[strings.ToUpper(name)]; ok {
				m.StreamURL = link
			}
		}
	}

	if m.Status == models.StatusLive || m.Status == models.StatusCompleted {
		score, err := parseScore(raw.Result)
		if err != nil {
			return models.Match{}, &MalformedRecordError{MatchID: raw.MatchID, Field: "result", Reason: err.Error()}
		}
		m.Score = score
	}

	return m, nil
}

// NormalizeAll normalizes a fetched batch, dropping and logging malformed
// records. It returns the valid matches in feed order and the rejected count.
func NormalizeAll(raws []feed.RawMatch, loc *time.Location, logger *zap.Logger) ([]models.Match, int) {
	matches := make([]models.Match, 0, len(raws))
	malformed := 0

	for i, raw := range raws {
		m, err := Normalize(raw, loc)
		if err != nil {
			malformed++
			logger.Warn("skipping malformed feed record",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		matches = append(matches, m)
	}

	return matches, malformed
}

// deriveStatus maps the feed's integer flags onto the lifecycle enum.
// Cancellation and postponement win regardless of the other flags.
func deriveStatus(raw feed.RawMatch) models.Status {
	switch {
	case raw.IsCancel.Bool():
		return models.StatusCancelled
	case raw.IsPostponed.Bool():
		return models.StatusPostponed
	case raw.Completed.Bool():
		return models.StatusCompleted
	case raw.IsStarted.Bool():
		return models.StatusLive
	default:
		return models.StatusScheduled
	}
}

// parseScore parses the feed's "X - Y" result string. An empty result is
// fine (a live match may not have one yet); a present but unparseable one is
// not.
func parseScore(result string) (*models.Score, error) {
	result = strings.TrimSpace(result)
	if result == "" {
		return nil, nil
	}

	parts := strings.SplitN(result, "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("want \"X - Y\", got %q", result)
	}

	home, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("want \"X - Y\", got %q", result)
	}
	away, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("want \"X - Y\", got %q", result)
	}

	return &models.Score{Home: home, Away: away}, nil
}
