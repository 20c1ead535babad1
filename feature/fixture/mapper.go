package fixture

import (
	"fmt"
	"strings"
	"time"

	"matchcal/core/calendar"
	"matchcal/feature/fixture/models"
)

// kickoffLayout renders the kickoff line in the event description.
const kickoffLayout = "Mon, 2 Jan 2006 15:04 MST"

// MapEvent deterministically maps a match to its target calendar fields.
// Mapping the same match twice produces an identical draft; the reconciler
// relies on that to detect no-op updates.
//
// The feed supplies no end time, so End is Kickoff plus the configured
// nominal match duration.
func MapEvent(m models.Match, duration time.Duration) calendar.Draft {
	return calendar.Draft{
		MatchID:     m.ID,
		Title:       eventTitle(m),
		Start:       m.Kickoff,
		End:         m.Kickoff.Add(duration),
		Description: eventDescription(m),
		Location:    m.Venue,
	}
}

func eventTitle(m models.Match) string {
	base := m.HomeTeam + " vs " + m.AwayTeam

	switch m.Status {
	case models.StatusCompleted:
		if m.Score != nil {
			return fmt.Sprintf("%s (FT %d-%d)", base, m.Score.Home, m.Score.Away)
		}
		return base + " (FT)"
	case models.StatusCancelled:
		return base + " (Cancelled)"
	case models.StatusPostponed:
		return base + " (Postponed)"
	default:
		return base
	}
}

// eventDescription templates the description from venue, broadcast channels,
// and ticket link. Absent optional fields are omitted, not rendered as empty
// placeholders.
func eventDescription(m models.Match) string {
	var lines []string

	if m.Venue != "" {
		lines = append(lines, "Venue: "+m.Venue)
	}
	lines = append(lines, "Kickoff: "+m.Kickoff.Format(kickoffLayout))

	if len(m.Broadcast) > 0 {
		lines = append(lines, "TV: "+strings.Join(m.Broadcast, ", "))
	}
	if m.StreamURL != "" {
		lines = append(lines, "Watch online: "+m.StreamURL)
	}
	if m.TicketURL != "" && m.Status == models.StatusScheduled {
		lines = append(lines, "Tickets: "+m.TicketURL)
	}

	return strings.Join(lines, "\n")
}
