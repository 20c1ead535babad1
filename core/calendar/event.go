package calendar

import (
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

// Private extended-property keys forming the ownership marker. Every event
// created by this sync carries both; the match_id value is how events are
// re-associated with matches across runs.
const (
	PropManagedBy = "managed_by"
	PropMatchID   = "match_id"
	OwnerValue    = "matchcal"
)

// Event is an owned calendar event as read from the store.
type Event struct {
	// ID is the provider-assigned event identifier, opaque to the sync.
	ID string
	// MatchID is the match identity recovered from the ownership marker.
	MatchID string
	// Created is the provider-side creation time, used to pick the
	// canonical event when duplicates are found.
	Created time.Time

	Title       string
	Start       time.Time
	End         time.Time
	Description string
	Location    string
}

// Draft is the desired state of an owned event, produced by the event mapper.
// Mapping the same match twice yields an identical Draft; the reconciler
// relies on that to detect no-op updates.
type Draft struct {
	MatchID     string
	Title       string
	Start       time.Time
	End         time.Time
	Description string
	Location    string
}

// Matches reports whether the stored event already carries exactly the
// draft's target fields.
func (d Draft) Matches(e Event) bool {
	return d.Title == e.Title &&
		d.Start.Equal(e.Start) &&
		d.End.Equal(e.End) &&
		d.Description == e.Description &&
		d.Location == e.Location
}

// EventFromAPI converts a provider event into the internal representation.
// It returns ok=false for events without a complete ownership marker or with
// unparseable times; those are not owned by this sync and must be left alone.
func EventFromAPI(item *gcal.Event) (Event, bool) {
	if item.ExtendedProperties == nil || item.ExtendedProperties.Private == nil {
		return Event{}, false
	}
	if item.ExtendedProperties.Private[PropManagedBy] != OwnerValue {
		return Event{}, false
	}
	matchID := item.ExtendedProperties.Private[PropMatchID]
	if matchID == "" {
		return Event{}, false
	}
	if item.Start == nil || item.End == nil {
		return Event{}, false
	}

	start, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return Event{}, false
	}
	end, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return Event{}, false
	}

	ev := Event{
		ID:          item.Id,
		MatchID:     matchID,
		Title:       item.Summary,
		Start:       start,
		End:         end,
		Description: item.Description,
		Location:    item.Location,
	}
	if created, err := time.Parse(time.RFC3339, item.Created); err == nil {
		ev.Created = created
	}
	return ev, true
}

// DraftToAPI converts a draft into the provider representation, stamping the
// ownership marker and the configured reminder.
func DraftToAPI(d Draft, tzName string, reminderMinutes int) *gcal.Event {
	ev := &gcal.Event{
		Summary:     d.Title,
		Description: d.Description,
		Location:    d.Location,
		Start: &gcal.EventDateTime{
			DateTime: d.Start.Format(time.RFC3339),
			TimeZone: tzName,
		},
		End: &gcal.EventDateTime{
			DateTime: d.End.Format(time.RFC3339),
			TimeZone: tzName,
		},
		ExtendedProperties: &gcal.EventExtendedProperties{
			Private: map[string]string{
				PropManagedBy: OwnerValue,
				PropMatchID:   d.MatchID,
			},
		},
	}

	if reminderMinutes > 0 {
		ev.Reminders = &gcal.EventReminders{
			UseDefault:      false,
			ForceSendFields: []string{"UseDefault"},
			Overrides: []*gcal.EventReminder{
				{Method: "popup", Minutes: int64(reminderMinutes)},
			},
		}
	}

	return ev
}
