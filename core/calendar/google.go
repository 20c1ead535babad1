package calendar

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// googleClient implements Client against the Google Calendar v3 API using a
// service account.
type googleClient struct {
	svc    *gcal.Service
	cfg    Config
	logger *zap.Logger
}

// NewGoogleClient authenticates with a service-account key and returns a
// calendar client. Any failure here is an *AuthError: the run aborts before
// the calendar is touched.
func NewGoogleClient(ctx context.Context, cfg Config, logger *zap.Logger) (Client, error) {
	if cfg.CredentialsFile == "" {
		return nil, &AuthError{Err: fmt.Errorf("credentials_file is not set")}
	}
	if cfg.CalendarID == "" {
		return nil, &AuthError{Err: fmt.Errorf("calendar_id is not set")}
	}

	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, &AuthError{Err: fmt.Errorf("read service account key: %w", err)}
	}

	creds, err := google.CredentialsFromJSON(ctx, data, gcal.CalendarScope)
	if err != nil {
		return nil, &AuthError{Err: fmt.Errorf("parse service account key: %w", err)}
	}

	svc, err := gcal.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, &AuthError{Err: fmt.Errorf("create calendar service: %w", err)}
	}

	return &googleClient{svc: svc, cfg: cfg, logger: logger}, nil
}

func (c *googleClient) ListOwnedEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	pageToken := ""

	for {
		call := c.svc.Events.List(c.cfg.CalendarID).
			PrivateExtendedProperty(PropManagedBy + "=" + OwnerValue).
			SingleEvents(true).
			MaxResults(2500).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, &WriteError{Op: "list", Err: err}
		}

		for _, item := range resp.Items {
			ev, ok := EventFromAPI(item)
			if !ok {
				// Marker filter should make this rare; an event that
				// slips through without a usable marker is not ours.
				c.logger.Warn("ignoring event without usable marker",
					zap.String("event_id", item.Id))
				continue
			}
			events = append(events, ev)
		}

		if resp.NextPageToken == "" {
			return events, nil
		}
		pageToken = resp.NextPageToken
	}
}

func (c *googleClient) InsertEvent(ctx context.Context, d Draft) (string, error) {
	ev := DraftToAPI(d, c.cfg.Timezone, c.cfg.ReminderMinutes)

	created, err := c.svc.Events.Insert(c.cfg.CalendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", &WriteError{Op: "insert", Err: err}
	}
	return created.Id, nil
}

func (c *googleClient) PatchEvent(ctx context.Context, eventID string, d Draft) error {
	ev := DraftToAPI(d, c.cfg.Timezone, c.cfg.ReminderMinutes)

	if _, err := c.svc.Events.Patch(c.cfg.CalendarID, eventID, ev).Context(ctx).Do(); err != nil {
		return &WriteError{Op: "patch", EventID: eventID, Err: err}
	}
	return nil
}

func (c *googleClient) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.svc.Events.Delete(c.cfg.CalendarID, eventID).Context(ctx).Do(); err != nil {
		return &WriteError{Op: "delete", EventID: eventID, Err: err}
	}
	return nil
}

func (c *googleClient) ClearOwnedEvents(ctx context.Context) (int, error) {
	events, err := c.ListOwnedEvents(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, ev := range events {
		if err := c.DeleteEvent(ctx, ev.ID); err != nil {
			// Keep going; leftovers reconcile as deletes on the next run.
			c.logger.Warn("failed to clear event",
				zap.String("event_id", ev.ID),
				zap.String("match_id", ev.MatchID),
				zap.Error(err))
			continue
		}
		deleted++
	}

	return deleted, nil
}
