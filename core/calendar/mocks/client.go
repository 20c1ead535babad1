package mocks

import (
	"context"

	"matchcal/core/calendar"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of calendar.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListOwnedEvents(ctx context.Context) ([]calendar.Event, error) {
	args := m.Called(ctx)
	if events, ok := args.Get(0).([]calendar.Event); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) InsertEvent(ctx context.Context, d calendar.Draft) (string, error) {
	args := m.Called(ctx, d)
	return args.String(0), args.Error(1)
}

func (m *Client) PatchEvent(ctx context.Context, eventID string, d calendar.Draft) error {
	args := m.Called(ctx, eventID, d)
	return args.Error(0)
}

func (m *Client) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

func (m *Client) ClearOwnedEvents(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
