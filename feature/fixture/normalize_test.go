package fixture_test

import (
	"testing"
	"time"

	"matchcal/core/feed"
	"matchcal/feature/fixture"
	"matchcal/feature/fixture/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func validRaw() feed.RawMatch {
	return feed.RawMatch{
		MatchID:   12,
		HomeTeam:  "Kerala FC",
		AwayTeam:  "Malabar United",
		MatchDate: "2025-11-02 19:30:00",
		Venue:     "EMS Stadium",
		Link:      "https://tickets.example.com/12",
		Broadcast: []feed.RawChannel{
			{Name: "SPORTS.COM", Link: "https://cdn.example.com/logo.png"},
			{Name: "Sony Sports"},
		},
	}
}

func TestNormalize_Scheduled(t *testing.T) {
	m, err := fixture.Normalize(validRaw(), ist)
	require.NoError(t, err)

	assert.Equal(t, "12", m.ID)
	assert.Equal(t, "Kerala FC", m.HomeTeam)
	assert.Equal(t, models.StatusScheduled, m.Status)
	assert.Nil(t, m.Score)
	assert.Equal(t, []string{"SPORTS.COM", "Sony Sports"}, m.Broadcast)
	assert.Equal(t, "https://sports.com/en/slk", m.StreamURL)

	want := time.Date(2025, 11, 2, 19, 30, 0, 0, ist)
	assert.True(t, m.Kickoff.Equal(want))
}

func TestNormalize_StatusDerivation(t *testing.T) {
	tests := []struct {
		name                                     string
		completed, started, cancelled, postponed feed.Flag
		want                                     models.Status
	}{
		{"scheduled", 0, 0, 0, 0, models.StatusScheduled},
		{"live", 0, 1, 0, 0, models.StatusLive},
		{"completed", 1, 1, 0, 0, models.StatusCompleted},
		{"cancelled overrides completed", 1, 1, 1, 0, models.StatusCancelled},
		{"postponed overrides started", 0, 1, 0, 1, models.StatusPostponed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			raw.Completed = tt.completed
			raw.IsStarted = tt.started
			raw.IsCancel = tt.cancelled
			raw.IsPostponed = tt.postponed
			raw.Result = "2 - 1"

			m, err := fixture.Normalize(raw, ist)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Status)
		})
	}
}

func TestNormalize_ScoreOnlyForPlayedMatches(t *testing.T) {
	raw := validRaw()
	raw.Completed = 1
	raw.Result = "2 - 1"

	m, err := fixture.Normalize(raw, ist)
	require.NoError(t, err)
	require.NotNil(t, m.Score)
	assert.Equal(t, 2, m.Score.Home)
	assert.Equal(t, 1, m.Score.Away)

	// A scheduled match never carries a score, even if the feed sends one.
	raw = validRaw()
	raw.Result = "2 - 1"
	m, err = fixture.Normalize(raw, ist)
	require.NoError(t, err)
	assert.Nil(t, m.Score)
}

func TestNormalize_MalformedRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*feed.RawMatch)
		field  string
	}{
		{"missing match id", func(r *feed.RawMatch) { r.MatchID = 0 }, "match_id"},
		{"missing home team", func(r *feed.RawMatch) { r.HomeTeam = "  " }, "home_team"},
		{"missing away team", func(r *feed.RawMatch) { r.AwayTeam = "" }, "away_team"},
		{"bad timestamp", func(r *feed.RawMatch) { r.MatchDate = "02/11/2025" }, "match_date"},
		{"bad result", func(r *feed.RawMatch) { r.Completed = 1; r.Result = "two-one" }, "result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			_, err := fixture.Normalize(raw, ist)
			require.Error(t, err)

			var mre *fixture.MalformedRecordError
			require.ErrorAs(t, err, &mre)
			assert.Equal(t, tt.field, mre.Field)
		})
	}
}

func TestNormalizeAll_SkipsMalformedKeepsRest(t *testing.T) {
	bad := validRaw()
	bad.MatchID = 0
	good := validRaw()

	matches, malformed := fixture.NormalizeAll([]feed.RawMatch{bad, good}, ist, zap.NewNop())

	assert.Equal(t, 1, malformed)
	require.Len(t, matches, 1)
	assert.Equal(t, "12", matches[0].ID)
}
