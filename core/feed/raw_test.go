package feed_test

import (
	"encoding/json"
	"testing"

	"matchcal/core/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlag_CoercesLooseEncodings(t *testing.T) {
	var m feed.RawMatch
	body := `{"match_id": 7, "completed": "1", "is_started": true, "is_cancel": 0, "is_postponed": null}`
	require.NoError(t, json.Unmarshal([]byte(body), &m))

	assert.True(t, m.Completed.Bool())
	assert.True(t, m.IsStarted.Bool())
	assert.False(t, m.IsCancel.Bool())
	assert.False(t, m.IsPostponed.Bool())
}

func TestFlag_RejectsGarbage(t *testing.T) {
	var m feed.RawMatch
	err := json.Unmarshal([]byte(`{"completed": "yes please"}`), &m)
	assert.Error(t, err)
}
