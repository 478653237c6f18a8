package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalIDAcceptsStringOrNumber(t *testing.T) {
	var g Goal
	require.NoError(t, json.Unmarshal([]byte(`{"id":"42","text":"a"}`), &g))
	assert.Equal(t, GoalID("42"), g.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"text":"a"}`), &g))
	assert.Equal(t, GoalID("42"), g.ID)

	// Both wire forms land on the same key.
	var a, b Goal
	require.NoError(t, json.Unmarshal([]byte(`{"id":7}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"id":"7"}`), &b))
	assert.Equal(t, a.ID, b.ID)
}

func TestGoalIDRejectsObjects(t *testing.T) {
	var g Goal
	assert.Error(t, json.Unmarshal([]byte(`{"id":{"nested":true}}`), &g))
}

func TestIDSliceMixedForms(t *testing.T) {
	var ids IDSlice
	require.NoError(t, json.Unmarshal([]byte(`[1,"2",3]`), &ids))
	assert.Equal(t, IDSlice{"1", "2", "3"}, ids)
}

func TestGoalListsScan(t *testing.T) {
	payload := `{"daily":[{"id":1,"text":"pray","completed":true}],"weekly":[],"monthly":null}`

	var fromBytes GoalLists
	require.NoError(t, fromBytes.Scan([]byte(payload)))
	require.Len(t, fromBytes.Daily, 1)
	assert.Equal(t, GoalID("1"), fromBytes.Daily[0].ID)
	assert.True(t, fromBytes.Daily[0].Completed)

	var fromString GoalLists
	require.NoError(t, fromString.Scan(payload))
	assert.Equal(t, fromBytes, fromString)

	// NULL column leaves the zero value; absence is never an error.
	var fromNil GoalLists
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil.Daily)

	var bad GoalLists
	assert.Error(t, bad.Scan(3.14))
}

func TestLeadershipRatingIsZero(t *testing.T) {
	assert.True(t, LeadershipRating{}.IsZero())
	assert.False(t, LeadershipRating{Wisdom: 5}.IsZero())
}

func TestSOAPEmpty(t *testing.T) {
	assert.True(t, SOAP{}.Empty())
	assert.True(t, SOAP{Thoughts: "just notes"}.Empty())
	assert.False(t, SOAP{Prayer: "amen"}.Empty())
}
