package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTripsThroughDriver(t *testing.T) {
	list := StringList{"1 onion", `2 "big" carrots`, "salt, pepper"}

	v, err := list.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, list, scanned)
}

func TestStringListNil(t *testing.T) {
	var list StringList

	v, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	var scanned StringList
	require.NoError(t, scanned.Scan(nil))
	assert.Equal(t, StringList{}, scanned)

	body, err := json.Marshal(struct {
		Tags StringList `json:"tags"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":[]}`, string(body))
}

func TestStringListContains(t *testing.T) {
	list := StringList{"soup", "winter"}
	assert.True(t, list.Contains("soup"))
	assert.False(t, list.Contains("Soup"))
}
