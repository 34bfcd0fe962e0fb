package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/backend/internal/models"
)

func TestParseDate(t *testing.T) {
	d, err := models.ParseDate("2030-01-02")
	require.NoError(t, err)
	assert.Equal(t, "2030-01-02", d.String())

	_, err = models.ParseDate("not-a-date")
	assert.Error(t, err)

	_, err = models.ParseDate("2030-13-01")
	assert.Error(t, err)
}

func TestDateBefore(t *testing.T) {
	a := models.NewDate(2030, time.January, 1)
	b := models.NewDate(2030, time.January, 2)
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestDateOfDropsTimeOfDay(t *testing.T) {
	late := time.Date(2030, time.June, 15, 23, 59, 59, 0, time.Local)
	assert.Equal(t, models.NewDate(2030, time.June, 15), models.DateOf(late))
}

func TestDateZero(t *testing.T) {
	var d models.Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
	assert.False(t, models.Today().IsZero())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := models.NewDate(2030, time.January, 1)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2030-01-01"`, string(raw))

	var back models.Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d, back)
}

func TestDateJSONNull(t *testing.T) {
	var d models.Date
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(raw))

	var back models.Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &back))
	assert.True(t, back.IsZero())
}
