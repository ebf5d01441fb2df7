package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_LocalMidnight(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Local, d.Location())
	y, m, day := d.Date()
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.June, m)
	assert.Equal(t, 1, day)
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, "2024-06-01", FormatDate(d))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("06/01/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestDaysBetween(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	cases := []struct {
		to   time.Time
		want int
	}{
		{time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local), 2},
		{time.Date(2024, 6, 1, 23, 59, 0, 0, time.Local), 0},
		{time.Date(2024, 5, 30, 0, 0, 0, 0, time.Local), -2},
		{time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local), 30},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DaysBetween(tc.to, today), "to=%s", tc.to)
	}
}

func TestStartOfDay(t *testing.T) {
	noon := time.Date(2024, 3, 10, 12, 30, 0, 0, time.Local)
	assert.True(t, SameDay(noon, StartOfDay(noon)))
	assert.Equal(t, 0, StartOfDay(noon).Hour())
}
