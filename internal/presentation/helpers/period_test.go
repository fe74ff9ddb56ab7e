package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekBounds(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	wednesday := time.Date(2026, 8, 26, 15, 30, 0, 0, time.Local)

	from, to := WeekBounds(wednesday)

	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Sunday, from.Weekday())
	assert.Equal(t, time.Saturday, to.Weekday())
	assert.Equal(t, 29, to.Day())
	assert.True(t, to.Before(time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)))
}

func TestWeekBoundsOnSunday(t *testing.T) {
	sunday := time.Date(2026, 8, 23, 0, 0, 0, 0, time.Local)

	from, _ := WeekBounds(sunday)

	assert.Equal(t, sunday, from)
}

func TestMonthBounds(t *testing.T) {
	from, to := MonthBounds(time.Date(2026, 2, 14, 12, 0, 0, 0, time.Local))

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, 28, to.Day())
	assert.Equal(t, time.February, to.Month())
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local), parsed)

	parsed, err = ParseDate("2026-08-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, parsed.UTC().Hour())

	_, err = ParseDate("15/08/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}
