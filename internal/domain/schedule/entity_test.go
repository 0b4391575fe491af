package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input string
		want  ClockMinutes
	}{
		{"00:00", 0},
		{"07:00", 420},
		{"14:30", 870},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got, "ParseClock(%q)", c.input)
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, input := range []string{"", "7am", "25:00", "12:60", "12-30"} {
		_, err := ParseClock(input)
		assert.Error(t, err, "ParseClock(%q)", input)
	}
}

func TestClockMinutesString(t *testing.T) {
	assert.Equal(t, "07:00", ClockMinutes(420).String())
	assert.Equal(t, "14:30", ClockMinutes(870).String())
	assert.Equal(t, "00:00", ClockMinutes(0).String())
}

func TestClockOf(t *testing.T) {
	ts := time.Date(2026, 3, 2, 7, 5, 59, 0, time.Local)
	assert.Equal(t, ClockMinutes(425), ClockOf(ts), "seconds are truncated")
}
