package schedule

import (
	"fmt"
	"time"
)

// ClockMinutes is a wall-clock time of day expressed as minutes since
// midnight. Plain integer arithmetic sidesteps date-rollover edge cases;
// schedules that cross midnight are not supported.
type ClockMinutes int

// ParseClock parses a "HH:MM" string into ClockMinutes.
func ParseClock(s string) (ClockMinutes, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockMinutes(t.Hour()*60 + t.Minute()), nil
}

// ClockOf extracts the ClockMinutes of a timestamp in its own location.
func ClockOf(t time.Time) ClockMinutes {
	return ClockMinutes(t.Hour()*60 + t.Minute())
}

func (c ClockMinutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Schedule is the expected entry/exit window for one user on one weekday.
// DayOfWeek follows time.Weekday numbering: 0 = Sunday.
type Schedule struct {
	ID        string
	UserID    string
	DayOfWeek int
	EntryTime ClockMinutes
	ExitTime  ClockMinutes
	CreatedAt time.Time
	UpdatedAt time.Time
}
