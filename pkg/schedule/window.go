package schedule

import (
	"errors"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time at minute resolution, stored as minutes
// since midnight.
type TimeOfDay int

var ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM")

// ParseTimeOfDay parses a 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	_, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute)
	if err != nil || len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// FromClock truncates a timestamp to its minute of day.
func FromClock(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Window is a daily activity window. Boundaries are exclusive: a server is
// inside the window strictly after Start and strictly before Stop. When
// Stop <= Start the window wraps past midnight.
type Window struct {
	Start TimeOfDay
	Stop  TimeOfDay
}

func ParseWindow(start string, stop string) (Window, error) {
	startTime, err := ParseTimeOfDay(start)
	if err != nil {
		return Window{}, fmt.Errorf("ParseWindow: %w", err)
	}
	stopTime, err := ParseTimeOfDay(stop)
	if err != nil {
		return Window{}, fmt.Errorf("ParseWindow: %w", err)
	}
	return Window{Start: startTime, Stop: stopTime}, nil
}

// Contains reports whether the given timestamp's minute of day is inside
// the window.
func (w Window) Contains(now time.Time) bool {
	cur := FromClock(now)
	if w.Stop > w.Start {
		return cur > w.Start && cur < w.Stop
	}
	return cur > w.Start || cur < w.Stop
}
