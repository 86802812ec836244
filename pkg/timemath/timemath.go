package timemath

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time with minute resolution, stored as
// minutes since midnight. The valid range is [00:00, 23:59].
type TimeOfDay int

const (
	// MinutesPerDay is the number of minutes in one day.
	MinutesPerDay = 24 * 60

	// Max is the latest representable TimeOfDay (23:59).
	Max = TimeOfDay(MinutesPerDay - 1)

	// Min is the earliest representable TimeOfDay (00:00).
	Min = TimeOfDay(0)
)

// Parse converts an "HH:MM" string to a TimeOfDay.
func Parse(s string) (TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range in %q", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range in %q", s)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// MustParse is Parse that panics on error. Intended for constants in tests
// and default configuration.
func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String formats the time as zero-padded HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Hour returns the hour component [0, 23].
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component [0, 59].
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// AddMinutesClamp shifts the time by n minutes, clamping into
// [00:00, 23:59]. It never wraps past midnight.
func (t TimeOfDay) AddMinutesClamp(n int) TimeOfDay {
	shifted := TimeOfDay(int(t) + n)
	if shifted < Min {
		return Min
	}
	if shifted > Max {
		return Max
	}
	return shifted
}
