package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a timetable clock reading in minutes after midnight.
// Timetables list clock times, not instants; a stop's day offset says which
// calendar day of the run the reading belongs to.
type ClockTime int

// NoClockTime marks a missing timetable entry (origin stops have no arrival,
// terminal stops have no departure).
const NoClockTime ClockTime = -1

const MinutesPerDay = 24 * 60

// ParseClockTime parses "HH:MM" or "HH:MM:SS" timetable strings.
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoClockTime, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return NoClockTime, fmt.Errorf("invalid clock time %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return NoClockTime, fmt.Errorf("invalid clock time %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return NoClockTime, fmt.Errorf("invalid clock time %q", s)
	}

	return ClockTime(hours*60 + minutes), nil
}

func (c ClockTime) Valid() bool {
	return c >= 0 && c < MinutesPerDay
}

func (c ClockTime) Hour() int {
	return int(c) / 60
}

func (c ClockTime) Minute() int {
	return int(c) % 60
}

func (c ClockTime) String() string {
	if !c.Valid() {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
