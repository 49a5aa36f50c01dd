package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const DayMinutes = 24 * 60

var ErrInvalidClockTime = errors.New("invalid clock time")

// MinutesFromStartOfDay parses "HH:MM". Hour and minute ranges are not checked.
func MinutesFromStartOfDay(clock string) (int, error) {
	hour, minute, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q has no colon", ErrInvalidClockTime, clock)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hour))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, clock)
	}
	m, err := strconv.Atoi(strings.TrimSpace(minute))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, clock)
	}
	return 60*h + m, nil
}

// RawDuration is the clock-time distance between departure and arrival,
// ignoring timezones and assuming at most one midnight in between. Equal
// times give 0.
func RawDuration(fromTime, toTime string) (int, error) {
	from, err := MinutesFromStartOfDay(fromTime)
	if err != nil {
		return 0, err
	}
	to, err := MinutesFromStartOfDay(toTime)
	if err != nil {
		return 0, err
	}
	return rawDuration(from, to), nil
}

func rawDuration(from, to int) int {
	d := from - to
	if d > 0 {
		return DayMinutes - d
	}
	return -d
}

// TZOffsetDifference returns the shift in minutes between two zones. When both
// are east of the meridian it is the plain difference, otherwise the crossing is
// the sum of both magnitudes. The result is negated for a western arrival zone.
func TZOffsetDifference(fromTZ, toTZ TZOffset) int {
	var d int
	if fromTZ > 0 && toTZ > 0 {
		d = toTZ.Minutes() - fromTZ.Minutes()
	} else {
		d = abs(fromTZ.Minutes()) + abs(toTZ.Minutes())
	}
	if toTZ < 0 {
		d = -d
	}
	return d
}

// FullDuration combines the raw duration with the zone difference. Any western
// zone replaces the first result with a day-boundary corrected one.
func FullDuration(raw int, fromTZ, toTZ TZOffset) int {
	diff := TZOffsetDifference(fromTZ, toTZ)

	full := abs(raw + diff)
	if fromTZ < 0 || toTZ < 0 {
		adjusted := DayMinutes - abs(diff)
		if diff < 0 {
			adjusted = -adjusted
		}
		full = raw + adjusted
	}
	return abs(full)
}

// ShiftClock moves minutes-of-day by delta and wraps into a single day.
func ShiftClock(minutes, delta int) int {
	m := (minutes + delta) % DayMinutes
	if m < 0 {
		m += DayMinutes
	}
	return m
}

// FormatClock renders minutes-of-day as "HH:MM".
func FormatClock(minutes int) string {
	m := ShiftClock(minutes, 0)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
