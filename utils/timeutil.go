// File: utils/timeutil.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockToMinutes parses a 24-hour "HH:MM" string into minutes from midnight.
// Components are not range-checked; malformed strings yield whatever the
// numeric parse produces, matching the lenient read path of the calendar.
func ClockToMinutes(clock string) int {
	h, m := SplitClock(clock)
	return h*60 + m
}

// MinutesToClock renders minutes from midnight as "HH:MM".
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SplitClock breaks "HH:MM" into its hour and minute components.
func SplitClock(clock string) (hour, minute int) {
	parts := strings.SplitN(clock, ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(parts[1])
	}
	return hour, minute
}

// AddMinutes shifts a "HH:MM" clock string forward by duration minutes and
// returns the resulting "HH:MM". Wraps past midnight.
func AddMinutes(clock string, duration int) string {
	total := ClockToMinutes(clock) + duration
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return MinutesToClock(total)
}

// ClockOnDate combines a calendar date with a "HH:MM" clock string into a
// naive wall-clock instant in the date's location. Out-of-range components
// normalize the way time.Date does.
func ClockOnDate(date time.Time, clock string) time.Time {
	h, m := SplitClock(clock)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

// ParseDateClock combines a "YYYY-MM-DD" date string with a "HH:MM" clock
// string into a naive local instant.
func ParseDateClock(dateStr, clock string) time.Time {
	var year, month, day int
	parts := strings.SplitN(dateStr, "-", 3)
	if len(parts) > 0 {
		year, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		month, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		day, _ = strconv.Atoi(parts[2])
	}
	h, m := SplitClock(clock)
	return time.Date(year, time.Month(month), day, h, m, 0, 0, time.Local)
}

// DateString renders the calendar date of an instant as "YYYY-MM-DD".
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatClock12 renders an instant's time of day as a 12-hour display string,
// e.g. "5:00 PM".
func FormatClock12(t time.Time) string {
	return t.Format("3:04 PM")
}

// StartOfDay truncates an instant to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// UnixNow is the current unix timestamp in seconds.
func UnixNow() int64 {
	return time.Now().Unix()
}
