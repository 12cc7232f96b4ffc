package calendar

import (
	"fmt"
	"time"

	"islandpulse/models"
	"islandpulse/utils"
)

// hoursSpan is one business-hours interval resolved onto a concrete date.
type hoursSpan struct {
	open  time.Time
	close time.Time
}

// hoursForDate resolves the tenant's configured intervals for the date's
// weekday into concrete instants. Empty when the tenant has no hours at all
// or is closed that day. The configured order is trusted as-is: ordering and
// overlap are a write-time contract (ValidateHours), never repaired here.
func (e *Engine) hoursForDate(date time.Time) []hoursSpan {
	hours := e.tenant.Hours()
	if hours == nil {
		return nil
	}

	day := hours[models.WeekdayOf(date)]
	if len(day) == 0 {
		return nil
	}

	spans := make([]hoursSpan, len(day))
	for i, interval := range day {
		spans[i] = hoursSpan{
			open:  utils.ClockOnDate(date, interval.Open),
			close: utils.ClockOnDate(date, interval.Close),
		}
	}
	return spans
}

// ValidateHours checks a business-hours configuration for the invariants the
// read path assumes: well-formed "HH:MM" strings, open strictly before close
// on the same day, and per-day interval lists sorted and non-overlapping.
// Collaborators that write hours call this before persisting; the engine
// itself never validates.
func ValidateHours(hours models.BusinessHours) error {
	for day, intervals := range hours {
		if !day.Valid() {
			return fmt.Errorf("unknown weekday key %q", day)
		}
		prevClose := -1
		for i, interval := range intervals {
			openMin, err := parseClockStrict(interval.Open)
			if err != nil {
				return fmt.Errorf("%s interval %d: invalid open time: %w", day, i, err)
			}
			closeMin, err := parseClockStrict(interval.Close)
			if err != nil {
				return fmt.Errorf("%s interval %d: invalid close time: %w", day, i, err)
			}
			if openMin >= closeMin {
				return fmt.Errorf("%s interval %d: open %s is not before close %s", day, i, interval.Open, interval.Close)
			}
			if openMin < prevClose {
				return fmt.Errorf("%s interval %d: overlaps or precedes the previous interval", day, i)
			}
			prevClose = closeMin
		}
	}
	return nil
}

// parseClockStrict accepts exactly "HH:MM" with in-range components and
// returns minutes from midnight. "24:00" is allowed as a day-end close.
func parseClockStrict(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, fmt.Errorf("%q is not in HH:MM form", clock)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if clock[i] < '0' || clock[i] > '9' {
			return 0, fmt.Errorf("%q is not in HH:MM form", clock)
		}
	}
	h, m := utils.SplitClock(clock)
	if h > 24 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%q is out of range", clock)
	}
	return h*60 + m, nil
}
