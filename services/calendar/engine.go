package calendar

import (
	"fmt"
	"time"

	"islandpulse/models"
	"islandpulse/utils"
)

// maxLookaheadDays caps how far findNextOpening scans for the next day with
// configured hours. Beyond this horizon the next opening is reported as
// unknown, not absent-forever.
const maxLookaheadDays = 14

// Engine answers availability questions for one tenant: open/closed status,
// bookable slots, conflict detection and daily statistics. All operations are
// pure computations over the tenant's business hours and the appointment list
// the engine was constructed with; nothing is persisted.
//
// Both inputs are held by reference without defensive copies. The engine does
// no locking: callers that share an instance across goroutines must serialize
// externally (the service layer builds one engine per request from a
// snapshot).
type Engine struct {
	tenant       *models.Tenant
	appointments []models.Appointment
}

// NewEngine builds an engine over a tenant's hours configuration and an
// initial appointment list (may be nil).
func NewEngine(tenant *models.Tenant, appointments []models.Appointment) *Engine {
	return &Engine{tenant: tenant, appointments: appointments}
}

// CurrentAvailability reports whether the business is open at the given
// wall-clock instant. Interval boundaries are half-open: open is inclusive,
// close exclusive.
func (e *Engine) CurrentAvailability(at time.Time) models.AvailabilityResult {
	if e.tenant.Hours() == nil {
		return models.AvailabilityResult{
			IsOpen:        false,
			Message:       "Business hours not configured",
			CurrentStatus: models.StatusClosed,
		}
	}

	spans := e.hoursForDate(at)
	if len(spans) == 0 {
		next := e.findNextOpening(at)
		return models.AvailabilityResult{
			IsOpen:        false,
			Message:       "Closed today",
			NextOpening:   next,
			CurrentStatus: models.StatusClosed,
		}
	}

	for _, span := range spans {
		if !at.Before(span.open) && at.Before(span.close) {
			closing := span.close
			return models.AvailabilityResult{
				IsOpen:        true,
				Message:       fmt.Sprintf("Open until %s", utils.FormatClock12(closing)),
				NextClosing:   &closing,
				CurrentStatus: models.StatusOpen,
			}
		}
	}

	first := spans[0]
	last := spans[len(spans)-1]

	if at.Before(first.open) {
		opening := first.open
		return models.AvailabilityResult{
			IsOpen:        false,
			Message:       fmt.Sprintf("Opens at %s", utils.FormatClock12(opening)),
			NextOpening:   &opening,
			CurrentStatus: models.StatusClosed,
		}
	}

	if !at.Before(last.close) {
		next := e.findNextOpening(at)
		msg := "Closed"
		if next != nil {
			msg = fmt.Sprintf("Closed. Opens %s", formatNextOpening(*next, at))
		}
		return models.AvailabilityResult{
			IsOpen:        false,
			Message:       msg,
			NextOpening:   next,
			CurrentStatus: models.StatusClosed,
		}
	}

	// Between two intervals on the same day, e.g. a lunch gap.
	for _, span := range spans {
		if at.Before(span.open) {
			opening := span.open
			return models.AvailabilityResult{
				IsOpen:        false,
				Message:       fmt.Sprintf("Closed. Opens at %s", utils.FormatClock12(opening)),
				NextOpening:   &opening,
				CurrentStatus: models.StatusOutsideHours,
			}
		}
	}

	return models.AvailabilityResult{
		IsOpen:        false,
		Message:       "Closed",
		CurrentStatus: models.StatusClosed,
	}
}

// findNextOpening scans forward day by day for the first day with configured
// hours and returns its first interval's open instant. Nil when no day within
// the lookahead horizon has hours.
func (e *Engine) findNextOpening(from time.Time) *time.Time {
	for i := 1; i <= maxLookaheadDays; i++ {
		day := utils.StartOfDay(from).AddDate(0, 0, i)
		spans := e.hoursForDate(day)
		if len(spans) > 0 {
			opening := spans[0].open
			return &opening
		}
	}
	return nil
}

// formatNextOpening phrases a future opening relative to the reference
// instant: "tomorrow at 9:00 AM" or "wednesday at 9:00 AM".
func formatNextOpening(opening, at time.Time) string {
	tomorrow := utils.StartOfDay(at).AddDate(0, 0, 1)
	if utils.StartOfDay(opening).Equal(tomorrow) {
		return fmt.Sprintf("tomorrow at %s", utils.FormatClock12(opening))
	}
	return fmt.Sprintf("%s at %s", models.WeekdayOf(opening), utils.FormatClock12(opening))
}

// scheduleToTimeSlot resolves an appointment schedule's date and clock strings
// into a concrete start/end instant pair on the local wall clock. The
// schedule's timezone label is advisory only and never converted.
func scheduleToTimeSlot(schedule models.AppointmentSchedule) models.TimeSlot {
	return models.TimeSlot{
		Start: utils.ParseDateClock(schedule.Date, schedule.Start),
		End:   utils.ParseDateClock(schedule.Date, schedule.End),
	}
}

// AddAppointment appends to the engine's local appointment list. Intended for
// test and preview scenarios; the system of record lives behind
// AppointmentSource.
func (e *Engine) AddAppointment(appointment models.Appointment) {
	e.appointments = append(e.appointments, appointment)
}

// AppointmentsBetween returns appointments whose start falls within
// [start, end] (both inclusive).
func (e *Engine) AppointmentsBetween(start, end time.Time) []models.Appointment {
	var out []models.Appointment
	for _, apt := range e.appointments {
		s := scheduleToTimeSlot(apt.Schedule).Start
		if !s.Before(start) && !s.After(end) {
			out = append(out, apt)
		}
	}
	return out
}

// AppointmentsOn returns appointments scheduled on the exact "YYYY-MM-DD"
// date string.
func (e *Engine) AppointmentsOn(dateStr string) []models.Appointment {
	var out []models.Appointment
	for _, apt := range e.appointments {
		if apt.Schedule.Date == dateStr {
			out = append(out, apt)
		}
	}
	return out
}
