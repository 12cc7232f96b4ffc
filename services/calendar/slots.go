package calendar

import (
	"time"

	"islandpulse/models"
)

// DefaultSlotInterval is the step between candidate slot starts when the
// caller does not specify one.
const DefaultSlotInterval = 30

// AvailableSlots generates the bookable slots on a date for a service of the
// given duration. For each business-hours interval the cursor starts at open
// and advances by intervalMinutes; a candidate is emitted when
// [cursor, cursor+duration) fits inside [open, close) and does not conflict
// with an existing appointment. Slots follow interval order, chronological
// within each interval. intervalMinutes <= 0 selects DefaultSlotInterval.
func (e *Engine) AvailableSlots(date time.Time, durationMinutes, intervalMinutes int) []models.AvailableSlot {
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultSlotInterval
	}

	spans := e.hoursForDate(date)
	if len(spans) == 0 {
		return nil
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(intervalMinutes) * time.Minute

	var slots []models.AvailableSlot
	for _, span := range spans {
		for cursor := span.open; !cursor.Add(duration).After(span.close); cursor = cursor.Add(step) {
			slot := models.TimeSlot{Start: cursor, End: cursor.Add(duration)}
			if !e.HasConflict(slot) {
				slots = append(slots, models.AvailableSlot{
					Start:    slot.Start,
					End:      slot.End,
					Duration: durationMinutes,
				})
			}
		}
	}
	return slots
}

// HasConflict reports whether any non-terminal appointment overlaps the slot.
// Overlap is half-open: a booking ending exactly when another starts does not
// conflict.
func (e *Engine) HasConflict(slot models.TimeSlot) bool {
	for _, apt := range e.appointments {
		if conflicts(apt, slot) {
			return true
		}
	}
	return false
}

// FindConflicts returns every appointment that would clash with the slot.
func (e *Engine) FindConflicts(slot models.TimeSlot) []models.Appointment {
	var out []models.Appointment
	for _, apt := range e.appointments {
		if conflicts(apt, slot) {
			out = append(out, apt)
		}
	}
	return out
}

func conflicts(apt models.Appointment, slot models.TimeSlot) bool {
	// Cancelled and completed appointments no longer occupy calendar time.
	if apt.Status.IsTerminal() {
		return false
	}
	existing := scheduleToTimeSlot(apt.Schedule)
	return slot.Start.Before(existing.End) && slot.End.After(existing.Start)
}

// IsSlotAvailable checks whether a slot can be booked. Checks run in order —
// closed day, outside hours, conflict — and the first failure wins.
func (e *Engine) IsSlotAvailable(slot models.TimeSlot) models.SlotCheck {
	spans := e.hoursForDate(slot.Start)
	if len(spans) == 0 {
		return models.SlotCheck{Available: false, Reason: "Business is closed on this day"}
	}

	withinHours := false
	for _, span := range spans {
		if !slot.Start.Before(span.open) && !slot.End.After(span.close) {
			withinHours = true
			break
		}
	}
	if !withinHours {
		return models.SlotCheck{Available: false, Reason: "Outside business hours"}
	}

	if e.HasConflict(slot) {
		return models.SlotCheck{Available: false, Reason: "Time slot already booked"}
	}

	return models.SlotCheck{Available: true}
}

// CanSchedule resolves an appointment schedule to a time slot and checks its
// availability.
func (e *Engine) CanSchedule(schedule models.AppointmentSchedule) models.ScheduleCheck {
	check := e.IsSlotAvailable(scheduleToTimeSlot(schedule))
	if !check.Available {
		return models.ScheduleCheck{CanSchedule: false, Reason: check.Reason}
	}
	return models.ScheduleCheck{CanSchedule: true}
}
