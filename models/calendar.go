package models

import "time"

// AvailabilityStatus classifies the "is the business open" answer.
type AvailabilityStatus string

const (
	StatusOpen         AvailabilityStatus = "open"
	StatusClosed       AvailabilityStatus = "closed"
	StatusOutsideHours AvailabilityStatus = "outside_hours" // closed gap between same-day intervals
)

// TimeSlot is a resolved start/end instant pair on the tenant's wall clock.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailableSlot is a bookable TimeSlot with its duration in minutes.
type AvailableSlot struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration"`
}

// AvailabilityResult answers "is the business open right now?". It is computed
// per call and never persisted.
type AvailabilityResult struct {
	IsOpen        bool               `json:"isOpen"`
	Message       string             `json:"message"`
	NextOpening   *time.Time         `json:"nextOpening,omitempty"`
	NextClosing   *time.Time         `json:"nextClosing,omitempty"`
	CurrentStatus AvailabilityStatus `json:"currentStatus"`
}

// SlotCheck is the outcome of an is-this-slot-bookable query. Negative
// outcomes are reported here, never as errors.
type SlotCheck struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// ScheduleCheck is the outcome of a can-this-schedule-be-booked query.
type ScheduleCheck struct {
	CanSchedule bool   `json:"canSchedule"`
	Reason      string `json:"reason,omitempty"`
}

// DailyStats aggregates one calendar day's appointments. Currency carries the
// first appointment's currency ("USD" when the day is empty) for callers that
// expect a single scalar; RevenueByCurrency is authoritative for tenants that
// mix currencies within a day.
type DailyStats struct {
	Date                  string             `json:"date"`
	TotalAppointments     int                `json:"totalAppointments"`
	ConfirmedAppointments int                `json:"confirmedAppointments"`
	PendingAppointments   int                `json:"pendingAppointments"`
	CancelledAppointments int                `json:"cancelledAppointments"`
	TotalRevenue          float64            `json:"totalRevenue"`
	Currency              string             `json:"currency"`
	RevenueByCurrency     map[string]float64 `json:"revenueByCurrency,omitempty"`
}
