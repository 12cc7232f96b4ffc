package calendar

import (
	"strings"
	"time"

	"islandpulse/models"
	"islandpulse/utils"
)

// DailyStats aggregates the appointments scheduled on the given calendar day.
// Revenue counts appointments that are not cancelled and whose payment status
// is paid; a cancelled-but-paid appointment is excluded from revenue but still
// counted in TotalAppointments. The scalar Currency carries the day's first
// appointment's currency, falling back to USD when the day is empty or the
// first appointment carries none; RevenueByCurrency is the faithful breakdown
// for tenants that mix currencies.
func (e *Engine) DailyStats(date time.Time) models.DailyStats {
	dateStr := utils.DateString(date)
	day := e.AppointmentsOn(dateStr)

	stats := models.DailyStats{
		Date:              dateStr,
		TotalAppointments: len(day),
		Currency:          "USD",
	}
	if len(day) > 0 {
		if c := day[0].Totals.Currency; c != "" {
			stats.Currency = c
		}
		stats.RevenueByCurrency = make(map[string]float64)
	}

	for _, apt := range day {
		switch apt.Status {
		case models.AppointmentConfirmed:
			stats.ConfirmedAppointments++
		case models.AppointmentPending:
			stats.PendingAppointments++
		case models.AppointmentCancelled:
			stats.CancelledAppointments++
		}

		if apt.Status != models.AppointmentCancelled && apt.PaymentStatus == models.PaymentPaid {
			stats.TotalRevenue += apt.Totals.GrandTotal
			stats.RevenueByCurrency[apt.Totals.Currency] += apt.Totals.GrandTotal
		}
	}

	return stats
}

// WeekSchedule renders the tenant's weekly hours for display: "Closed" for
// days without intervals, otherwise each interval as "open - close" joined by
// commas, e.g. "09:00 - 12:00, 13:00 - 17:00". All seven weekdays are always
// present.
func (e *Engine) WeekSchedule() map[models.Weekday]string {
	hours := e.tenant.Hours()

	schedule := make(map[models.Weekday]string, len(models.WeekdaysInOrder))
	for _, day := range models.WeekdaysInOrder {
		intervals := hours[day]
		if len(intervals) == 0 {
			schedule[day] = "Closed"
			continue
		}
		parts := make([]string, len(intervals))
		for i, interval := range intervals {
			parts[i] = interval.Open + " - " + interval.Close
		}
		schedule[day] = strings.Join(parts, ", ")
	}
	return schedule
}
