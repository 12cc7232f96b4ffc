package calendar

import (
	"testing"

	"islandpulse/models"
)

func paidAppointment(date string, status models.AppointmentStatus, pay models.AppointmentPaymentStatus, total float64, currency string) models.Appointment {
	apt := testAppointment(date, "10:00", "11:00", status)
	apt.PaymentStatus = pay
	apt.Totals = models.AppointmentTotals{GrandTotal: total, Currency: currency}
	return apt
}

func TestDailyStats(t *testing.T) {
	appointments := []models.Appointment{
		paidAppointment("2024-12-04", models.AppointmentConfirmed, models.PaymentPaid, 100, "USD"),
		paidAppointment("2024-12-04", models.AppointmentPending, models.PaymentPaid, 50, "USD"),
		// Cancelled-but-paid: counted in totals, excluded from revenue.
		paidAppointment("2024-12-04", models.AppointmentCancelled, models.PaymentPaid, 75, "USD"),
		paidAppointment("2024-12-04", models.AppointmentConfirmed, models.PaymentUnpaid, 25, "USD"),
		// Different day, must not leak in.
		paidAppointment("2024-12-05", models.AppointmentConfirmed, models.PaymentPaid, 999, "USD"),
	}
	eng := NewEngine(splitShiftTenant(), appointments)

	stats := eng.DailyStats(wednesday(18, 0))

	if stats.Date != "2024-12-04" {
		t.Fatalf("unexpected date %q", stats.Date)
	}
	if stats.TotalAppointments != 4 {
		t.Fatalf("TotalAppointments = %d, want 4", stats.TotalAppointments)
	}
	if stats.ConfirmedAppointments != 2 {
		t.Fatalf("ConfirmedAppointments = %d, want 2", stats.ConfirmedAppointments)
	}
	if stats.PendingAppointments != 1 {
		t.Fatalf("PendingAppointments = %d, want 1", stats.PendingAppointments)
	}
	if stats.CancelledAppointments != 1 {
		t.Fatalf("CancelledAppointments = %d, want 1", stats.CancelledAppointments)
	}
	if stats.TotalRevenue != 150 {
		t.Fatalf("TotalRevenue = %v, want 150", stats.TotalRevenue)
	}
	if stats.Currency != "USD" {
		t.Fatalf("Currency = %q, want USD", stats.Currency)
	}
}

func TestDailyStats_EmptyDay(t *testing.T) {
	eng := NewEngine(splitShiftTenant(), nil)

	stats := eng.DailyStats(wednesday(12, 0))
	if stats.TotalAppointments != 0 || stats.TotalRevenue != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
	if stats.Currency != "USD" {
		t.Fatalf("expected USD fallback currency, got %q", stats.Currency)
	}
}

func TestDailyStats_MissingCurrencyFallsBack(t *testing.T) {
	appointments := []models.Appointment{
		paidAppointment("2024-12-04", models.AppointmentConfirmed, models.PaymentPaid, 100, ""),
	}
	eng := NewEngine(splitShiftTenant(), appointments)

	stats := eng.DailyStats(wednesday(18, 0))
	if stats.Currency != "USD" {
		t.Fatalf("Currency = %q, want USD fallback for empty currency", stats.Currency)
	}
	if stats.TotalRevenue != 100 {
		t.Fatalf("TotalRevenue = %v, want 100", stats.TotalRevenue)
	}
}

func TestDailyStats_MixedCurrencies(t *testing.T) {
	appointments := []models.Appointment{
		paidAppointment("2024-12-04", models.AppointmentConfirmed, models.PaymentPaid, 200, "EUR"),
		paidAppointment("2024-12-04", models.AppointmentConfirmed, models.PaymentPaid, 100, "USD"),
	}
	eng := NewEngine(splitShiftTenant(), appointments)

	stats := eng.DailyStats(wednesday(18, 0))
	// Legacy scalar takes the first appointment's currency.
	if stats.Currency != "EUR" {
		t.Fatalf("Currency = %q, want EUR", stats.Currency)
	}
	if stats.RevenueByCurrency["EUR"] != 200 || stats.RevenueByCurrency["USD"] != 100 {
		t.Fatalf("unexpected per-currency revenue: %v", stats.RevenueByCurrency)
	}
}

func TestWeekSchedule(t *testing.T) {
	eng := NewEngine(splitShiftTenant(), nil)

	schedule := eng.WeekSchedule()
	if len(schedule) != 7 {
		t.Fatalf("expected all 7 weekdays, got %d", len(schedule))
	}
	if schedule[models.Wednesday] != "09:00 - 12:00, 13:00 - 17:00" {
		t.Fatalf("unexpected Wednesday rendering: %q", schedule[models.Wednesday])
	}
	if schedule[models.Monday] != "09:00 - 17:00" {
		t.Fatalf("unexpected Monday rendering: %q", schedule[models.Monday])
	}
	if schedule[models.Saturday] != "Closed" {
		t.Fatalf("unexpected Saturday rendering: %q", schedule[models.Saturday])
	}
}

func TestWeekSchedule_NoHoursConfigured(t *testing.T) {
	eng := NewEngine(&models.Tenant{ID: "tnt_1"}, nil)

	schedule := eng.WeekSchedule()
	if len(schedule) != 7 {
		t.Fatalf("expected all 7 weekdays, got %d", len(schedule))
	}
	for day, rendered := range schedule {
		if rendered != "Closed" {
			t.Fatalf("%s: expected Closed, got %q", day, rendered)
		}
	}
}
