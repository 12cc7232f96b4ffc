// File: utils/timeutil_test.go
package utils

import (
	"testing"
	"time"
)

func TestClockMinutesRoundTrip(t *testing.T) {
	tests := []struct {
		clock   string
		minutes int
	}{
		{"00:00", 0},
		{"00:01", 1},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tc := range tests {
		if got := ClockToMinutes(tc.clock); got != tc.minutes {
			t.Errorf("ClockToMinutes(%q) = %d, want %d", tc.clock, got, tc.minutes)
		}
		if got := MinutesToClock(tc.minutes); got != tc.clock {
			t.Errorf("MinutesToClock(%d) = %q, want %q", tc.minutes, got, tc.clock)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		clock    string
		duration int
		want     string
	}{
		{"09:00", 30, "09:30"},
		{"09:45", 30, "10:15"},
		{"23:30", 45, "00:15"},
		{"00:15", -30, "23:45"},
		{"12:00", 0, "12:00"},
	}
	for _, tc := range tests {
		if got := AddMinutes(tc.clock, tc.duration); got != tc.want {
			t.Errorf("AddMinutes(%q, %d) = %q, want %q", tc.clock, tc.duration, got, tc.want)
		}
	}
}

func TestParseDateClock(t *testing.T) {
	got := ParseDateClock("2024-12-04", "09:30")
	want := time.Date(2024, time.December, 4, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("ParseDateClock = %v, want %v", got, want)
	}
	if DateString(got) != "2024-12-04" {
		t.Fatalf("DateString = %q", DateString(got))
	}
}

func TestClockOnDate(t *testing.T) {
	date := time.Date(2024, time.December, 4, 15, 42, 7, 0, time.Local)
	got := ClockOnDate(date, "09:00")
	if got.Hour() != 9 || got.Minute() != 0 || got.Day() != 4 {
		t.Fatalf("ClockOnDate = %v", got)
	}
}

func TestFormatClock12(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{9, 0, "9:00 AM"},
		{12, 0, "12:00 PM"},
		{13, 30, "1:30 PM"},
		{0, 5, "12:05 AM"},
	}
	for _, tc := range tests {
		at := time.Date(2024, time.December, 4, tc.hour, tc.minute, 0, 0, time.Local)
		if got := FormatClock12(at); got != tc.want {
			t.Errorf("FormatClock12(%02d:%02d) = %q, want %q", tc.hour, tc.minute, got, tc.want)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	at := time.Date(2024, time.December, 4, 15, 42, 7, 123, time.Local)
	got := StartOfDay(at)
	want := time.Date(2024, time.December, 4, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("StartOfDay = %v, want %v", got, want)
	}
}
