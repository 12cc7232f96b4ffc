package calendar

import (
	"testing"

	"islandpulse/models"
)

func TestValidateHours(t *testing.T) {
	tests := []struct {
		name    string
		hours   models.BusinessHours
		wantErr bool
	}{
		{
			name: "standard week",
			hours: models.BusinessHours{
				models.Monday:  {{Open: "09:00", Close: "17:00"}},
				models.Tuesday: {{Open: "09:00", Close: "12:00"}, {Open: "13:00", Close: "17:00"}},
				models.Sunday:  {},
			},
		},
		{
			name: "midnight close",
			hours: models.BusinessHours{
				models.Friday: {{Open: "18:00", Close: "24:00"}},
			},
		},
		{
			name: "back to back intervals",
			hours: models.BusinessHours{
				models.Monday: {{Open: "09:00", Close: "12:00"}, {Open: "12:00", Close: "17:00"}},
			},
		},
		{
			name: "unpadded hour",
			hours: models.BusinessHours{
				models.Monday: {{Open: "9:00", Close: "17:00"}},
			},
			wantErr: true,
		},
		{
			name: "minutes past midnight cap",
			hours: models.BusinessHours{
				models.Monday: {{Open: "09:00", Close: "24:30"}},
			},
			wantErr: true,
		},
		{
			name: "open equals close",
			hours: models.BusinessHours{
				models.Monday: {{Open: "09:00", Close: "09:00"}},
			},
			wantErr: true,
		},
		{
			name: "open after close",
			hours: models.BusinessHours{
				models.Monday: {{Open: "17:00", Close: "09:00"}},
			},
			wantErr: true,
		},
		{
			name: "overlapping intervals",
			hours: models.BusinessHours{
				models.Monday: {{Open: "09:00", Close: "13:00"}, {Open: "12:00", Close: "17:00"}},
			},
			wantErr: true,
		},
		{
			name: "unsorted intervals",
			hours: models.BusinessHours{
				models.Monday: {{Open: "13:00", Close: "17:00"}, {Open: "09:00", Close: "12:00"}},
			},
			wantErr: true,
		},
		{
			name: "unknown weekday key",
			hours: models.BusinessHours{
				models.Weekday("funday"): {{Open: "09:00", Close: "17:00"}},
			},
			wantErr: true,
		},
		{
			name: "junk clock string",
			hours: models.BusinessHours{
				models.Monday: {{Open: "09:xx", Close: "17:00"}},
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateHours(tc.hours)
			if tc.wantErr && err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
