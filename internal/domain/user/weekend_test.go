package user

import (
	"testing"
	"time"
)

func TestParseWeekendDays(t *testing.T) {
	tests := []struct {
		name    string
		choice  string
		want    []time.Weekday
		wantErr bool
	}{
		{name: "standard weekend", choice: "saturday,sunday", want: []time.Weekday{time.Saturday, time.Sunday}},
		{name: "middle east weekend", choice: "Friday,Saturday", want: []time.Weekday{time.Friday, time.Saturday}},
		{name: "mixed case with spaces", choice: " SUNDAY , monday ", want: []time.Weekday{time.Sunday, time.Monday}},
		{name: "single day", choice: "wednesday", want: []time.Weekday{time.Wednesday}},
		{name: "empty set", choice: "", want: nil},
		{name: "unknown day", choice: "saturday,funday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := ParseWeekendDays(tt.choice)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseWeekendDays(%q) expected error, got %v", tt.choice, days)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWeekendDays(%q) unexpected error: %v", tt.choice, err)
			}
			if len(days) != len(tt.want) {
				t.Fatalf("ParseWeekendDays(%q) = %v, want %v", tt.choice, days, tt.want)
			}
			for _, day := range tt.want {
				if !days.Has(day) {
					t.Errorf("ParseWeekendDays(%q) missing %v", tt.choice, day)
				}
			}
		})
	}
}

func TestWeekendDaysString(t *testing.T) {
	days, err := ParseWeekendDays("Saturday,Friday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := days.String(); got != "friday,saturday" {
		t.Errorf("String() = %q, want %q", got, "friday,saturday")
	}

	empty, err := ParseWeekendDays("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := empty.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestIsWorkDay(t *testing.T) {
	weekend, err := ParseWeekendDays("saturday,sunday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := User{WeekendDays: weekend}

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	if !u.IsWorkDay(monday) {
		t.Error("monday should be a work day")
	}
	if u.IsWorkDay(saturday) {
		t.Error("saturday should not be a work day")
	}
}
