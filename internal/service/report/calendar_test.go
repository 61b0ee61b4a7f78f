package report

import (
	"errors"
	"testing"
	"time"

	"github.com/timewatch/timewatch-backend-go/internal/domain/report"
	"github.com/timewatch/timewatch-backend-go/internal/domain/timestamp"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

func mustWeekend(t *testing.T, choice string) user.WeekendDays {
	t.Helper()
	days, err := user.ParseWeekendDays(choice)
	if err != nil {
		t.Fatalf("ParseWeekendDays(%q): %v", choice, err)
	}
	return days
}

func TestResolveDateRangeMonthly(t *testing.T) {
	tests := []struct {
		name        string
		year, month int
		wantStart   time.Time
		wantEnd     time.Time
	}{
		{
			name: "january", year: 2024, month: 1,
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "leap february", year: 2024, month: 2,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "non-leap february", year: 2023, month: 2,
			wantStart: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "december", year: 2023, month: 12,
			wantStart: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := resolveDateRange("monthly", tt.year, tt.month, "", "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestResolveDateRangeMonthlyInvalid(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, _, err := resolveDateRange("monthly", 2024, month, "", "")
		if !errors.Is(err, report.ErrInvalidDateRange) {
			t.Errorf("month %d: err = %v, want ErrInvalidDateRange", month, err)
		}
	}
}

func TestResolveDateRangeCustom(t *testing.T) {
	start, end, err := resolveDateRange("custom", 0, 0, "2024-03-01T00:00:00Z", "2024-03-15T00:00:00+00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}

	if _, _, err := resolveDateRange("custom", 0, 0, "2024-03-15T00:00:00Z", "2024-03-01T00:00:00Z"); !errors.Is(err, report.ErrInvalidDateRange) {
		t.Errorf("end before start: err = %v, want ErrInvalidDateRange", err)
	}
	if _, _, err := resolveDateRange("custom", 0, 0, "not-a-date", "2024-03-01T00:00:00Z"); !errors.Is(err, report.ErrInvalidDateRange) {
		t.Errorf("bad start: err = %v, want ErrInvalidDateRange", err)
	}
}

func TestResolveDateRangeUnknownType(t *testing.T) {
	if _, _, err := resolveDateRange("weekly", 2024, 1, "", ""); !errors.Is(err, report.ErrInvalidDateRangeType) {
		t.Errorf("err = %v, want ErrInvalidDateRangeType", err)
	}
}

func TestClassifyRangeWeekendsExcluded(t *testing.T) {
	owner := user.User{
		Email:       "worker@example.com",
		WeekendDays: mustWeekend(t, "saturday,sunday"),
	}

	// Mon 2024-03-04 through Sun 2024-03-10
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	counts := classifyRange(owner, nil, start, end)

	if counts.PotentialWorkDays != 5 {
		t.Errorf("PotentialWorkDays = %d, want 5", counts.PotentialWorkDays)
	}
	if counts.DaysNotReported != 5 {
		t.Errorf("DaysNotReported = %d, want 5", counts.DaysNotReported)
	}
	if len(counts.Breakdown) != 7 {
		t.Fatalf("Breakdown length = %d, want 7", len(counts.Breakdown))
	}
	saturday := counts.Breakdown[5]
	if saturday.Date != "2024-03-09" || saturday.HoursWorked != "00:00" || saturday.ReportingType != nil {
		t.Errorf("saturday = %+v, want zero hours and nil reporting type", saturday)
	}
}

func punched(email string, in, out time.Time, rt timestamp.ReportingType) timestamp.TimeStamp {
	return timestamp.TimeStamp{
		UserEmail:     email,
		PunchIn:       in,
		PunchOut:      &out,
		ReportingType: rt,
	}
}

func TestClassifyRangeFirstRecordWins(t *testing.T) {
	owner := user.User{Email: "worker@example.com"}
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	stamps := []timestamp.TimeStamp{
		punched(owner.Email, day.Add(8*time.Hour), day.Add(12*time.Hour), timestamp.ReportingWork),
		punched(owner.Email, day.Add(13*time.Hour), day.Add(17*time.Hour), timestamp.ReportingWork),
	}

	counts := classifyRange(owner, stamps, day, day)

	if counts.DaysWorked != 1 {
		t.Errorf("DaysWorked = %d, want 1", counts.DaysWorked)
	}
	if counts.WorkedSeconds != 4*3600 {
		t.Errorf("WorkedSeconds = %d, want %d", counts.WorkedSeconds, 4*3600)
	}
}

func TestClassifyRangePaidDayOff(t *testing.T) {
	owner := user.User{Email: "worker@example.com"}
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	stamps := []timestamp.TimeStamp{
		punched(owner.Email, day.Add(9*time.Hour), day.Add(9*time.Hour), timestamp.ReportingPaidOff),
	}

	counts := classifyRange(owner, stamps, day, day)

	if counts.PaidDaysOff != 1 {
		t.Errorf("PaidDaysOff = %d, want 1", counts.PaidDaysOff)
	}
	if counts.WorkedSeconds != paidDayOffSeconds {
		t.Errorf("WorkedSeconds = %d, want %d", counts.WorkedSeconds, paidDayOffSeconds)
	}
	if counts.Breakdown[0].HoursWorked != "08:00" {
		t.Errorf("HoursWorked = %q, want 08:00", counts.Breakdown[0].HoursWorked)
	}
}

func TestClassifyRangeUnpaidDayOff(t *testing.T) {
	owner := user.User{Email: "worker@example.com"}
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	stamps := []timestamp.TimeStamp{
		punched(owner.Email, day.Add(9*time.Hour), day.Add(9*time.Hour), timestamp.ReportingUnpaidOff),
	}

	counts := classifyRange(owner, stamps, day, day)

	if counts.UnpaidDaysOff != 1 {
		t.Errorf("UnpaidDaysOff = %d, want 1", counts.UnpaidDaysOff)
	}
	if counts.WorkedSeconds != 0 {
		t.Errorf("WorkedSeconds = %d, want 0", counts.WorkedSeconds)
	}
}

func TestClassifyRangeOpenRecordCountsZeroHours(t *testing.T) {
	owner := user.User{Email: "worker@example.com"}
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	stamps := []timestamp.TimeStamp{{
		UserEmail:     owner.Email,
		PunchIn:       day.Add(8 * time.Hour),
		ReportingType: timestamp.ReportingWork,
	}}

	counts := classifyRange(owner, stamps, day, day)

	if counts.DaysWorked != 1 {
		t.Errorf("DaysWorked = %d, want 1", counts.DaysWorked)
	}
	if counts.WorkedSeconds != 0 {
		t.Errorf("WorkedSeconds = %d, want 0", counts.WorkedSeconds)
	}
}

func TestFormatHoursMinutes(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00"},
		{59, "00:00"},
		{60, "00:01"},
		{3600, "01:00"},
		{5*3600 + 30*60, "05:30"},
		{170*3600 + 45*60, "170:45"},
	}
	for _, tt := range tests {
		if got := formatHoursMinutes(tt.seconds); got != tt.want {
			t.Errorf("formatHoursMinutes(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestSalaryFor(t *testing.T) {
	if got := round2(salaryFor(8*3600, 25)); got != 200 {
		t.Errorf("8h at 25/h = %v, want 200", got)
	}
	if got := round2(salaryFor(90*60, 10)); got != 15 {
		t.Errorf("90m at 10/h = %v, want 15", got)
	}
	if got := round2(salaryFor(100, 36)); got != 1 {
		t.Errorf("100s at 36/h = %v, want 1", got)
	}
}
