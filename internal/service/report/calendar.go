package report

import (
	"fmt"
	"math"
	"time"

	"github.com/timewatch/timewatch-backend-go/internal/domain/report"
	"github.com/timewatch/timewatch-backend-go/internal/domain/timestamp"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

const paidDayOffSeconds = 8 * 3600

// resolveDateRange turns the request parameters into an inclusive UTC
// calendar day range. Monthly ranges run from the 1st to the last day of
// the month, both at midnight.
func resolveDateRange(rangeType string, year, month int, startDate, endDate string) (start, end time.Time, err error) {
	switch report.DateRangeType(rangeType) {
	case report.RangeMonthly:
		if month < 1 || month > 12 || year < 1 {
			return time.Time{}, time.Time{}, report.ErrInvalidDateRange
		}
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
		return start, end, nil

	case report.RangeCustom:
		start, okStart := validator.IsValidDateTime(startDate)
		end, okEnd := validator.IsValidDateTime(endDate)
		if !okStart || !okEnd {
			return time.Time{}, time.Time{}, report.ErrInvalidDateRange
		}
		start, end = start.UTC(), end.UTC()
		if end.Before(start) {
			return time.Time{}, time.Time{}, report.ErrInvalidDateRange
		}
		return start, end, nil

	default:
		return time.Time{}, time.Time{}, report.ErrInvalidDateRangeType
	}
}

// tally is the per-employee attendance aggregate over a date range.
type tally struct {
	DaysWorked        int
	PaidDaysOff       int
	UnpaidDaysOff     int
	DaysNotReported   int
	PotentialWorkDays int
	WorkedSeconds     int64
	Breakdown         []report.DailyRecord
}

// firstRecordOn returns the earliest record punched in on the given day.
// Records are assumed ordered by punch-in, so the first match wins.
func firstRecordOn(stamps []timestamp.TimeStamp, day time.Time) (timestamp.TimeStamp, bool) {
	for _, t := range stamps {
		if t.OnDate(day) {
			return t, true
		}
	}
	return timestamp.TimeStamp{}, false
}

// classifyRange walks every calendar day from start to end inclusive and
// buckets it. Weekends appear in the breakdown with zero hours but are
// excluded from all counters, a day with records counts only its first
// record.
func classifyRange(owner user.User, stamps []timestamp.TimeStamp, start, end time.Time) tally {
	var result tally

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !owner.IsWorkDay(day) {
			result.Breakdown = append(result.Breakdown, report.DailyRecord{
				Date:        day.Format("2006-01-02"),
				HoursWorked: formatHoursMinutes(0),
			})
			continue
		}
		result.PotentialWorkDays++

		record, found := firstRecordOn(stamps, day)
		if !found {
			result.DaysNotReported++
			result.Breakdown = append(result.Breakdown, report.DailyRecord{
				Date:        day.Format("2006-01-02"),
				HoursWorked: formatHoursMinutes(0),
			})
			continue
		}

		var credited int64
		switch record.ReportingType {
		case timestamp.ReportingPaidOff:
			result.PaidDaysOff++
			credited = paidDayOffSeconds
		case timestamp.ReportingUnpaidOff:
			result.UnpaidDaysOff++
		default:
			result.DaysWorked++
			credited = record.WorkSeconds()
		}
		result.WorkedSeconds += credited

		reportingType := string(record.ReportingType)
		result.Breakdown = append(result.Breakdown, report.DailyRecord{
			Date:          day.Format("2006-01-02"),
			HoursWorked:   formatHoursMinutes(credited),
			ReportingType: &reportingType,
		})
	}

	return result
}

// salaryFor converts worked seconds into pay at the given hourly rate.
func salaryFor(seconds int64, hourlyRate float64) float64 {
	return float64(seconds) / 3600 * hourlyRate
}

// round2 rounds to two decimal places for presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatHoursMinutes renders whole seconds as zero-padded HH:MM,
// truncating leftover seconds. Hours may exceed 24.
func formatHoursMinutes(seconds int64) string {
	return fmt.Sprintf("%02d:%02d", seconds/3600, (seconds%3600)/60)
}

// capacitySeconds converts a daily capacity in fractional hours to seconds.
func capacitySeconds(hours float64) int64 {
	return int64(hours * 3600)
}
