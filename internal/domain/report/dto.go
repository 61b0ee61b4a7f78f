package report

import (
	"time"

	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

// DateRangeType selects how the reporting period is derived.
type DateRangeType string

const (
	RangeMonthly DateRangeType = "monthly"
	RangeCustom  DateRangeType = "custom"
)

// UserReportRequest asks for a single employee's report.
type UserReportRequest struct {
	UserEmail     string
	DateRangeType string
	Year          int
	Month         int
	StartDate     string
	EndDate       string
}

func (r *UserReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(r.UserEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_email",
			Message: "invalid email format",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CompanyReportRequest asks for a per-employee summary of one company.
type CompanyReportRequest struct {
	CompanyID     string
	DateRangeType string
	Year          int
	Month         int
	StartDate     string
	EndDate       string
}

func (r *CompanyReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id must be a UUID",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OverviewRequest asks for the cross-company overview.
type OverviewRequest struct {
	DateRangeType string
	Year          int
	Month         int
	StartDate     string
	EndDate       string
}

// DailyRecord is one calendar day inside a user report.
type DailyRecord struct {
	Date          string  `json:"date"`
	HoursWorked   string  `json:"hoursWorked"`
	ReportingType *string `json:"reportingType"`
}

// UserDetails is the employee snapshot embedded in a report entry.
type UserDetails struct {
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	Phone         string  `json:"phone"`
	Salary        float64 `json:"salary"`
	WorkCapacity  string  `json:"workCapacity"`
	WeekendChoice string  `json:"weekendChoice"`
}

// Entry is the aggregated report for one employee over a date range.
// DailyBreakdown is omitted in company-level summaries.
type Entry struct {
	EmployeeName         string        `json:"employeeName"`
	DaysWorked           int           `json:"daysWorked"`
	PaidDaysOff          int           `json:"paidDaysOff"`
	UnpaidDaysOff        int           `json:"unpaidDaysOff"`
	DaysNotReported      int           `json:"daysNotReported"`
	PotentialWorkDays    int           `json:"potentialWorkDays"`
	TotalHoursWorked     string        `json:"totalHoursWorked"`
	WorkCapacityForRange string        `json:"workCapacityforRange"`
	TotalPaymentRequired float64       `json:"totalPaymentRequired"`
	DailyBreakdown       []DailyRecord `json:"dailyBreakdown,omitempty"`
	UserDetails          UserDetails   `json:"userDetails"`
}

// OverviewRow is one company inside the cross-company overview.
type OverviewRow struct {
	CompanyName        string    `json:"companyName"`
	NumEmployees       int       `json:"numEmployees"`
	TotalHoursWorked   string    `json:"totalHoursWorked"`
	TotalMonthlySalary float64   `json:"totalMonthlySalary"`
	MonthlyPayments    []float64 `json:"monthlyPayments"`
	AdminNames         []string  `json:"adminNames"`
}

// Period echoes the resolved date range back to the caller.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
