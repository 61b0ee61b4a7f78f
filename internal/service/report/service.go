package report

import (
	"context"
	"fmt"
	"time"

	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/domain/report"
	"github.com/timewatch/timewatch-backend-go/internal/domain/timestamp"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	userRepo      user.UserRepository
	companyRepo   company.CompanyRepository
	timeStampRepo timestamp.TimeStampRepository
}

func NewReportService(
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	timeStampRepo timestamp.TimeStampRepository,
) report.ReportService {
	return &ReportServiceImpl{
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		timeStampRepo: timeStampRepo,
	}
}

// buildEntry aggregates one employee's records over the range into a
// report entry. The daily breakdown is included only for single-user
// reports.
func (s *ReportServiceImpl) buildEntry(ctx context.Context, owner user.User, start, end time.Time, includeBreakdown bool) (report.Entry, error) {
	stamps, err := s.timeStampRepo.GetRange(ctx, owner.Email, start, end)
	if err != nil {
		return report.Entry{}, fmt.Errorf("failed to load time stamps: %w", err)
	}

	counts := classifyRange(owner, stamps, start, end)

	entry := report.Entry{
		EmployeeName:         owner.FullName(),
		DaysWorked:           counts.DaysWorked,
		PaidDaysOff:          counts.PaidDaysOff,
		UnpaidDaysOff:        counts.UnpaidDaysOff,
		DaysNotReported:      counts.DaysNotReported,
		PotentialWorkDays:    counts.PotentialWorkDays,
		TotalHoursWorked:     formatHoursMinutes(counts.WorkedSeconds),
		WorkCapacityForRange: formatHoursMinutes(int64(counts.PotentialWorkDays) * capacitySeconds(owner.WorkCapacity)),
		TotalPaymentRequired: round2(salaryFor(counts.WorkedSeconds, owner.Salary)),
		UserDetails: report.UserDetails{
			Email:         owner.Email,
			Role:          owner.Role,
			Phone:         owner.MobilePhone,
			Salary:        owner.Salary,
			WorkCapacity:  formatHoursMinutes(capacitySeconds(owner.WorkCapacity)),
			WeekendChoice: owner.WeekendDays.String(),
		},
	}
	if includeBreakdown {
		entry.DailyBreakdown = counts.Breakdown
	}
	return entry, nil
}

// GenerateUserReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateUserReport(ctx context.Context, actor user.Actor, req report.UserReportRequest) (report.Entry, error) {
	if err := req.Validate(); err != nil {
		return report.Entry{}, err
	}

	start, end, err := resolveDateRange(req.DateRangeType, req.Year, req.Month, req.StartDate, req.EndDate)
	if err != nil {
		return report.Entry{}, err
	}

	owner, err := s.userRepo.GetByEmail(ctx, req.UserEmail)
	if err != nil {
		return report.Entry{}, err
	}
	if !actor.CanAccessUser(owner) {
		return report.Entry{}, report.ErrUnauthorizedAccess
	}

	return s.buildEntry(ctx, owner, start, end, true)
}

// GenerateCompanySummary implements report.ReportService. One entry per
// active employee, without daily breakdowns.
func (s *ReportServiceImpl) GenerateCompanySummary(ctx context.Context, actor user.Actor, req report.CompanyReportRequest) ([]report.Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end, err := resolveDateRange(req.DateRangeType, req.Year, req.Month, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccessCompany(req.CompanyID) {
		return nil, report.ErrUnauthorizedAccess
	}
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	employees, err := s.userRepo.GetActiveByCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company employees: %w", err)
	}

	entries := make([]report.Entry, 0, len(employees))
	for _, employee := range employees {
		entry, err := s.buildEntry(ctx, employee, start, end, false)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GenerateCompanyOverview implements report.ReportService. Net admins
// only. Each employee's payment is their own worked time at their own
// rate, summed per company.
func (s *ReportServiceImpl) GenerateCompanyOverview(ctx context.Context, actor user.Actor, req report.OverviewRequest) ([]report.OverviewRow, error) {
	if !actor.Permission.IsNetAdmin() {
		return nil, report.ErrUnauthorizedAccess
	}

	start, end, err := resolveDateRange(req.DateRangeType, req.Year, req.Month, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	companies, err := s.companyRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	rows := make([]report.OverviewRow, 0, len(companies))
	for _, comp := range companies {
		employees, err := s.userRepo.GetActiveByCompany(ctx, comp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list company employees: %w", err)
		}

		var totalSeconds int64
		var totalSalary float64
		payments := make([]float64, 0, len(employees))

		for _, employee := range employees {
			stamps, err := s.timeStampRepo.GetRange(ctx, employee.Email, start, end)
			if err != nil {
				return nil, fmt.Errorf("failed to load time stamps: %w", err)
			}
			counts := classifyRange(employee, stamps, start, end)

			payment := round2(salaryFor(counts.WorkedSeconds, employee.Salary))
			payments = append(payments, payment)
			totalSeconds += counts.WorkedSeconds
			totalSalary += payment
		}

		admins, err := s.userRepo.GetCompanyAdmins(ctx, comp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list company admins: %w", err)
		}
		adminNames := make([]string, 0, len(admins))
		for _, admin := range admins {
			adminNames = append(adminNames, admin.FullName())
		}

		rows = append(rows, report.OverviewRow{
			CompanyName:        comp.Name,
			NumEmployees:       len(employees),
			TotalHoursWorked:   formatHoursMinutes(totalSeconds),
			TotalMonthlySalary: round2(totalSalary),
			MonthlyPayments:    payments,
			AdminNames:         adminNames,
		})
	}
	return rows, nil
}
