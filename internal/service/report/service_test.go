package report

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/domain/report"
	"github.com/timewatch/timewatch-backend-go/internal/domain/timestamp"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) (user.User, error) {
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) SetPassword(_ context.Context, email, passHash string) error {
	u, ok := f.users[email]
	if !ok {
		return user.ErrUserNotFound
	}
	u.PassHash = passHash
	f.users[email] = u
	return nil
}

func (f *fakeUserRepo) Deactivate(_ context.Context, email string) error {
	u, ok := f.users[email]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsActive = false
	f.users[email] = u
	return nil
}

func (f *fakeUserRepo) Reactivate(_ context.Context, email string) error {
	u, ok := f.users[email]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsActive = true
	f.users[email] = u
	return nil
}

func (f *fakeUserRepo) sorted(filter func(user.User) bool) []user.User {
	var out []user.User
	for _, u := range f.users {
		if filter(u) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}

func (f *fakeUserRepo) ListByCompany(_ context.Context, companyID string, scope user.ListScope) ([]user.User, error) {
	return f.sorted(func(u user.User) bool {
		if u.CompanyID != companyID {
			return false
		}
		switch scope {
		case user.ScopeInactive:
			return !u.IsActive
		case user.ScopeAll:
			return true
		default:
			return u.IsActive
		}
	}), nil
}

func (f *fakeUserRepo) List(_ context.Context, scope user.ListScope) ([]user.User, error) {
	return f.sorted(func(u user.User) bool {
		switch scope {
		case user.ScopeInactive:
			return !u.IsActive
		case user.ScopeAll:
			return true
		default:
			return u.IsActive
		}
	}), nil
}

func (f *fakeUserRepo) GetActiveByCompany(ctx context.Context, companyID string) ([]user.User, error) {
	return f.ListByCompany(ctx, companyID, user.ScopeActive)
}

func (f *fakeUserRepo) GetCompanyAdmins(_ context.Context, companyID string) ([]user.User, error) {
	return f.sorted(func(u user.User) bool {
		return u.CompanyID == companyID && u.IsActive && u.Permission != user.PermissionEmployee
	}), nil
}

type fakeCompanyRepo struct {
	companies map[string]company.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, c company.Company) (company.Company, error) {
	f.companies[c.ID] = c
	return c, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c company.Company) (company.Company, error) {
	f.companies[c.ID] = c
	return c, nil
}

func (f *fakeCompanyRepo) Deactivate(_ context.Context, id string) error {
	c, ok := f.companies[id]
	if !ok {
		return company.ErrCompanyNotFound
	}
	c.IsActive = false
	f.companies[id] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) GetByName(_ context.Context, name string) (company.Company, error) {
	for _, c := range f.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) ListActive(_ context.Context) ([]company.Company, error) {
	var out []company.Company
	for _, c := range f.companies {
		if c.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCompanyRepo) ListAll(_ context.Context) ([]company.Company, error) {
	var out []company.Company
	for _, c := range f.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeTimeStampRepo struct {
	stamps []timestamp.TimeStamp
}

func (f *fakeTimeStampRepo) Create(_ context.Context, s timestamp.TimeStamp) (timestamp.TimeStamp, error) {
	f.stamps = append(f.stamps, s)
	return s, nil
}

func (f *fakeTimeStampRepo) Update(_ context.Context, s timestamp.TimeStamp) (timestamp.TimeStamp, error) {
	for i := range f.stamps {
		if f.stamps[i].UUID == s.UUID {
			f.stamps[i] = s
			return s, nil
		}
	}
	return timestamp.TimeStamp{}, timestamp.ErrTimeStampNotFound
}

func (f *fakeTimeStampRepo) Delete(_ context.Context, uuid string) error {
	for i := range f.stamps {
		if f.stamps[i].UUID == uuid {
			f.stamps = append(f.stamps[:i], f.stamps[i+1:]...)
			return nil
		}
	}
	return timestamp.ErrTimeStampNotFound
}

func (f *fakeTimeStampRepo) GetByUUID(_ context.Context, uuid string) (timestamp.TimeStamp, error) {
	for _, s := range f.stamps {
		if s.UUID == uuid {
			return s, nil
		}
	}
	return timestamp.TimeStamp{}, timestamp.ErrTimeStampNotFound
}

func (f *fakeTimeStampRepo) GetOpenOnDate(_ context.Context, userEmail string, day time.Time) (timestamp.TimeStamp, error) {
	for _, s := range f.stamps {
		if s.UserEmail == userEmail && s.IsOpen() && s.OnDate(day) {
			return s, nil
		}
	}
	return timestamp.TimeStamp{}, timestamp.ErrTimeStampNotFound
}

func (f *fakeTimeStampRepo) GetRange(_ context.Context, userEmail string, start, end time.Time) ([]timestamp.TimeStamp, error) {
	limit := end.AddDate(0, 0, 1)
	var out []timestamp.TimeStamp
	for _, s := range f.stamps {
		if s.UserEmail == userEmail && !s.PunchIn.Before(start) && s.PunchIn.Before(limit) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PunchIn.Before(out[j].PunchIn) })
	return out, nil
}

func (f *fakeTimeStampRepo) GetAll(_ context.Context) ([]timestamp.TimeStamp, error) {
	return f.stamps, nil
}

func (f *fakeTimeStampRepo) GetStaleOpen(_ context.Context, cutoff time.Time) ([]timestamp.TimeStamp, error) {
	var out []timestamp.TimeStamp
	for _, s := range f.stamps {
		if s.IsOpen() && s.PunchIn.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out, nil
}

func workStamp(email string, day time.Time, hours int) timestamp.TimeStamp {
	in := day.Add(9 * time.Hour)
	out := in.Add(time.Duration(hours) * time.Hour)
	return timestamp.TimeStamp{
		UserEmail:     email,
		PunchIn:       in,
		PunchOut:      &out,
		ReportingType: timestamp.ReportingWork,
	}
}

func newReportFixture(t *testing.T) (*fakeUserRepo, *fakeCompanyRepo, *fakeTimeStampRepo, report.ReportService) {
	t.Helper()

	weekend, err := user.ParseWeekendDays("saturday,sunday")
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]user.User{
		"admin@timewatch.example": {
			Email:      "admin@timewatch.example",
			FirstName:  "Net",
			LastName:   "Admin",
			CompanyID:  "company-admin",
			Permission: user.PermissionNetAdmin,
			IsActive:   true,
		},
		"boss@acme.example": {
			Email:        "boss@acme.example",
			FirstName:    "Bonnie",
			LastName:     "Boss",
			CompanyID:    "company-acme",
			Permission:   user.PermissionEmployer,
			IsActive:     true,
			Salary:       40,
			WorkCapacity: 8,
			WeekendDays:  weekend,
		},
		"worker@acme.example": {
			Email:        "worker@acme.example",
			FirstName:    "Walter",
			LastName:     "Worker",
			Role:         "technician",
			CompanyID:    "company-acme",
			Permission:   user.PermissionEmployee,
			IsActive:     true,
			Salary:       25,
			WorkCapacity: 8,
			WeekendDays:  weekend,
		},
	}}
	companies := &fakeCompanyRepo{companies: map[string]company.Company{
		"company-acme": {ID: "company-acme", Name: "Acme", IsActive: true},
	}}
	stamps := &fakeTimeStampRepo{}

	return users, companies, stamps, NewReportService(users, companies, stamps)
}

func TestGenerateUserReport(t *testing.T) {
	_, _, stamps, svc := newReportFixture(t)

	// Work week Mon 2024-03-04 .. Fri 2024-03-08, two 8h days and one paid day off
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	stamps.stamps = []timestamp.TimeStamp{
		workStamp("worker@acme.example", monday, 8),
		workStamp("worker@acme.example", monday.AddDate(0, 0, 1), 8),
		{
			UserEmail:     "worker@acme.example",
			PunchIn:       monday.AddDate(0, 0, 2).Add(9 * time.Hour),
			PunchOut:      timePtr(monday.AddDate(0, 0, 2).Add(9 * time.Hour)),
			ReportingType: timestamp.ReportingPaidOff,
		},
	}

	actor := user.Actor{Email: "boss@acme.example", Permission: user.PermissionEmployer, CompanyID: "company-acme"}
	entry, err := svc.GenerateUserReport(context.Background(), actor, report.UserReportRequest{
		UserEmail:     "worker@acme.example",
		DateRangeType: "custom",
		StartDate:     "2024-03-04T00:00:00Z",
		EndDate:       "2024-03-10T00:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "Walter Worker", entry.EmployeeName)
	assert.Equal(t, 2, entry.DaysWorked)
	assert.Equal(t, 1, entry.PaidDaysOff)
	assert.Equal(t, 0, entry.UnpaidDaysOff)
	assert.Equal(t, 2, entry.DaysNotReported)
	assert.Equal(t, 5, entry.PotentialWorkDays)
	assert.Equal(t, "24:00", entry.TotalHoursWorked)
	assert.Equal(t, "40:00", entry.WorkCapacityForRange)
	assert.Equal(t, 600.0, entry.TotalPaymentRequired)
	assert.Len(t, entry.DailyBreakdown, 7)
	assert.Equal(t, "worker@acme.example", entry.UserDetails.Email)
	assert.Equal(t, "saturday,sunday", entry.UserDetails.WeekendChoice)
}

func TestGenerateUserReportEmployeeSelfOnly(t *testing.T) {
	_, _, _, svc := newReportFixture(t)

	actor := user.Actor{Email: "worker@acme.example", Permission: user.PermissionEmployee, CompanyID: "company-acme"}
	_, err := svc.GenerateUserReport(context.Background(), actor, report.UserReportRequest{
		UserEmail:     "boss@acme.example",
		DateRangeType: "monthly",
		Year:          2024,
		Month:         3,
	})
	assert.ErrorIs(t, err, report.ErrUnauthorizedAccess)

	_, err = svc.GenerateUserReport(context.Background(), actor, report.UserReportRequest{
		UserEmail:     "worker@acme.example",
		DateRangeType: "monthly",
		Year:          2024,
		Month:         3,
	})
	assert.NoError(t, err)
}

func TestGenerateCompanySummary(t *testing.T) {
	_, _, stamps, svc := newReportFixture(t)

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	stamps.stamps = []timestamp.TimeStamp{
		workStamp("worker@acme.example", monday, 8),
		workStamp("boss@acme.example", monday, 4),
	}

	actor := user.Actor{Email: "boss@acme.example", Permission: user.PermissionEmployer, CompanyID: "company-acme"}
	entries, err := svc.GenerateCompanySummary(context.Background(), actor, report.CompanyReportRequest{
		CompanyID:     "00000000-0000-0000-0000-000000000000",
		DateRangeType: "monthly",
		Year:          2024,
		Month:         3,
	})
	assert.ErrorIs(t, err, report.ErrUnauthorizedAccess)
	assert.Nil(t, entries)
}

func TestGenerateCompanySummaryEntries(t *testing.T) {
	users, companies, stamps, _ := newReportFixture(t)

	// Re-key the company under a UUID so the request validates
	const acmeID = "0f8f1c1a-6c1e-4e43-9a9d-6f0cbb6f2a11"
	acme := companies.companies["company-acme"]
	acme.ID = acmeID
	companies.companies = map[string]company.Company{acmeID: acme}
	for email, u := range users.users {
		if u.CompanyID == "company-acme" {
			u.CompanyID = acmeID
			users.users[email] = u
		}
	}
	svc := NewReportService(users, companies, stamps)

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	stamps.stamps = []timestamp.TimeStamp{
		workStamp("worker@acme.example", monday, 8),
		workStamp("boss@acme.example", monday, 4),
	}

	actor := user.Actor{Email: "boss@acme.example", Permission: user.PermissionEmployer, CompanyID: acmeID}
	entries, err := svc.GenerateCompanySummary(context.Background(), actor, report.CompanyReportRequest{
		CompanyID:     acmeID,
		DateRangeType: "monthly",
		Year:          2024,
		Month:         3,
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Bonnie Boss", entries[0].EmployeeName)
	assert.Equal(t, "04:00", entries[0].TotalHoursWorked)
	assert.Equal(t, 160.0, entries[0].TotalPaymentRequired)
	assert.Empty(t, entries[0].DailyBreakdown)

	assert.Equal(t, "Walter Worker", entries[1].EmployeeName)
	assert.Equal(t, "08:00", entries[1].TotalHoursWorked)
	assert.Equal(t, 200.0, entries[1].TotalPaymentRequired)
}

func TestGenerateCompanyOverviewPerEmployeeRates(t *testing.T) {
	_, _, stamps, svc := newReportFixture(t)

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	stamps.stamps = []timestamp.TimeStamp{
		workStamp("worker@acme.example", monday, 8), // 8h at 25/h = 200
		workStamp("boss@acme.example", monday, 8),   // 8h at 40/h = 320
	}

	actor := user.Actor{Email: "admin@timewatch.example", Permission: user.PermissionNetAdmin, CompanyID: "company-admin"}
	rows, err := svc.GenerateCompanyOverview(context.Background(), actor, report.OverviewRequest{
		DateRangeType: "monthly",
		Year:          2024,
		Month:         3,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Acme", row.CompanyName)
	assert.Equal(t, 2, row.NumEmployees)
	assert.Equal(t, "16:00", row.TotalHoursWorked)
	// Each employee is paid at their own rate, not a running cumulative one
	assert.Equal(t, []float64{320, 200}, row.MonthlyPayments)
	assert.Equal(t, 520.0, row.TotalMonthlySalary)
	assert.Equal(t, []string{"Bonnie Boss"}, row.AdminNames)
}

func TestGenerateCompanyOverviewNetAdminOnly(t *testing.T) {
	_, _, _, svc := newReportFixture(t)

	actor := user.Actor{Email: "boss@acme.example", Permission: user.PermissionEmployer, CompanyID: "company-acme"}
	_, err := svc.GenerateCompanyOverview(context.Background(), actor, report.OverviewRequest{
		DateRangeType: "monthly",
		Year:          2024,
		Month:         3,
	})
	assert.ErrorIs(t, err, report.ErrUnauthorizedAccess)
}

func timePtr(t time.Time) *time.Time { return &t }
