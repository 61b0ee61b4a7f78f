package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "changeme123"

type seedUser struct {
	email         string
	firstName     string
	lastName      string
	mobilePhone   string
	role          string
	permission    user.Permission
	salary        float64
	workCapacity  float64
	weekendChoice string
}

// Seed provisions the net admin account and two demo companies with an
// employer and an employee each. It is idempotent, existing rows are
// left alone.
func Seed(ctx context.Context, userRepo user.UserRepository, companyRepo company.CompanyRepository) error {
	adminCompany, err := ensureCompany(ctx, companyRepo, "NetAdmin Company")
	if err != nil {
		return err
	}

	if err := ensureUser(ctx, userRepo, adminCompany.ID, seedUser{
		email:         "admin@timewatch.local",
		firstName:     "Net",
		lastName:      "Admin",
		role:          "Net Admin",
		permission:    user.PermissionNetAdmin,
		salary:        1,
		workCapacity:  9,
		weekendChoice: "friday,saturday",
	}); err != nil {
		return err
	}

	for _, name := range []string{"tlv300", "test1"} {
		demo, err := ensureCompany(ctx, companyRepo, name)
		if err != nil {
			return err
		}

		if err := ensureUser(ctx, userRepo, demo.ID, seedUser{
			email:         fmt.Sprintf("employer@%s.com", name),
			firstName:     "Employer",
			lastName:      name,
			mobilePhone:   "0123456789",
			role:          "Manager",
			permission:    user.PermissionEmployer,
			salary:        30,
			workCapacity:  8,
			weekendChoice: "friday,saturday",
		}); err != nil {
			return err
		}

		if err := ensureUser(ctx, userRepo, demo.ID, seedUser{
			email:         fmt.Sprintf("employee@%s.com", name),
			firstName:     "Employee",
			lastName:      name,
			mobilePhone:   "0123456789",
			role:          "secretary",
			permission:    user.PermissionEmployee,
			salary:        20,
			workCapacity:  8,
			weekendChoice: "saturday,sunday",
		}); err != nil {
			return err
		}
	}

	return nil
}

func ensureCompany(ctx context.Context, companyRepo company.CompanyRepository, name string) (company.Company, error) {
	existing, err := companyRepo.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, company.ErrCompanyNotFound) {
		return company.Company{}, fmt.Errorf("failed to look up company %q: %w", name, err)
	}

	created, err := companyRepo.Create(ctx, company.Company{Name: name, IsActive: true})
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to seed company %q: %w", name, err)
	}
	slog.Info("seeded company", "company_name", name)
	return created, nil
}

func ensureUser(ctx context.Context, userRepo user.UserRepository, companyID string, seed seedUser) error {
	exists, err := userRepo.ExistsByEmail(ctx, seed.email)
	if err != nil {
		return fmt.Errorf("failed to look up user %q: %w", seed.email, err)
	}
	if exists {
		return nil
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	weekendDays, err := user.ParseWeekendDays(seed.weekendChoice)
	if err != nil {
		return fmt.Errorf("failed to parse weekend choice for %q: %w", seed.email, err)
	}

	_, err = userRepo.Create(ctx, user.User{
		Email:           seed.email,
		FirstName:       seed.firstName,
		LastName:        seed.lastName,
		MobilePhone:     seed.mobilePhone,
		CompanyID:       companyID,
		Role:            seed.role,
		Permission:      seed.permission,
		PassHash:        string(passHash),
		IsActive:        true,
		Salary:          seed.salary,
		WorkCapacity:    seed.workCapacity,
		EmploymentStart: time.Now().UTC(),
		WeekendDays:     weekendDays,
	})
	if err != nil {
		return fmt.Errorf("failed to seed user %q: %w", seed.email, err)
	}
	slog.Info("seeded user", "email", seed.email)
	return nil
}
