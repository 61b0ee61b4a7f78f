package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/database"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
	"github.com/timewatch/timewatch-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db          *database.DB
	userRepo    user.UserRepository
	companyRepo company.CompanyRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository, companyRepo company.CompanyRepository) user.UserService {
	return &UserServiceImpl{
		db:          db,
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

// Create implements user.UserService. Only net admins provision accounts.
func (s *UserServiceImpl) Create(ctx context.Context, actor user.Actor, req user.CreateUserRequest) (user.Profile, error) {
	if err := req.Validate(); err != nil {
		return user.Profile{}, err
	}

	if !actor.Permission.IsNetAdmin() {
		return user.Profile{}, user.ErrUnauthorizedAccess
	}

	companyData, err := s.companyRepo.GetByName(ctx, req.CompanyName)
	if err != nil {
		return user.Profile{}, err
	}
	if !companyData.IsActive {
		return user.Profile{}, company.ErrCompanyInactive
	}

	permission, err := user.ParsePermission(req.Permission)
	if err != nil {
		return user.Profile{}, err
	}
	weekendDays, err := user.ParseWeekendDays(req.WeekendChoice)
	if err != nil {
		return user.Profile{}, err
	}

	employmentStart := time.Now().UTC()
	if req.EmploymentStart != nil {
		parsed, ok := validator.IsValidDateTime(*req.EmploymentStart)
		if !ok {
			return user.Profile{}, validator.ValidationErrors{{
				Field:   "employment_start",
				Message: "employment_start must be an ISO8601 timestamp",
			}}
		}
		employmentStart = parsed
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := s.userRepo.ExistsByEmail(txCtx, req.Email)
		if err != nil {
			return fmt.Errorf("failed to check user existence: %w", err)
		}
		if exists {
			return user.ErrUserEmailExists
		}

		created, err = s.userRepo.Create(txCtx, user.User{
			Email:           req.Email,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			MobilePhone:     req.MobilePhone,
			CompanyID:       companyData.ID,
			Role:            req.Role,
			Permission:      permission,
			PassHash:        string(passHash),
			IsActive:        true,
			Salary:          req.Salary,
			WorkCapacity:    req.WorkCapacity,
			EmploymentStart: employmentStart,
			WeekendDays:     weekendDays,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.Profile{}, err
	}

	return user.NewProfile(created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, actor user.Actor, email string, req user.UpdateUserRequest) (user.Profile, error) {
	if err := req.Validate(); err != nil {
		return user.Profile{}, err
	}

	target, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.Profile{}, err
	}
	if !actor.Permission.IsNetAdmin() {
		return user.Profile{}, user.ErrUnauthorizedAccess
	}

	if req.FirstName != nil {
		target.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		target.LastName = *req.LastName
	}
	if req.MobilePhone != nil {
		target.MobilePhone = *req.MobilePhone
	}
	if req.Role != nil {
		target.Role = *req.Role
	}
	if req.Permission != nil {
		target.Permission, err = user.ParsePermission(*req.Permission)
		if err != nil {
			return user.Profile{}, err
		}
	}
	if req.Salary != nil {
		target.Salary = *req.Salary
	}
	if req.WorkCapacity != nil {
		target.WorkCapacity = *req.WorkCapacity
	}
	if req.WeekendChoice != nil {
		target.WeekendDays, err = user.ParseWeekendDays(*req.WeekendChoice)
		if err != nil {
			return user.Profile{}, err
		}
	}

	updated, err := s.userRepo.Update(ctx, target)
	if err != nil {
		return user.Profile{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user.NewProfile(updated), nil
}

// Delete implements user.UserService. Users are deactivated, the row and
// its time stamps stay behind for historical reports.
func (s *UserServiceImpl) Delete(ctx context.Context, actor user.Actor, email string) error {
	if !actor.Permission.IsNetAdmin() {
		return user.ErrUnauthorizedAccess
	}

	target, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !target.IsActive {
		return user.ErrUserInactive
	}

	return s.userRepo.Deactivate(ctx, email)
}

// Reactivate implements user.UserService.
func (s *UserServiceImpl) Reactivate(ctx context.Context, actor user.Actor, email string) (user.Profile, error) {
	if !actor.Permission.IsNetAdmin() {
		return user.Profile{}, user.ErrUnauthorizedAccess
	}

	target, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.Profile{}, err
	}
	if target.IsActive {
		return user.Profile{}, user.ErrUserAlreadyActive
	}

	if err := s.userRepo.Reactivate(ctx, email); err != nil {
		return user.Profile{}, fmt.Errorf("failed to reactivate user: %w", err)
	}

	reactivated, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.Profile{}, err
	}
	return user.NewProfile(reactivated), nil
}

// ChangePassword implements user.UserService. Users may change their own
// password, net admins may change anyone's.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, actor user.Actor, email string, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if actor.Email != email && !actor.Permission.IsNetAdmin() {
		return user.ErrUnauthorizedAccess
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.SetPassword(ctx, email, string(passHash))
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, actor user.Actor, email string) (user.Profile, error) {
	target, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.Profile{}, err
	}

	if !actor.CanAccessUser(target) {
		return user.Profile{}, user.ErrUnauthorizedAccess
	}

	return user.NewProfile(target), nil
}

// List implements user.UserService. Net admins see everyone, employers
// see their own company, employees see only themselves.
func (s *UserServiceImpl) List(ctx context.Context, actor user.Actor, scope user.ListScope) ([]user.Profile, error) {
	switch {
	case actor.Permission.IsNetAdmin():
		users, err := s.userRepo.List(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return user.NewProfiles(users), nil

	case actor.Permission.IsEmployer():
		users, err := s.userRepo.ListByCompany(ctx, actor.CompanyID, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return user.NewProfiles(users), nil

	default:
		self, err := s.userRepo.GetByEmail(ctx, actor.Email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return []user.Profile{}, nil
			}
			return nil, err
		}
		return []user.Profile{user.NewProfile(self)}, nil
	}
}
