package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/database"
	"github.com/timewatch/timewatch-backend-go/internal/repository/postgresql"
)

type CompanyServiceImpl struct {
	db          *database.DB
	companyRepo company.CompanyRepository
	userRepo    user.UserRepository
}

func NewCompanyService(db *database.DB, companyRepo company.CompanyRepository, userRepo user.UserRepository) company.CompanyService {
	return &CompanyServiceImpl{
		db:          db,
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

// Create implements company.CompanyService. Net admins only.
func (s *CompanyServiceImpl) Create(ctx context.Context, actor user.Actor, req company.CreateCompanyRequest) (company.Details, error) {
	if err := req.Validate(); err != nil {
		return company.Details{}, err
	}

	if !actor.Permission.IsNetAdmin() {
		return company.Details{}, company.ErrUnauthorizedAccess
	}

	var created company.Company
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, err := s.companyRepo.GetByName(txCtx, req.Name)
		if err == nil {
			return company.ErrCompanyNameExists
		}
		if !errors.Is(err, company.ErrCompanyNotFound) {
			return fmt.Errorf("failed to check company name: %w", err)
		}

		created, err = s.companyRepo.Create(txCtx, company.Company{
			Name:     req.Name,
			IsActive: true,
		})
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}
		return nil
	})
	if err != nil {
		return company.Details{}, err
	}
	return company.NewDetails(created), nil
}

// Update implements company.CompanyService. Net admins only.
func (s *CompanyServiceImpl) Update(ctx context.Context, actor user.Actor, id string, req company.UpdateCompanyRequest) (company.Details, error) {
	if err := req.Validate(); err != nil {
		return company.Details{}, err
	}

	if !actor.Permission.IsNetAdmin() {
		return company.Details{}, company.ErrUnauthorizedAccess
	}

	target, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.Details{}, err
	}

	if req.Name != nil && *req.Name != target.Name {
		_, err := s.companyRepo.GetByName(ctx, *req.Name)
		if err == nil {
			return company.Details{}, company.ErrCompanyNameExists
		}
		if !errors.Is(err, company.ErrCompanyNotFound) {
			return company.Details{}, fmt.Errorf("failed to check company name: %w", err)
		}
		target.Name = *req.Name
	}

	updated, err := s.companyRepo.Update(ctx, target)
	if err != nil {
		return company.Details{}, fmt.Errorf("failed to update company: %w", err)
	}
	return company.NewDetails(updated), nil
}

// Delete implements company.CompanyService. The company is deactivated
// rather than removed so its reporting history survives.
func (s *CompanyServiceImpl) Delete(ctx context.Context, actor user.Actor, id string) error {
	if !actor.Permission.IsNetAdmin() {
		return company.ErrUnauthorizedAccess
	}

	target, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !target.IsActive {
		return company.ErrCompanyInactive
	}

	return s.companyRepo.Deactivate(ctx, id)
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context, actor user.Actor, id string) (company.Details, error) {
	if !actor.CanAccessCompany(id) {
		return company.Details{}, company.ErrUnauthorizedAccess
	}

	target, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.Details{}, err
	}
	return company.NewDetails(target), nil
}

// GetName implements company.CompanyService. Any member of the company
// may resolve its display name.
func (s *CompanyServiceImpl) GetName(ctx context.Context, actor user.Actor, id string) (string, error) {
	if !actor.Permission.IsNetAdmin() && actor.CompanyID != id {
		return "", company.ErrUnauthorizedAccess
	}

	target, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return target.Name, nil
}

// List implements company.CompanyService. Net admins only.
func (s *CompanyServiceImpl) List(ctx context.Context, actor user.Actor, includeInactive bool) ([]company.Details, error) {
	if !actor.Permission.IsNetAdmin() {
		return nil, company.ErrUnauthorizedAccess
	}

	var (
		companies []company.Company
		err       error
	)
	if includeInactive {
		companies, err = s.companyRepo.ListAll(ctx)
	} else {
		companies, err = s.companyRepo.ListActive(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return company.NewDetailsList(companies), nil
}

// GetUsers implements company.CompanyService.
func (s *CompanyServiceImpl) GetUsers(ctx context.Context, actor user.Actor, id string) ([]user.Profile, error) {
	if !actor.CanAccessCompany(id) {
		return nil, company.ErrUnauthorizedAccess
	}

	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetActiveByCompany(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list company users: %w", err)
	}
	return user.NewProfiles(users), nil
}

// GetAdmins implements company.CompanyService.
func (s *CompanyServiceImpl) GetAdmins(ctx context.Context, actor user.Actor, id string) ([]user.Profile, error) {
	if !actor.CanAccessCompany(id) {
		return nil, company.ErrUnauthorizedAccess
	}

	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	admins, err := s.userRepo.GetCompanyAdmins(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list company admins: %w", err)
	}
	return user.NewProfiles(admins), nil
}
