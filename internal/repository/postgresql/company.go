package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

func scanCompany(row rowScanner) (company.Company, error) {
	var c company.Company
	err := row.Scan(&c.ID, &c.Name, &c.IsActive)
	if err != nil {
		return company.Company{}, err
	}
	return c, nil
}

func scanCompanies(rows pgx.Rows) ([]company.Company, error) {
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Create implements company.CompanyRepository.
func (r *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	if newCompany.ID == "" {
		newCompany.ID = uuid.NewString()
	}

	query := `
		INSERT INTO companies (company_id, company_name, is_active)
		VALUES ($1, $2, $3)
		RETURNING company_id, company_name, is_active
	`

	return scanCompany(q.QueryRow(ctx, query, newCompany.ID, newCompany.Name, newCompany.IsActive))
}

// Update implements company.CompanyRepository.
func (r *companyRepositoryImpl) Update(ctx context.Context, updated company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET company_name = $1
		WHERE company_id = $2
		RETURNING company_id, company_name, is_active
	`

	c, err := scanCompany(q.QueryRow(ctx, query, updated.Name, updated.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

// Deactivate implements company.CompanyRepository.
func (r *companyRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE companies SET is_active = FALSE WHERE company_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT company_id, company_name, is_active FROM companies WHERE company_id = $1`

	c, err := scanCompany(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

// GetByName implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByName(ctx context.Context, name string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT company_id, company_name, is_active FROM companies WHERE company_name = $1`

	c, err := scanCompany(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

// ListActive implements company.CompanyRepository.
func (r *companyRepositoryImpl) ListActive(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT company_id, company_name, is_active FROM companies
		WHERE is_active = TRUE
		ORDER BY company_name`)
	if err != nil {
		return nil, err
	}
	return scanCompanies(rows)
}

// ListAll implements company.CompanyRepository.
func (r *companyRepositoryImpl) ListAll(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT company_id, company_name, is_active FROM companies
		ORDER BY company_name`)
	if err != nil {
		return nil, err
	}
	return scanCompanies(rows)
}
