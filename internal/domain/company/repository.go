package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, newCompany Company) (Company, error)
	Update(ctx context.Context, updated Company) (Company, error)
	Deactivate(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Company, error)
	GetByName(ctx context.Context, name string) (Company, error)
	ListActive(ctx context.Context) ([]Company, error)
	ListAll(ctx context.Context) ([]Company, error)
}
