package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, updated User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetPassword(ctx context.Context, email string, passHash string) error
	Deactivate(ctx context.Context, email string) error
	Reactivate(ctx context.Context, email string) error
	ListByCompany(ctx context.Context, companyID string, scope ListScope) ([]User, error)
	List(ctx context.Context, scope ListScope) ([]User, error)
	GetActiveByCompany(ctx context.Context, companyID string) ([]User, error)
	GetCompanyAdmins(ctx context.Context, companyID string) ([]User, error)
}
