package company

import (
	"context"

	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type CompanyService interface {
	Create(ctx context.Context, actor user.Actor, req CreateCompanyRequest) (Details, error)
	Update(ctx context.Context, actor user.Actor, id string, req UpdateCompanyRequest) (Details, error)
	Delete(ctx context.Context, actor user.Actor, id string) error
	Get(ctx context.Context, actor user.Actor, id string) (Details, error)
	GetName(ctx context.Context, actor user.Actor, id string) (string, error)
	List(ctx context.Context, actor user.Actor, includeInactive bool) ([]Details, error)
	GetUsers(ctx context.Context, actor user.Actor, id string) ([]user.Profile, error)
	GetAdmins(ctx context.Context, actor user.Actor, id string) ([]user.Profile, error)
}
