package user

import "context"

type UserService interface {
	Create(ctx context.Context, actor Actor, req CreateUserRequest) (Profile, error)
	Update(ctx context.Context, actor Actor, email string, req UpdateUserRequest) (Profile, error)
	Delete(ctx context.Context, actor Actor, email string) error
	Reactivate(ctx context.Context, actor Actor, email string) (Profile, error)
	ChangePassword(ctx context.Context, actor Actor, email string, req ChangePasswordRequest) error
	Get(ctx context.Context, actor Actor, email string) (Profile, error)
	List(ctx context.Context, actor Actor, scope ListScope) ([]Profile, error)
}
