package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	Update(ctx context.Context, u User) error
	Deactivate(ctx context.Context, id string) error
}
