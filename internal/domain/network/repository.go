package network

import "context"

// NetworkRepository defines data access methods for authorized networks.
type NetworkRepository interface {
	Create(ctx context.Context, n AuthorizedNetwork) (AuthorizedNetwork, error)
	GetByID(ctx context.Context, id string) (AuthorizedNetwork, error)

	// ListActive returns the registry the authorizer resolves claims
	// against.
	ListActive(ctx context.Context) ([]AuthorizedNetwork, error)

	List(ctx context.Context) ([]AuthorizedNetwork, error)
	Update(ctx context.Context, n AuthorizedNetwork) error
	Delete(ctx context.Context, id string) error
}
