package geofence

import "context"

// GeofenceRepository defines data access methods for geofences.
type GeofenceRepository interface {
	Create(ctx context.Context, g Geofence) (Geofence, error)
	GetByID(ctx context.Context, id string) (Geofence, error)

	// GetActive returns the single active geofence, or
	// ErrNoActiveGeofence when none is active.
	GetActive(ctx context.Context) (Geofence, error)

	List(ctx context.Context) ([]Geofence, error)
	Update(ctx context.Context, g Geofence) error
	Delete(ctx context.Context, id string) error
}
