package geofence

import (
	"context"

	"github.com/geoattend/geoattend-backend-go/internal/pkg/validator"
)

type UpsertGeofenceRequest struct {
	ID           string  `json:"-"`
	Name         string  `json:"name"`
	CenterLat    float64 `json:"center_lat"`
	CenterLng    float64 `json:"center_lng"`
	RadiusMeters float64 `json:"radius_meters"`
	Active       bool    `json:"active"`
}

func (r *UpsertGeofenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidLatitude(r.CenterLat) {
		errs = append(errs, validator.ValidationError{
			Field:   "center_lat",
			Message: "center_lat must be between -90 and 90",
		})
	}
	if !validator.IsValidLongitude(r.CenterLng) {
		errs = append(errs, validator.ValidationError{
			Field:   "center_lng",
			Message: "center_lng must be between -180 and 180",
		})
	}
	if r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GeofenceResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CenterLat    float64 `json:"center_lat"`
	CenterLng    float64 `json:"center_lng"`
	RadiusMeters float64 `json:"radius_meters"`
	Active       bool    `json:"active"`
}

// GeofenceService defines business logic for geofence administration.
type GeofenceService interface {
	Create(ctx context.Context, req UpsertGeofenceRequest) (GeofenceResponse, error)
	Update(ctx context.Context, req UpsertGeofenceRequest) (GeofenceResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]GeofenceResponse, error)
	ListActive(ctx context.Context) ([]GeofenceResponse, error)
}
