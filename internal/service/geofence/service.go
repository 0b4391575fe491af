package geofence

import (
	"context"
	"fmt"

	"github.com/geoattend/geoattend-backend-go/internal/domain/geofence"
	"github.com/google/uuid"
)

type GeofenceServiceImpl struct {
	geofenceRepo geofence.GeofenceRepository
}

func NewGeofenceService(geofenceRepo geofence.GeofenceRepository) geofence.GeofenceService {
	return &GeofenceServiceImpl{geofenceRepo: geofenceRepo}
}

// Create implements geofence.GeofenceService.
func (s *GeofenceServiceImpl) Create(ctx context.Context, req geofence.UpsertGeofenceRequest) (geofence.GeofenceResponse, error) {
	if err := req.Validate(); err != nil {
		return geofence.GeofenceResponse{}, err
	}

	created, err := s.geofenceRepo.Create(ctx, geofence.Geofence{
		ID:           uuid.New().String(),
		Name:         req.Name,
		CenterLat:    req.CenterLat,
		CenterLng:    req.CenterLng,
		RadiusMeters: req.RadiusMeters,
		Active:       req.Active,
	})
	if err != nil {
		return geofence.GeofenceResponse{}, err
	}

	return mapGeofenceToResponse(created), nil
}

// Update implements geofence.GeofenceService.
func (s *GeofenceServiceImpl) Update(ctx context.Context, req geofence.UpsertGeofenceRequest) (geofence.GeofenceResponse, error) {
	if err := req.Validate(); err != nil {
		return geofence.GeofenceResponse{}, err
	}

	existing, err := s.geofenceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return geofence.GeofenceResponse{}, err
	}

	existing.Name = req.Name
	existing.CenterLat = req.CenterLat
	existing.CenterLng = req.CenterLng
	existing.RadiusMeters = req.RadiusMeters
	existing.Active = req.Active

	if err := s.geofenceRepo.Update(ctx, existing); err != nil {
		return geofence.GeofenceResponse{}, err
	}

	return mapGeofenceToResponse(existing), nil
}

// Delete implements geofence.GeofenceService.
func (s *GeofenceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.geofenceRepo.Delete(ctx, id)
}

// List implements geofence.GeofenceService.
func (s *GeofenceServiceImpl) List(ctx context.Context) ([]geofence.GeofenceResponse, error) {
	geofences, err := s.geofenceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}

	responses := make([]geofence.GeofenceResponse, 0, len(geofences))
	for _, g := range geofences {
		responses = append(responses, mapGeofenceToResponse(g))
	}
	return responses, nil
}

// ListActive implements geofence.GeofenceService.
func (s *GeofenceServiceImpl) ListActive(ctx context.Context) ([]geofence.GeofenceResponse, error) {
	geofences, err := s.geofenceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}

	responses := make([]geofence.GeofenceResponse, 0, len(geofences))
	for _, g := range geofences {
		if g.Active {
			responses = append(responses, mapGeofenceToResponse(g))
		}
	}
	return responses, nil
}

func mapGeofenceToResponse(g geofence.Geofence) geofence.GeofenceResponse {
	return geofence.GeofenceResponse{
		ID:           g.ID,
		Name:         g.Name,
		CenterLat:    g.CenterLat,
		CenterLng:    g.CenterLng,
		RadiusMeters: g.RadiusMeters,
		Active:       g.Active,
	}
}
