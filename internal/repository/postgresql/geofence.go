package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/geoattend/geoattend-backend-go/internal/domain/geofence"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type geofenceRepository struct {
	db *database.DB
}

func NewGeofenceRepository(db *database.DB) geofence.GeofenceRepository {
	return &geofenceRepository{db: db}
}

const geofenceColumns = `id, name, center_lat, center_lng, radius_meters, active, created_at, updated_at`

func scanGeofence(row pgx.Row) (geofence.Geofence, error) {
	var g geofence.Geofence
	err := row.Scan(&g.ID, &g.Name, &g.CenterLat, &g.CenterLng, &g.RadiusMeters, &g.Active, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// Create implements geofence.GeofenceRepository.
func (r *geofenceRepository) Create(ctx context.Context, g geofence.Geofence) (geofence.Geofence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO geofences (id, name, center_lat, center_lng, radius_meters, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, g.ID, g.Name, g.CenterLat, g.CenterLng, g.RadiusMeters, g.Active).
		Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return geofence.Geofence{}, fmt.Errorf("failed to create geofence: %w", err)
	}

	return g, nil
}

// GetByID implements geofence.GeofenceRepository.
func (r *geofenceRepository) GetByID(ctx context.Context, id string) (geofence.Geofence, error) {
	q := GetQuerier(ctx, r.db)

	g, err := scanGeofence(q.QueryRow(ctx, `SELECT `+geofenceColumns+` FROM geofences WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.Geofence{}, geofence.ErrGeofenceNotFound
		}
		return geofence.Geofence{}, fmt.Errorf("failed to get geofence by ID: %w", err)
	}

	return g, nil
}

// GetActive implements geofence.GeofenceRepository. At most one geofence
// should be active; if an operator activates several, the newest wins.
func (r *geofenceRepository) GetActive(ctx context.Context) (geofence.Geofence, error) {
	q := GetQuerier(ctx, r.db)

	g, err := scanGeofence(q.QueryRow(ctx,
		`SELECT `+geofenceColumns+` FROM geofences WHERE active ORDER BY updated_at DESC LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.Geofence{}, geofence.ErrNoActiveGeofence
		}
		return geofence.Geofence{}, fmt.Errorf("failed to get active geofence: %w", err)
	}

	return g, nil
}

// List implements geofence.GeofenceRepository.
func (r *geofenceRepository) List(ctx context.Context) ([]geofence.Geofence, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+geofenceColumns+` FROM geofences ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}
	defer rows.Close()

	var geofences []geofence.Geofence
	for rows.Next() {
		g, err := scanGeofence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geofence: %w", err)
		}
		geofences = append(geofences, g)
	}

	return geofences, rows.Err()
}

// Update implements geofence.GeofenceRepository.
func (r *geofenceRepository) Update(ctx context.Context, g geofence.Geofence) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE geofences
		SET name = $1, center_lat = $2, center_lng = $3, radius_meters = $4, active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, g.Name, g.CenterLat, g.CenterLng, g.RadiusMeters, g.Active, g.ID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geofence.ErrGeofenceNotFound
		}
		return fmt.Errorf("failed to update geofence: %w", err)
	}

	return nil
}

// Delete implements geofence.GeofenceRepository.
func (r *geofenceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM geofences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete geofence: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return geofence.ErrGeofenceNotFound
	}

	return nil
}
