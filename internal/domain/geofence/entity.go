package geofence

import "time"

// Geofence is a circular zone inside which attendance marks are valid.
type Geofence struct {
	ID           string
	Name         string
	CenterLat    float64
	CenterLng    float64
	RadiusMeters float64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
