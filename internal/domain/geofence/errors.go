package geofence

import "errors"

var (
	ErrGeofenceNotFound = errors.New("geofence not found")

	// ErrNoActiveGeofence is a configuration error: an operator has to
	// activate a geofence before any attendance can be registered.
	ErrNoActiveGeofence = errors.New("no active geofence is configured")
)
