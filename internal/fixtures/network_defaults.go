package fixtures

import (
	"github.com/geoattend/geoattend-backend-go/internal/domain/geofence"
	"github.com/geoattend/geoattend-backend-go/internal/domain/network"
	"github.com/google/uuid"
)

// GetDefaultNetworks returns the starter set of authorized campus
// networks. Both staff-room access points share one SSID; the emulator
// row exists so mobile development works without a real AP.
func GetDefaultNetworks() []network.AuthorizedNetwork {
	return []network.AuthorizedNetwork{
		{
			ID:          uuid.New().String(),
			Name:        "Main Network - Staff Room",
			SSID:        "CAMPUS_WIFI",
			BSSID:       "AA:BB:CC:DD:EE:01",
			Description: "Access point located in the staff room",
			Active:      true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Secondary Network - Front Office",
			SSID:        "CAMPUS_WIFI",
			BSSID:       "AA:BB:CC:DD:EE:02",
			Description: "Access point located in the front office",
			Active:      true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Library Network",
			SSID:        "CAMPUS_LIBRARY",
			BSSID:       "AA:BB:CC:DD:EE:03",
			Description: "Library access point",
			Active:      true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Emulator Test Network",
			SSID:        "AndroidWifi",
			BSSID:       "02:15:B2:00:01:00",
			Description: "Android emulator Wi-Fi (development only)",
			Active:      true,
		},
	}
}

// GetDefaultGeofence returns the starter campus geofence.
func GetDefaultGeofence() geofence.Geofence {
	return geofence.Geofence{
		ID:           uuid.New().String(),
		Name:         "Main Campus",
		CenterLat:    20.6597,
		CenterLng:    -103.3496,
		RadiusMeters: 100,
		Active:       true,
	}
}
