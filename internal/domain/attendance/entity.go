package attendance

import (
	"time"
)

type EventKind string

const (
	KindEntry EventKind = "entry"
	KindExit  EventKind = "exit"
)

type IncidenceKind string

const (
	IncidenceAbsence        IncidenceKind = "absence"
	IncidenceLateArrival    IncidenceKind = "late_arrival"
	IncidenceEarlyDeparture IncidenceKind = "early_departure"
	IncidenceJustification  IncidenceKind = "justification"
)

// Event is one judged attendance mark. Events are append-only: the
// engine never updates a persisted event, it only creates new ones
// (including synthetic auto-checkout exits). Timestamp is assigned by
// the system clock at creation, never by the caller.
type Event struct {
	ID                string
	UserID            string
	GeofenceID        string
	NetworkID         *string
	Kind              EventKind
	ClaimedLat        float64
	ClaimedLng        float64
	ClaimedSSID       string
	ClaimedBSSID      string
	Timestamp         time.Time
	WithinGeofence    bool
	NetworkAuthorized bool
	DistanceMeters    float64
	Valid             bool
	AutoGenerated     bool
	CreatedAt         time.Time

	// DTO / Join
	UserName *string
}

// Incidence is a derived exception record for one user and calendar
// date. The automated path creates at most one row per
// (user, kind, date); repeated triggers are no-ops.
type Incidence struct {
	ID          string
	UserID      string
	Kind        IncidenceKind
	Date        time.Time
	Description string
	CreatedAt   time.Time

	// DTO / Join
	UserName *string
}

// DateOf truncates a timestamp to its local calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
