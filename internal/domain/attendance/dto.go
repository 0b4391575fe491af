package attendance

import (
	"github.com/geoattend/geoattend-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RegisterRequest struct {
	Kind      string  `json:"kind"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	SSID      string  `json:"ssid"`
	BSSID     string  `json:"bssid"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Kind != string(KindEntry) && r.Kind != string(KindExit) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be 'entry' or 'exit'",
		})
	}
	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	if !validator.IsEmpty(r.BSSID) && !validator.IsValidBSSID(r.BSSID) {
		errs = append(errs, validator.ValidationError{
			Field:   "bssid",
			Message: "bssid must be a MAC address like AA:BB:CC:DD:EE:FF",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	UserName          *string `json:"user_name,omitempty"`
	GeofenceID        string  `json:"geofence_id"`
	NetworkID         *string `json:"network_id,omitempty"`
	Kind              string  `json:"kind"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	Timestamp         string  `json:"timestamp"`
	WithinGeofence    bool    `json:"within_geofence"`
	NetworkAuthorized bool    `json:"network_authorized"`
	DistanceMeters    float64 `json:"distance_meters"`
	Valid             bool    `json:"valid"`
	AutoGenerated     bool    `json:"auto_generated"`
}

type IncidenceResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	UserName    *string `json:"user_name,omitempty"`
	Kind        string  `json:"kind"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// RegisterResponse is the structured outcome of one registration
// attempt. Valid mirrors the persisted event; an out-of-geofence event
// is still persisted (for audit) and reported here with the measured
// distance and the permitted radius.
type RegisterResponse struct {
	Event           EventResponse      `json:"event"`
	Valid           bool               `json:"valid"`
	DistanceMeters  float64            `json:"distance_meters"`
	RadiusMeters    float64            `json:"radius_meters"`
	ScheduleVerdict string             `json:"schedule_verdict"`
	Incidence       *IncidenceResponse `json:"incidence,omitempty"`
	Message         string             `json:"message"`
}

type TodayStatusResponse struct {
	Entry      *EventResponse `json:"entry,omitempty"`
	Exit       *EventResponse `json:"exit,omitempty"`
	AutoClosed bool           `json:"auto_closed"`
}

type HistoryFilter struct {
	UserID    string
	StartDate *string
	EndDate   *string
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportRow struct {
	UserID        string `json:"user_id"`
	UserName      string `json:"user_name"`
	Email         string `json:"email"`
	TotalEvents   int    `json:"total_events"`
	ValidEvents   int    `json:"valid_events"`
	InvalidEvents int    `json:"invalid_events"`
}

type ReportResponse struct {
	StartDate *string     `json:"start_date,omitempty"`
	EndDate   *string     `json:"end_date,omitempty"`
	Rows      []ReportRow `json:"rows"`
}

type CreateJustificationRequest struct {
	UserID      string `json:"user_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (r *CreateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
