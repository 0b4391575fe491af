package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// Register processes one check-in/check-out attempt through the full
	// validation pipeline: geofence resolve, network gate, daily-state
	// gate, persist, schedule compliance.
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// TodayStatus returns the authenticated user's entry/exit for the
	// current date. Observing an open entry past the idle threshold
	// synthesizes the missing exit as a side effect.
	TodayStatus(ctx context.Context) (TodayStatusResponse, error)

	// History returns a user's events in an optional date range.
	History(ctx context.Context, filter HistoryFilter) ([]EventResponse, error)

	// Report aggregates per-user totals of valid/invalid events.
	Report(ctx context.Context, startDate, endDate *string) (ReportResponse, error)

	// ListIncidences returns incidences, optionally scoped to one user
	// and a date range.
	ListIncidences(ctx context.Context, filter HistoryFilter) ([]IncidenceResponse, error)

	// CreateJustification records a manual justification incidence.
	CreateJustification(ctx context.Context, req CreateJustificationRequest) (IncidenceResponse, error)
}
