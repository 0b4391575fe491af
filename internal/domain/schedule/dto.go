package schedule

import (
	"context"

	"github.com/geoattend/geoattend-backend-go/internal/pkg/validator"
)

type UpsertScheduleRequest struct {
	ID        string `json:"-"`
	UserID    string `json:"user_id"`
	DayOfWeek int    `json:"day_of_week"`
	EntryTime string `json:"entry_time"`
	ExitTime  string `json:"exit_time"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week must be between 0 (Sunday) and 6 (Saturday)",
		})
	}

	if !validator.IsValidClock(r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time must be in HH:MM format",
		})
	}
	if !validator.IsValidClock(r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be in HH:MM format",
		})
	}

	if validator.IsValidClock(r.EntryTime) && validator.IsValidClock(r.ExitTime) {
		entry, _ := ParseClock(r.EntryTime)
		exit, _ := ParseClock(r.ExitTime)
		if exit <= entry {
			errs = append(errs, validator.ValidationError{
				Field:   "exit_time",
				Message: "exit_time must be after entry_time (overnight shifts are not supported)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	DayOfWeek int    `json:"day_of_week"`
	EntryTime string `json:"entry_time"`
	ExitTime  string `json:"exit_time"`
}

// ScheduleService defines business logic for weekly schedule management.
type ScheduleService interface {
	Create(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)
	Update(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]ScheduleResponse, error)
	MySchedules(ctx context.Context) ([]ScheduleResponse, error)
}
