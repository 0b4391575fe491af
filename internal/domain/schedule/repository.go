package schedule

import "context"

// ScheduleRepository defines data access methods for weekly schedules.
type ScheduleRepository interface {
	Create(ctx context.Context, s Schedule) (Schedule, error)
	GetByID(ctx context.Context, id string) (Schedule, error)

	// GetForDay returns the schedule for (userID, dayOfWeek), or
	// ErrScheduleNotFound when the user has no row for that weekday.
	GetForDay(ctx context.Context, userID string, dayOfWeek int) (Schedule, error)

	ListByUser(ctx context.Context, userID string) ([]Schedule, error)
	Update(ctx context.Context, s Schedule) error
	Delete(ctx context.Context, id string) error
}
