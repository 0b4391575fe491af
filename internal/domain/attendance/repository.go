package attendance

import (
	"context"
	"time"
)

// EventRepository defines data access for attendance events. The table
// is append-only: there is deliberately no update or delete method.
type EventRepository interface {
	// Create appends a new event and returns it with storage-assigned
	// fields filled in.
	Create(ctx context.Context, ev Event) (Event, error)

	// ListValidByUserAndDate returns the user's valid events for one
	// calendar date, ordered by timestamp. This is the read the daily
	// state guard runs against.
	ListValidByUserAndDate(ctx context.Context, userID string, date time.Time) ([]Event, error)

	// ListByUserAndRange returns all of a user's events (valid and
	// invalid) in an optional date range, newest first.
	ListByUserAndRange(ctx context.Context, userID string, start, end *time.Time) ([]Event, error)

	// ListByRange returns all events in an optional date range, for
	// report aggregation.
	ListByRange(ctx context.Context, start, end *time.Time) ([]Event, error)

	// LockDailySlot serializes concurrent registrations for one
	// (user, date, kind) tuple. It must be called inside the
	// registration transaction and the lock must hold until the
	// transaction ends.
	LockDailySlot(ctx context.Context, userID string, date time.Time, kind EventKind) error
}

// IncidenceRepository defines data access for incidences.
type IncidenceRepository interface {
	// CreateIfAbsent atomically inserts an incidence unless one with the
	// same (user, kind, date) already exists. It reports whether a row
	// was created. Implementations must use a conditional insert, not
	// read-then-write.
	CreateIfAbsent(ctx context.Context, inc Incidence) (Incidence, bool, error)

	ListByUserAndRange(ctx context.Context, userID string, start, end *time.Time) ([]Incidence, error)
	ListByRange(ctx context.Context, start, end *time.Time) ([]Incidence, error)
}
