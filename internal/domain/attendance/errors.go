package attendance

import "errors"

// Attendance domain errors
var (
	// Registration errors (user-correctable, nothing is persisted)
	ErrDuplicateForDay  = errors.New("an event of this kind is already registered for today")
	ErrExitWithoutEntry = errors.New("cannot register an exit without a prior valid entry today")

	// General errors
	ErrEventNotFound     = errors.New("attendance event not found")
	ErrIncidenceNotFound = errors.New("incidence not found")
	ErrIncidenceExists   = errors.New("an incidence of this kind already exists for this user and date")
	ErrUnauthorized      = errors.New("unauthorized to access this attendance record")
)
