package attendance

// CheckDailyState enforces the once-per-day invariant: one valid entry
// and one valid exit per (user, date), with entry strictly before exit.
// todaysValid must contain only the user's valid events for the current
// date; invalid attempts never consume the daily slot, so a user who
// failed once may retry.
func CheckDailyState(kind EventKind, todaysValid []Event) error {
	var hasEntry bool
	for _, ev := range todaysValid {
		if ev.Kind == kind {
			return ErrDuplicateForDay
		}
		if ev.Kind == KindEntry {
			hasEntry = true
		}
	}

	if kind == KindExit && !hasEntry {
		return ErrExitWithoutEntry
	}

	return nil
}
