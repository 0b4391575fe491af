package attendance

import (
	"testing"

	"github.com/geoattend/geoattend-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
)

func mondaySchedule(entry, exit string) *schedule.Schedule {
	e, _ := schedule.ParseClock(entry)
	x, _ := schedule.ParseClock(exit)
	return &schedule.Schedule{ID: "s1", UserID: "u1", DayOfWeek: 1, EntryTime: e, ExitTime: x}
}

func clock(s string) schedule.ClockMinutes {
	c, _ := schedule.ParseClock(s)
	return c
}

func TestEvaluateComplianceNoSchedule(t *testing.T) {
	result := EvaluateCompliance(KindEntry, clock("07:05"), nil, DefaultComplianceConfig())
	assert.Equal(t, VerdictNoSchedule, result.Verdict)
	assert.Empty(t, result.IncidenceKind)
}

func TestEvaluateComplianceEntryWithinGrace(t *testing.T) {
	sched := mondaySchedule("07:00", "14:30")

	// 9 minutes after scheduled entry is inside the 10 minute grace.
	result := EvaluateCompliance(KindEntry, clock("07:09"), sched, DefaultComplianceConfig())
	assert.Equal(t, VerdictOnTime, result.Verdict)
	assert.Empty(t, result.IncidenceKind)
}

func TestEvaluateComplianceEntryAtGraceLimit(t *testing.T) {
	sched := mondaySchedule("07:00", "14:30")

	result := EvaluateCompliance(KindEntry, clock("07:10"), sched, DefaultComplianceConfig())
	assert.Equal(t, VerdictOnTime, result.Verdict, "exactly at the grace limit is still on time")
}

func TestEvaluateComplianceLateEntry(t *testing.T) {
	sched := mondaySchedule("07:00", "14:30")

	result := EvaluateCompliance(KindEntry, clock("07:11"), sched, DefaultComplianceConfig())
	assert.Equal(t, VerdictLate, result.Verdict)
	assert.Equal(t, 11, result.DeviationMinutes, "minutes late count from the scheduled time, not the grace limit")
	assert.Equal(t, IncidenceLateArrival, result.IncidenceKind)
	assert.Contains(t, result.Description, "07:00")
	assert.Contains(t, result.Description, "07:11")
	assert.Contains(t, result.Description, "11 minutes")
}

func TestEvaluateComplianceExitWithinGrace(t *testing.T) {
	sched := mondaySchedule("07:00", "14:30")

	// 14 minutes before scheduled exit is inside the 15 minute grace.
	result := EvaluateCompliance(KindExit, clock("14:16"), sched, DefaultComplianceConfig())
	assert.Equal(t, VerdictOnTime, result.Verdict)
}

func TestEvaluateComplianceEarlyDeparture(t *testing.T) {
	sched := mondaySchedule("07:00", "14:30")

	result := EvaluateCompliance(KindExit, clock("14:00"), sched, DefaultComplianceConfig())
	assert.Equal(t, VerdictEarlyDeparture, result.Verdict)
	assert.Equal(t, 30, result.DeviationMinutes)
	assert.Equal(t, IncidenceEarlyDeparture, result.IncidenceKind)
}

func TestEvaluateComplianceLateExitIsOnTime(t *testing.T) {
	sched := mondaySchedule("07:00", "14:30")

	result := EvaluateCompliance(KindExit, clock("16:00"), sched, DefaultComplianceConfig())
	assert.Equal(t, VerdictOnTime, result.Verdict, "staying late is never penalized")
}

func TestEvaluateComplianceCustomGrace(t *testing.T) {
	sched := mondaySchedule("07:00", "14:30")
	cfg := ComplianceConfig{EntryGraceMinutes: 0, ExitGraceMinutes: 0}

	result := EvaluateCompliance(KindEntry, clock("07:01"), sched, cfg)
	assert.Equal(t, VerdictLate, result.Verdict)
	assert.Equal(t, 1, result.DeviationMinutes)
}
