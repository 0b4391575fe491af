package attendance

import (
	"fmt"

	"github.com/geoattend/geoattend-backend-go/internal/domain/schedule"
)

type Verdict string

const (
	VerdictNoSchedule     Verdict = "no_schedule"
	VerdictOnTime         Verdict = "on_time"
	VerdictLate           Verdict = "late"
	VerdictEarlyDeparture Verdict = "early_departure"
)

// Tolerance defaults. Both are configuration, not law; config may
// override them per deployment.
const (
	DefaultEntryGraceMinutes = 10
	DefaultExitGraceMinutes  = 15
)

// ComplianceConfig carries the tolerance bands for schedule checks.
type ComplianceConfig struct {
	EntryGraceMinutes int
	ExitGraceMinutes  int
}

func DefaultComplianceConfig() ComplianceConfig {
	return ComplianceConfig{
		EntryGraceMinutes: DefaultEntryGraceMinutes,
		ExitGraceMinutes:  DefaultExitGraceMinutes,
	}
}

// ComplianceResult is the verdict for one event against the user's
// schedule. IncidenceKind is set only on a violation; DeviationMinutes
// is whole minutes late (entry) or early (exit), measured against the
// scheduled time, not the grace limit.
type ComplianceResult struct {
	Verdict          Verdict
	DeviationMinutes int
	IncidenceKind    IncidenceKind
	Description      string
}

// EvaluateCompliance compares an event's wall-clock time against the
// schedule for that weekday. A nil schedule yields VerdictNoSchedule and
// no incidence.
func EvaluateCompliance(kind EventKind, at schedule.ClockMinutes, sched *schedule.Schedule, cfg ComplianceConfig) ComplianceResult {
	if sched == nil {
		return ComplianceResult{Verdict: VerdictNoSchedule}
	}

	switch kind {
	case KindEntry:
		limit := sched.EntryTime + schedule.ClockMinutes(cfg.EntryGraceMinutes)
		if at > limit {
			mins := int(at - sched.EntryTime)
			return ComplianceResult{
				Verdict:          VerdictLate,
				DeviationMinutes: mins,
				IncidenceKind:    IncidenceLateArrival,
				Description: fmt.Sprintf("Late arrival: scheduled entry %s, actual entry %s (%d minutes late)",
					sched.EntryTime, at, mins),
			}
		}
		return ComplianceResult{Verdict: VerdictOnTime}

	case KindExit:
		limit := sched.ExitTime - schedule.ClockMinutes(cfg.ExitGraceMinutes)
		if at < limit {
			mins := int(sched.ExitTime - at)
			return ComplianceResult{
				Verdict:          VerdictEarlyDeparture,
				DeviationMinutes: mins,
				IncidenceKind:    IncidenceEarlyDeparture,
				Description: fmt.Sprintf("Early departure: scheduled exit %s, actual exit %s (%d minutes early)",
					sched.ExitTime, at, mins),
			}
		}
		return ComplianceResult{Verdict: VerdictOnTime}
	}

	return ComplianceResult{Verdict: VerdictNoSchedule}
}
