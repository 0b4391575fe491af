package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geoattend/geoattend-backend-go/internal/config"
	"github.com/geoattend/geoattend-backend-go/internal/domain/attendance"
	"github.com/geoattend/geoattend-backend-go/internal/domain/geofence"
	"github.com/geoattend/geoattend-backend-go/internal/domain/network"
	"github.com/geoattend/geoattend-backend-go/internal/domain/schedule"
	"github.com/geoattend/geoattend-backend-go/internal/domain/user"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/geo"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// AttendanceServiceImpl runs the registration pipeline: resolve the
// active geofence, gate on network authorization, guard the daily
// slot, persist the judged event, then evaluate schedule compliance.
// Every registration runs inside one transaction so the daily-state
// read and the event write are atomic against concurrent attempts.
type AttendanceServiceImpl struct {
	txRunner      database.TxRunner
	eventRepo     attendance.EventRepository
	incidenceRepo attendance.IncidenceRepository
	geofenceRepo  geofence.GeofenceRepository
	networkRepo   network.NetworkRepository
	scheduleRepo  schedule.ScheduleRepository
	userRepo      user.UserRepository
	cfg           config.AttendanceConfig

	// clock is swappable in tests; production uses time.Now.
	clock func() time.Time
}

func NewAttendanceService(
	txRunner database.TxRunner,
	eventRepo attendance.EventRepository,
	incidenceRepo attendance.IncidenceRepository,
	geofenceRepo geofence.GeofenceRepository,
	networkRepo network.NetworkRepository,
	scheduleRepo schedule.ScheduleRepository,
	userRepo user.UserRepository,
	cfg config.AttendanceConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		txRunner:      txRunner,
		eventRepo:     eventRepo,
		incidenceRepo: incidenceRepo,
		geofenceRepo:  geofenceRepo,
		networkRepo:   networkRepo,
		scheduleRepo:  scheduleRepo,
		userRepo:      userRepo,
		cfg:           cfg,
		clock:         time.Now,
	}
}

// Register implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Register(ctx context.Context, req attendance.RegisterRequest) (attendance.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RegisterResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.RegisterResponse{}, err
	}

	now := s.clock()
	kind := attendance.EventKind(req.Kind)
	date := attendance.DateOf(now)

	var resp attendance.RegisterResponse
	err = s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		gf, err := s.geofenceRepo.GetActive(ctx)
		if err != nil {
			return err
		}

		registry, err := s.networkRepo.ListActive(ctx)
		if err != nil {
			return fmt.Errorf("failed to load authorized networks: %w", err)
		}

		authorized, matched := network.Authorize(req.SSID, req.BSSID, registry)
		if !authorized {
			// Without network proof the mark has no evidentiary
			// value; nothing is persisted.
			return network.ErrNetworkUnauthorized
		}

		if err := s.eventRepo.LockDailySlot(ctx, userID, date, kind); err != nil {
			return fmt.Errorf("failed to lock daily slot: %w", err)
		}

		todaysValid, err := s.eventRepo.ListValidByUserAndDate(ctx, userID, date)
		if err != nil {
			return fmt.Errorf("failed to load today's events: %w", err)
		}
		if err := attendance.CheckDailyState(kind, todaysValid); err != nil {
			return err
		}

		distance := geo.HaversineDistance(req.Latitude, req.Longitude, gf.CenterLat, gf.CenterLng)
		within := distance <= gf.RadiusMeters

		var networkID *string
		if matched != nil {
			networkID = &matched.ID
		}

		// Out-of-geofence attempts are persisted invalid for audit;
		// they do not consume the daily slot.
		created, err := s.eventRepo.Create(ctx, attendance.Event{
			ID:                uuid.New().String(),
			UserID:            userID,
			GeofenceID:        gf.ID,
			NetworkID:         networkID,
			Kind:              kind,
			ClaimedLat:        req.Latitude,
			ClaimedLng:        req.Longitude,
			ClaimedSSID:       req.SSID,
			ClaimedBSSID:      network.NormalizeBSSID(req.BSSID),
			Timestamp:         now,
			WithinGeofence:    within,
			NetworkAuthorized: true,
			DistanceMeters:    geo.RoundMeters(distance),
			Valid:             within,
		})
		if err != nil {
			return fmt.Errorf("failed to persist event: %w", err)
		}

		resp = attendance.RegisterResponse{
			Event:          mapEventToResponse(created),
			Valid:          created.Valid,
			DistanceMeters: created.DistanceMeters,
			RadiusMeters:   gf.RadiusMeters,
		}

		if !within {
			resp.Message = fmt.Sprintf("Registered outside the permitted zone: %.2f m from center (allowed radius %.0f m)",
				created.DistanceMeters, gf.RadiusMeters)
			return nil
		}

		result, err := s.evaluateSchedule(ctx, userID, kind, now)
		if err != nil {
			return err
		}
		resp.ScheduleVerdict = string(result.Verdict)

		if result.IncidenceKind != "" {
			inc, _, err := s.incidenceRepo.CreateIfAbsent(ctx, attendance.Incidence{
				ID:          uuid.New().String(),
				UserID:      userID,
				Kind:        result.IncidenceKind,
				Date:        date,
				Description: result.Description,
			})
			if err != nil {
				return fmt.Errorf("failed to persist incidence: %w", err)
			}
			incResp := mapIncidenceToResponse(inc)
			resp.Incidence = &incResp
			resp.Message = result.Description
			return nil
		}

		if kind == attendance.KindEntry {
			resp.Message = "Entry registered"
		} else {
			resp.Message = "Exit registered"
		}
		return nil
	})
	if err != nil {
		return attendance.RegisterResponse{}, err
	}

	return resp, nil
}

// TodayStatus implements attendance.AttendanceService. Observing an
// open entry past the idle threshold closes it here, lazily, instead of
// from a background timer.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	now := s.clock()
	date := attendance.DateOf(now)

	events, err := s.eventRepo.ListValidByUserAndDate(ctx, userID, date)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to load today's events: %w", err)
	}

	entry, exit := splitEntryExit(events)

	autoClosed := false
	if entry != nil && exit == nil {
		threshold := time.Duration(s.cfg.IdleCheckoutHours) * time.Hour
		if now.Sub(entry.Timestamp) >= threshold {
			synthetic, err := s.closeIdleEntry(ctx, userID, date, *entry)
			if err != nil {
				return attendance.TodayStatusResponse{}, err
			}
			if synthetic != nil {
				exit = synthetic
				autoClosed = true
			}
		}
	}

	resp := attendance.TodayStatusResponse{AutoClosed: autoClosed}
	if entry != nil {
		ev := mapEventToResponse(*entry)
		resp.Entry = &ev
	}
	if exit != nil {
		ev := mapEventToResponse(*exit)
		resp.Exit = &ev
	}
	return resp, nil
}

// closeIdleEntry synthesizes the missing exit for an entry left open
// past the idle threshold. It copies the entry's location and judgment
// so the synthetic exit is valid, and records one incidence noting the
// automatic closure. Safe under concurrent status reads: the slot lock
// plus a re-read make only one caller write the exit.
func (s *AttendanceServiceImpl) closeIdleEntry(ctx context.Context, userID string, date time.Time, entry attendance.Event) (*attendance.Event, error) {
	var synthetic *attendance.Event
	err := s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.eventRepo.LockDailySlot(ctx, userID, date, attendance.KindExit); err != nil {
			return fmt.Errorf("failed to lock daily slot: %w", err)
		}

		todaysValid, err := s.eventRepo.ListValidByUserAndDate(ctx, userID, date)
		if err != nil {
			return fmt.Errorf("failed to load today's events: %w", err)
		}
		if _, existing := splitEntryExit(todaysValid); existing != nil {
			// Another reader already closed it.
			return nil
		}

		created, err := s.eventRepo.Create(ctx, attendance.Event{
			ID:                uuid.New().String(),
			UserID:            userID,
			GeofenceID:        entry.GeofenceID,
			NetworkID:         entry.NetworkID,
			Kind:              attendance.KindExit,
			ClaimedLat:        entry.ClaimedLat,
			ClaimedLng:        entry.ClaimedLng,
			ClaimedSSID:       entry.ClaimedSSID,
			ClaimedBSSID:      entry.ClaimedBSSID,
			Timestamp:         s.clock(),
			WithinGeofence:    entry.WithinGeofence,
			NetworkAuthorized: entry.NetworkAuthorized,
			DistanceMeters:    entry.DistanceMeters,
			Valid:             true,
			AutoGenerated:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to persist synthetic exit: %w", err)
		}

		_, _, err = s.incidenceRepo.CreateIfAbsent(ctx, attendance.Incidence{
			ID:     uuid.New().String(),
			UserID: userID,
			Kind:   attendance.IncidenceEarlyDeparture,
			Date:   date,
			Description: fmt.Sprintf("Automatic checkout: no exit registered within %d hours of entry at %s",
				s.cfg.IdleCheckoutHours, entry.Timestamp.Format("15:04")),
		})
		if err != nil {
			return fmt.Errorf("failed to persist incidence: %w", err)
		}

		synthetic = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return synthetic, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	userID := filter.UserID
	if userID == "" {
		id, err := userIDFromContext(ctx)
		if err != nil {
			return nil, err
		}
		userID = id
	}

	start, end := parseRange(filter.StartDate, filter.EndDate)
	events, err := s.eventRepo.ListByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	responses := make([]attendance.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, mapEventToResponse(ev))
	}
	return responses, nil
}

// Report implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Report(ctx context.Context, startDate, endDate *string) (attendance.ReportResponse, error) {
	filter := attendance.HistoryFilter{StartDate: startDate, EndDate: endDate}
	if err := filter.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return attendance.ReportResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	start, end := parseRange(startDate, endDate)
	events, err := s.eventRepo.ListByRange(ctx, start, end)
	if err != nil {
		return attendance.ReportResponse{}, fmt.Errorf("failed to load events: %w", err)
	}

	totals := make(map[string]*attendance.ReportRow, len(users))
	rows := make([]attendance.ReportRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, attendance.ReportRow{
			UserID:   u.ID,
			UserName: u.Name,
			Email:    u.Email,
		})
	}
	for i := range rows {
		totals[rows[i].UserID] = &rows[i]
	}

	for _, ev := range events {
		row, ok := totals[ev.UserID]
		if !ok {
			continue
		}
		row.TotalEvents++
		if ev.Valid {
			row.ValidEvents++
		} else {
			row.InvalidEvents++
		}
	}

	return attendance.ReportResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Rows:      rows,
	}, nil
}

// ListIncidences implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListIncidences(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.IncidenceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end := parseRange(filter.StartDate, filter.EndDate)

	var (
		incidences []attendance.Incidence
		err        error
	)
	if filter.UserID != "" {
		incidences, err = s.incidenceRepo.ListByUserAndRange(ctx, filter.UserID, start, end)
	} else {
		incidences, err = s.incidenceRepo.ListByRange(ctx, start, end)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load incidences: %w", err)
	}

	responses := make([]attendance.IncidenceResponse, 0, len(incidences))
	for _, inc := range incidences {
		responses = append(responses, mapIncidenceToResponse(inc))
	}
	return responses, nil
}

// CreateJustification implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateJustification(ctx context.Context, req attendance.CreateJustificationRequest) (attendance.IncidenceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.IncidenceResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return attendance.IncidenceResponse{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, time.Local)

	inc, created, err := s.incidenceRepo.CreateIfAbsent(ctx, attendance.Incidence{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		Kind:        attendance.IncidenceJustification,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return attendance.IncidenceResponse{}, fmt.Errorf("failed to persist justification: %w", err)
	}
	if !created {
		return attendance.IncidenceResponse{}, attendance.ErrIncidenceExists
	}

	return mapIncidenceToResponse(inc), nil
}

// evaluateSchedule looks up the user's schedule for the event's weekday
// and judges the event's clock time against it.
func (s *AttendanceServiceImpl) evaluateSchedule(ctx context.Context, userID string, kind attendance.EventKind, at time.Time) (attendance.ComplianceResult, error) {
	var sched *schedule.Schedule
	got, err := s.scheduleRepo.GetForDay(ctx, userID, int(at.Weekday()))
	if err != nil {
		if !errors.Is(err, schedule.ErrScheduleNotFound) {
			return attendance.ComplianceResult{}, fmt.Errorf("failed to load schedule: %w", err)
		}
	} else {
		sched = &got
	}

	cfg := attendance.ComplianceConfig{
		EntryGraceMinutes: s.cfg.EntryGraceMinutes,
		ExitGraceMinutes:  s.cfg.ExitGraceMinutes,
	}
	return attendance.EvaluateCompliance(kind, schedule.ClockOf(at), sched, cfg), nil
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", attendance.ErrUnauthorized
	}
	return userID, nil
}

// splitEntryExit returns the first valid entry and exit in a day's
// events, which are ordered by timestamp.
func splitEntryExit(events []attendance.Event) (entry, exit *attendance.Event) {
	for i := range events {
		switch events[i].Kind {
		case attendance.KindEntry:
			if entry == nil {
				entry = &events[i]
			}
		case attendance.KindExit:
			if exit == nil {
				exit = &events[i]
			}
		}
	}
	return entry, exit
}

func parseRange(startDate, endDate *string) (start, end *time.Time) {
	if startDate != nil {
		if t, err := time.ParseInLocation("2006-01-02", *startDate, time.Local); err == nil {
			start = &t
		}
	}
	if endDate != nil {
		if t, err := time.ParseInLocation("2006-01-02", *endDate, time.Local); err == nil {
			end = &t
		}
	}
	return start, end
}

func mapEventToResponse(ev attendance.Event) attendance.EventResponse {
	return attendance.EventResponse{
		ID:                ev.ID,
		UserID:            ev.UserID,
		UserName:          ev.UserName,
		GeofenceID:        ev.GeofenceID,
		NetworkID:         ev.NetworkID,
		Kind:              string(ev.Kind),
		Latitude:          ev.ClaimedLat,
		Longitude:         ev.ClaimedLng,
		Timestamp:         ev.Timestamp.Format("2006-01-02 15:04:05"),
		WithinGeofence:    ev.WithinGeofence,
		NetworkAuthorized: ev.NetworkAuthorized,
		DistanceMeters:    ev.DistanceMeters,
		Valid:             ev.Valid,
		AutoGenerated:     ev.AutoGenerated,
	}
}

func mapIncidenceToResponse(inc attendance.Incidence) attendance.IncidenceResponse {
	return attendance.IncidenceResponse{
		ID:          inc.ID,
		UserID:      inc.UserID,
		UserName:    inc.UserName,
		Kind:        string(inc.Kind),
		Date:        inc.Date.Format("2006-01-02"),
		CreatedAt:   inc.CreatedAt.Format("2006-01-02 15:04:05"),
		Description: inc.Description,
	}
}
