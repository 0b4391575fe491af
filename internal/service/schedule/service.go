package schedule

import (
	"context"
	"fmt"

	"github.com/geoattend/geoattend-backend-go/internal/domain/schedule"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{scheduleRepo: scheduleRepo}
}

// Create implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Create(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	entry, err := schedule.ParseClock(req.EntryTime)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	exit, err := schedule.ParseClock(req.ExitTime)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	created, err := s.scheduleRepo.Create(ctx, schedule.Schedule{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		DayOfWeek: req.DayOfWeek,
		EntryTime: entry,
		ExitTime:  exit,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return mapScheduleToResponse(created), nil
}

// Update implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Update(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	existing, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	entry, err := schedule.ParseClock(req.EntryTime)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	exit, err := schedule.ParseClock(req.ExitTime)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	existing.UserID = req.UserID
	existing.DayOfWeek = req.DayOfWeek
	existing.EntryTime = entry
	existing.ExitTime = exit

	if err := s.scheduleRepo.Update(ctx, existing); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return mapScheduleToResponse(existing), nil
}

// Delete implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Delete(ctx context.Context, id string) error {
	return s.scheduleRepo.Delete(ctx, id)
}

// ListByUser implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListByUser(ctx context.Context, userID string) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, mapScheduleToResponse(sched))
	}
	return responses, nil
}

// MySchedules implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) MySchedules(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("missing user_id claim")
	}

	return s.ListByUser(ctx, userID)
}

func mapScheduleToResponse(s schedule.Schedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		DayOfWeek: s.DayOfWeek,
		EntryTime: s.EntryTime.String(),
		ExitTime:  s.ExitTime.String(),
	}
}
