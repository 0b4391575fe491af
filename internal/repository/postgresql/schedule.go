package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/geoattend/geoattend-backend-go/internal/domain/schedule"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Entry/exit times are stored as minutes since midnight (smallint), the
// same representation the compliance arithmetic uses.
const scheduleColumns = `id, user_id, day_of_week, entry_minutes, exit_minutes, created_at, updated_at`

func scanSchedule(row pgx.Row) (schedule.Schedule, error) {
	var s schedule.Schedule
	var entry, exit int
	err := row.Scan(&s.ID, &s.UserID, &s.DayOfWeek, &entry, &exit, &s.CreatedAt, &s.UpdatedAt)
	s.EntryTime = schedule.ClockMinutes(entry)
	s.ExitTime = schedule.ClockMinutes(exit)
	return s, err
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepository) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedules (id, user_id, day_of_week, entry_minutes, exit_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.UserID, s.DayOfWeek, int(s.EntryTime), int(s.ExitTime)).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.Schedule{}, schedule.ErrScheduleExists
		}
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return s, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSchedule(q.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule by ID: %w", err)
	}

	return s, nil
}

// GetForDay implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetForDay(ctx context.Context, userID string, dayOfWeek int) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSchedule(q.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE user_id = $1 AND day_of_week = $2`,
		userID, dayOfWeek))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule for day: %w", err)
	}

	return s, nil
}

// ListByUser implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListByUser(ctx context.Context, userID string) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE user_id = $1 ORDER BY day_of_week`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepository) Update(ctx context.Context, s schedule.Schedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules
		SET day_of_week = $1, entry_minutes = $2, exit_minutes = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, s.DayOfWeek, int(s.EntryTime), int(s.ExitTime), s.ID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ErrScheduleNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.ErrScheduleExists
		}
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	return nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}
