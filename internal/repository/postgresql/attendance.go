package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geoattend/geoattend-backend-go/internal/domain/attendance"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) attendance.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `
	e.id, e.user_id, e.geofence_id, e.network_id, e.kind,
	e.claimed_lat, e.claimed_lng, e.claimed_ssid, e.claimed_bssid,
	e.timestamp, e.within_geofence, e.network_authorized,
	e.distance_meters, e.valid, e.auto_generated, e.created_at`

func scanEvent(row pgx.Row, withUserName bool) (attendance.Event, error) {
	var ev attendance.Event
	dest := []interface{}{
		&ev.ID, &ev.UserID, &ev.GeofenceID, &ev.NetworkID, &ev.Kind,
		&ev.ClaimedLat, &ev.ClaimedLng, &ev.ClaimedSSID, &ev.ClaimedBSSID,
		&ev.Timestamp, &ev.WithinGeofence, &ev.NetworkAuthorized,
		&ev.DistanceMeters, &ev.Valid, &ev.AutoGenerated, &ev.CreatedAt,
	}
	if withUserName {
		dest = append(dest, &ev.UserName)
	}
	err := row.Scan(dest...)
	return ev, err
}

// Create implements attendance.EventRepository. The table is
// append-only; there is no update path.
func (r *eventRepository) Create(ctx context.Context, ev attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (
			id, user_id, geofence_id, network_id, kind,
			claimed_lat, claimed_lng, claimed_ssid, claimed_bssid,
			timestamp, within_geofence, network_authorized,
			distance_meters, valid, auto_generated
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		ev.ID, ev.UserID, ev.GeofenceID, ev.NetworkID, ev.Kind,
		ev.ClaimedLat, ev.ClaimedLng, ev.ClaimedSSID, ev.ClaimedBSSID,
		ev.Timestamp, ev.WithinGeofence, ev.NetworkAuthorized,
		ev.DistanceMeters, ev.Valid, ev.AutoGenerated,
	).Scan(&ev.CreatedAt)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return ev, nil
}

// ListValidByUserAndDate implements attendance.EventRepository.
func (r *eventRepository) ListValidByUserAndDate(ctx context.Context, userID string, date time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events e
		WHERE e.user_id = $1
		  AND e.timestamp::date = $2::date
		  AND e.valid
		ORDER BY e.timestamp
	`

	rows, err := q.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query valid events for date: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		ev, err := scanEvent(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// ListByUserAndRange implements attendance.EventRepository.
func (r *eventRepository) ListByUserAndRange(ctx context.Context, userID string, start, end *time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "e.user_id = $1"
	args := []interface{}{userID}
	argIdx := 2

	if start != nil {
		baseWhere += fmt.Sprintf(" AND e.timestamp::date >= $%d::date", argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		baseWhere += fmt.Sprintf(" AND e.timestamp::date <= $%d::date", argIdx)
		args = append(args, *end)
		argIdx++
	}

	query := `
		SELECT ` + eventColumns + `, u.name AS user_name
		FROM attendance_events e
		LEFT JOIN users u ON u.id = e.user_id
		WHERE ` + baseWhere + `
		ORDER BY e.timestamp DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		ev, err := scanEvent(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// ListByRange implements attendance.EventRepository.
func (r *eventRepository) ListByRange(ctx context.Context, start, end *time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if start != nil {
		baseWhere += fmt.Sprintf(" AND e.timestamp::date >= $%d::date", argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		baseWhere += fmt.Sprintf(" AND e.timestamp::date <= $%d::date", argIdx)
		args = append(args, *end)
		argIdx++
	}

	query := `
		SELECT ` + eventColumns + `, u.name AS user_name
		FROM attendance_events e
		LEFT JOIN users u ON u.id = e.user_id
		WHERE ` + baseWhere + `
		ORDER BY e.timestamp
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		ev, err := scanEvent(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// LockDailySlot implements attendance.EventRepository using a
// transaction-scoped advisory lock, so two concurrent registrations for
// the same (user, date, kind) serialize and the loser sees the winner's
// committed event. Released automatically at transaction end.
func (r *eventRepository) LockDailySlot(ctx context.Context, userID string, date time.Time, kind attendance.EventKind) error {
	tx, ok := ctx.Value("tx").(pgx.Tx)
	if !ok {
		return errors.New("LockDailySlot requires a transaction")
	}

	key := fmt.Sprintf("%s:%s:%s", userID, date.Format("2006-01-02"), kind)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("failed to acquire registration lock: %w", err)
	}

	return nil
}

type incidenceRepository struct {
	db *database.DB
}

func NewIncidenceRepository(db *database.DB) attendance.IncidenceRepository {
	return &incidenceRepository{db: db}
}

const incidenceColumns = `i.id, i.user_id, i.kind, i.date, i.description, i.created_at`

// CreateIfAbsent implements attendance.IncidenceRepository. The unique
// index on (user_id, kind, date) plus ON CONFLICT DO NOTHING makes the
// insert race-free; losing a race reports created=false with the
// existing row.
func (r *incidenceRepository) CreateIfAbsent(ctx context.Context, inc attendance.Incidence) (attendance.Incidence, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO incidences (id, user_id, kind, date, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, kind, date) DO NOTHING
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, inc.ID, inc.UserID, inc.Kind, inc.Date, inc.Description).
		Scan(&inc.CreatedAt)
	if err == nil {
		return inc, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Incidence{}, false, fmt.Errorf("failed to create incidence: %w", err)
	}

	// Conflict: fetch the row that won.
	existing, err := r.getByKey(ctx, inc.UserID, inc.Kind, inc.Date)
	if err != nil {
		return attendance.Incidence{}, false, err
	}

	return existing, false, nil
}

func (r *incidenceRepository) getByKey(ctx context.Context, userID string, kind attendance.IncidenceKind, date time.Time) (attendance.Incidence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + incidenceColumns + `
		FROM incidences i
		WHERE i.user_id = $1 AND i.kind = $2 AND i.date = $3::date
	`

	var inc attendance.Incidence
	err := q.QueryRow(ctx, query, userID, kind, date).
		Scan(&inc.ID, &inc.UserID, &inc.Kind, &inc.Date, &inc.Description, &inc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Incidence{}, attendance.ErrIncidenceNotFound
		}
		return attendance.Incidence{}, fmt.Errorf("failed to get incidence: %w", err)
	}

	return inc, nil
}

// ListByUserAndRange implements attendance.IncidenceRepository.
func (r *incidenceRepository) ListByUserAndRange(ctx context.Context, userID string, start, end *time.Time) ([]attendance.Incidence, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "i.user_id = $1"
	args := []interface{}{userID}
	argIdx := 2

	if start != nil {
		baseWhere += fmt.Sprintf(" AND i.date >= $%d::date", argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		baseWhere += fmt.Sprintf(" AND i.date <= $%d::date", argIdx)
		args = append(args, *end)
		argIdx++
	}

	return r.list(ctx, q, baseWhere, args)
}

// ListByRange implements attendance.IncidenceRepository.
func (r *incidenceRepository) ListByRange(ctx context.Context, start, end *time.Time) ([]attendance.Incidence, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if start != nil {
		baseWhere += fmt.Sprintf(" AND i.date >= $%d::date", argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		baseWhere += fmt.Sprintf(" AND i.date <= $%d::date", argIdx)
		args = append(args, *end)
		argIdx++
	}

	return r.list(ctx, q, baseWhere, args)
}

func (r *incidenceRepository) list(ctx context.Context, q database.Querier, baseWhere string, args []interface{}) ([]attendance.Incidence, error) {
	query := `
		SELECT ` + incidenceColumns + `, u.name AS user_name
		FROM incidences i
		LEFT JOIN users u ON u.id = i.user_id
		WHERE ` + baseWhere + `
		ORDER BY i.date DESC, i.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incidences: %w", err)
	}
	defer rows.Close()

	var incidences []attendance.Incidence
	for rows.Next() {
		var inc attendance.Incidence
		err := rows.Scan(&inc.ID, &inc.UserID, &inc.Kind, &inc.Date, &inc.Description, &inc.CreatedAt, &inc.UserName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incidence: %w", err)
		}
		incidences = append(incidences, inc)
	}

	return incidences, rows.Err()
}
