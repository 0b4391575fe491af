package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/geoattend/geoattend-backend-go/internal/domain/attendance"
	"github.com/geoattend/geoattend-backend-go/internal/domain/geofence"
	"github.com/geoattend/geoattend-backend-go/internal/domain/network"
	"github.com/geoattend/geoattend-backend-go/internal/domain/user"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
	"github.com/geoattend/geoattend-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS geofences (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	center_lat DOUBLE PRECISION NOT NULL,
	center_lng DOUBLE PRECISION NOT NULL,
	radius_meters DOUBLE PRECISION NOT NULL CHECK (radius_meters > 0),
	active BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS authorized_networks (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	ssid TEXT NOT NULL,
	bssid TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS schedules (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	day_of_week SMALLINT NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
	entry_minutes SMALLINT NOT NULL,
	exit_minutes SMALLINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (user_id, day_of_week)
);
CREATE TABLE IF NOT EXISTS attendance_events (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	geofence_id TEXT NOT NULL REFERENCES geofences(id),
	network_id TEXT REFERENCES authorized_networks(id),
	kind TEXT NOT NULL CHECK (kind IN ('entry', 'exit')),
	claimed_lat DOUBLE PRECISION NOT NULL,
	claimed_lng DOUBLE PRECISION NOT NULL,
	claimed_ssid TEXT NOT NULL DEFAULT '',
	claimed_bssid TEXT NOT NULL DEFAULT '',
	timestamp TIMESTAMPTZ NOT NULL,
	within_geofence BOOLEAN NOT NULL,
	network_authorized BOOLEAN NOT NULL,
	distance_meters DOUBLE PRECISION NOT NULL,
	valid BOOLEAN NOT NULL,
	auto_generated BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS incidences (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	kind TEXT NOT NULL,
	date DATE NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (user_id, kind, date)
);
`

func testInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration tests")
	}
	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")

	_, err = testDB.Exec(context.Background(), schema)
	require.NoError(t, err, "failed to bootstrap test schema")
}

func truncateAll(t *testing.T, ctx context.Context) {
	t.Helper()
	_, err := testDB.Exec(ctx, `TRUNCATE TABLE incidences, attendance_events, schedules, authorized_networks, geofences, users CASCADE`)
	require.NoError(t, err)
}

func createTestUser(t *testing.T, ctx context.Context) string {
	t.Helper()
	u, err := postgresql.NewUserRepository(testDB).Create(ctx, user.User{
		ID:           uuid.New().String(),
		Name:         "Test Teacher",
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "x",
		Role:         user.RoleTeacher,
		Active:       true,
	})
	require.NoError(t, err)
	return u.ID
}

func createTestGeofence(t *testing.T, ctx context.Context) string {
	t.Helper()
	g, err := postgresql.NewGeofenceRepository(testDB).Create(ctx, geofence.Geofence{
		ID:           uuid.New().String(),
		Name:         "Main Campus",
		CenterLat:    20.6597,
		CenterLng:    -103.3496,
		RadiusMeters: 100,
		Active:       true,
	})
	require.NoError(t, err)
	return g.ID
}

func TestEventCreateAndListValid(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	userID := createTestUser(t, ctx)
	geofenceID := createTestGeofence(t, ctx)
	repo := postgresql.NewEventRepository(testDB)
	now := time.Now()

	newEvent := func(kind attendance.EventKind, valid bool) attendance.Event {
		return attendance.Event{
			ID:                uuid.New().String(),
			UserID:            userID,
			GeofenceID:        geofenceID,
			Kind:              kind,
			ClaimedLat:        20.6598,
			ClaimedLng:        -103.3497,
			Timestamp:         now,
			WithinGeofence:    valid,
			NetworkAuthorized: true,
			DistanceMeters:    14.2,
			Valid:             valid,
		}
	}

	_, err := repo.Create(ctx, newEvent(attendance.KindEntry, false))
	require.NoError(t, err)
	created, err := repo.Create(ctx, newEvent(attendance.KindEntry, true))
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	valid, err := repo.ListValidByUserAndDate(ctx, userID, now)
	require.NoError(t, err)
	require.Len(t, valid, 1, "invalid events must not appear in the daily-state read")
	assert.Equal(t, attendance.KindEntry, valid[0].Kind)

	all, err := repo.ListByUserAndRange(ctx, userID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	require.NotNil(t, all[0].UserName)
	assert.Equal(t, "Test Teacher", *all[0].UserName)
}

func TestIncidenceCreateIfAbsent(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	userID := createTestUser(t, ctx)
	repo := postgresql.NewIncidenceRepository(testDB)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	first, created, err := repo.CreateIfAbsent(ctx, attendance.Incidence{
		ID:          uuid.New().String(),
		UserID:      userID,
		Kind:        attendance.IncidenceLateArrival,
		Date:        date,
		Description: "first",
	})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.CreateIfAbsent(ctx, attendance.Incidence{
		ID:          uuid.New().String(),
		UserID:      userID,
		Kind:        attendance.IncidenceLateArrival,
		Date:        date,
		Description: "second",
	})
	require.NoError(t, err)
	assert.False(t, created, "same (user, kind, date) must not insert twice")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "first", second.Description)

	// A different kind on the same date is a separate row.
	_, created, err = repo.CreateIfAbsent(ctx, attendance.Incidence{
		ID:     uuid.New().String(),
		UserID: userID,
		Kind:   attendance.IncidenceEarlyDeparture,
		Date:   date,
	})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestLockDailySlotRequiresTransaction(t *testing.T) {
	testInit(t)
	ctx := context.Background()

	repo := postgresql.NewEventRepository(testDB)
	err := repo.LockDailySlot(ctx, "u1", time.Now(), attendance.KindEntry)
	assert.Error(t, err, "the advisory lock is transaction-scoped and must refuse a bare context")

	runner := postgresql.NewTxRunner(testDB)
	err = runner.RunInTx(ctx, func(ctx context.Context) error {
		return repo.LockDailySlot(ctx, "u1", time.Now(), attendance.KindEntry)
	})
	assert.NoError(t, err)
}

func TestNetworkBSSIDUnique(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	repo := postgresql.NewNetworkRepository(testDB)

	_, err := repo.Create(ctx, network.AuthorizedNetwork{
		ID:     uuid.New().String(),
		Name:   "Staff Room",
		SSID:   "CAMPUS_WIFI",
		BSSID:  "AA:BB:CC:DD:EE:01",
		Active: true,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, network.AuthorizedNetwork{
		ID:     uuid.New().String(),
		Name:   "Duplicate AP",
		SSID:   "CAMPUS_WIFI",
		BSSID:  "aa:bb:cc:dd:ee:01",
		Active: true,
	})
	assert.ErrorIs(t, err, network.ErrBSSIDExists, "BSSIDs are normalized before the uniqueness check")
}

func TestGeofenceGetActive(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	repo := postgresql.NewGeofenceRepository(testDB)

	_, err := repo.GetActive(ctx)
	assert.ErrorIs(t, err, geofence.ErrNoActiveGeofence)

	createTestGeofence(t, ctx)
	g, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Main Campus", g.Name)
}
