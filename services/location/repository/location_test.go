package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/database"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var riderLocationCols = []string{"id", "rider_code", "name", "vehicle_type", "current_lat", "current_lng", "location_updated_at"}

// setupRepo wires the repository to sqlmock and a miniredis server
func setupRepo(t *testing.T) (*LocationRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewLocationRepository(&models.Config{}, sqlx.NewDb(mockDB, "sqlmock"), &database.RedisClient{Client: client})
	return repo, mock, mr
}

func newEntry(riderID uuid.UUID, lat, lng float64) *models.LocationLog {
	speed := 8.5
	return &models.LocationLog{
		ID:         uuid.New(),
		RiderID:    riderID,
		Lat:        lat,
		Lng:        lng,
		Speed:      &speed,
		Geohash:    "tc0z3m1",
		RecordedAt: time.Unix(1773480600, 0).UTC(),
	}
}

func TestRecordLocation_Success(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	entry := newEntry(uuid.New(), 6.9271, 79.8612)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE riders SET current_lat = $1, current_lng = $2")).
		WithArgs(entry.Lat, entry.Lng, entry.RecordedAt, entry.RiderID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO location_logs")).
		WithArgs(entry.ID, entry.RiderID, entry.Lat, entry.Lng, 8.5, nil, nil, "tc0z3m1", entry.RecordedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.RecordLocation(context.Background(), entry)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordLocation_UnknownRider(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	entry := newEntry(uuid.New(), 1, 1)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE riders SET current_lat")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.RecordLocation(context.Background(), entry)

	assert.Equal(t, location.ErrRiderNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordLocation_InsertError(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	entry := newEntry(uuid.New(), 1, 1)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE riders SET current_lat")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO location_logs")).
		WillReturnError(errors.New("check constraint violated"))
	mock.ExpectRollback()

	err := repo.RecordLocation(context.Background(), entry)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert location log")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListHistory(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	riderID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM location_logs")).
		WithArgs(riderID, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rider_id", "lat", "lng", "speed", "heading", "accuracy", "geohash", "recorded_at"}).
			AddRow(uuid.New().String(), riderID.String(), 6.9, 79.8, nil, 180.0, 5.0, "tc0z3m1", now))

	logs, err := repo.ListHistory(context.Background(), riderID, 50)

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Nil(t, logs[0].Speed)
	assert.Equal(t, 180.0, *logs[0].Heading)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheLiveLocation(t *testing.T) {
	repo, _, mr := setupRepo(t)
	riderID := uuid.New()
	entry := newEntry(riderID, 6.9271, 79.8612)

	err := repo.CacheLiveLocation(context.Background(), entry, 24*time.Hour)

	require.NoError(t, err)
	key := fmt.Sprintf(constants.KeyRiderLocation, riderID.String())
	assert.Equal(t, "6.9271", mr.HGet(key, constants.FieldLatitude))
	assert.Equal(t, "79.8612", mr.HGet(key, constants.FieldLongitude))
	assert.Equal(t, "8.5", mr.HGet(key, constants.FieldSpeed))
	assert.Equal(t, "", mr.HGet(key, constants.FieldHeading))
	assert.Equal(t, 24*time.Hour, mr.TTL(key))
	assert.True(t, mr.Exists(constants.KeyRidersLiveGeo))
}

func TestCacheLiveLocation_RedisDown(t *testing.T) {
	repo, _, mr := setupRepo(t)
	mr.Close()

	err := repo.CacheLiveLocation(context.Background(), newEntry(uuid.New(), 1, 1), time.Hour)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to index live location")
}

func TestNearbyRiders(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	ctx := context.Background()
	near, far := uuid.New(), uuid.New()
	since := time.Now().Add(-time.Hour)

	require.NoError(t, repo.CacheLiveLocation(ctx, newEntry(near, 6.9300, 79.8600), time.Hour))
	require.NoError(t, repo.CacheLiveLocation(ctx, newEntry(far, 7.2906, 80.6337), time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id::text = ANY($1) AND is_active AND location_updated_at >= $2")).
		WithArgs(fmt.Sprintf(`{"%s"}`, near.String()), since).
		WillReturnRows(sqlmock.NewRows(riderLocationCols).
			AddRow(near.String(), "RDR-001", "Nimal", "bike", 6.93, 79.86, time.Now()))

	riders, err := repo.NearbyRiders(ctx, models.NearbyQuery{Lat: 6.9271, Lng: 79.8612, RadiusKm: 5}, since)

	require.NoError(t, err)
	require.Len(t, riders, 1)
	assert.Equal(t, near, riders[0].RiderID)
	assert.Greater(t, riders[0].DistanceKm, 0.0)
	assert.Less(t, riders[0].DistanceKm, 1.0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNearbyRiders_NoHits(t *testing.T) {
	repo, mock, _ := setupRepo(t)

	riders, err := repo.NearbyRiders(context.Background(), models.NearbyQuery{Lat: 0, Lng: 0, RadiusKm: 1}, time.Now())

	require.NoError(t, err)
	assert.Empty(t, riders)
	assert.NoError(t, mock.ExpectationsWereMet())
}
