package repository

import (
	"context"
	"database/sql"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var riderCols = []string{
	"id", "rider_code", "name", "phone", "vehicle_type", "is_active", "wallet_balance",
	"rating", "total_deliveries", "current_task_id", "current_lat", "current_lng",
	"location_updated_at", "fcm_token", "created_at", "updated_at",
}

func setupRepo(t *testing.T) (*RiderRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRiderRepository(&models.Config{}, sqlx.NewDb(mockDB, "sqlmock"), &database.RedisClient{Client: client}), mock, mr
}

func riderRow(id uuid.UUID, name string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(riderCols).AddRow(
		id.String(), "RDR-001", name, "+94771234567", "bike", true, 2500,
		4.8, 120, nil, nil, nil, nil, "", now, now)
}

func TestGetRider(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	riderID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM riders WHERE id = $1")).
		WithArgs(riderID).
		WillReturnRows(riderRow(riderID, "Nimal"))

	rider, err := repo.GetRider(context.Background(), riderID)

	require.NoError(t, err)
	assert.Equal(t, "Nimal", rider.Name)
	assert.Equal(t, models.VehicleBike, rider.VehicleType)
	assert.Nil(t, rider.CurrentTaskID)
	assert.Nil(t, rider.CurrentLocation())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRider_NotFound(t *testing.T) {
	repo, mock, _ := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM riders WHERE id = $1")).WillReturnError(sql.ErrNoRows)

	rider, err := repo.GetRider(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, rider)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	riderID := uuid.New()
	at := time.Now()
	name := "Kamal"

	mock.ExpectQuery(regexp.QuoteMeta("name = COALESCE($1, name)")).
		WithArgs("Kamal", nil, nil, at, riderID).
		WillReturnRows(riderRow(riderID, "Kamal"))

	rider, err := repo.UpdateProfile(context.Background(), riderID, models.ProfileUpdate{Name: &name}, at)

	require.NoError(t, err)
	assert.Equal(t, "Kamal", rider.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStats(t *testing.T) {
	repo, mock, _ := setupRepo(t)
	riderID := uuid.New()
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM riders r")).
		WithArgs(riderID, dayStart).
		WillReturnRows(sqlmock.NewRows([]string{
			"rating", "total_deliveries", "wallet_balance", "total_orders",
			"completed_orders", "today_deliveries", "total_earnings",
		}).AddRow(4.5, 40, 3200, 45, 40, 3, 8000))

	stats, err := repo.GetStats(context.Background(), riderID, dayStart)

	require.NoError(t, err)
	assert.Equal(t, models.RiderStats{
		TotalOrders:     45,
		CompletedOrders: 40,
		TodayDeliveries: 3,
		Rating:          4.5,
		TotalDeliveries: 40,
		TotalEarnings:   8000,
		WalletBalance:   3200,
	}, *stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPresence(t *testing.T) {
	repo, _, mr := setupRepo(t)
	ctx := context.Background()
	riderID := uuid.New()
	key := fmt.Sprintf(constants.KeyRiderOnline, riderID.String())

	err := repo.SetPresence(ctx, models.RiderPresence{RiderID: riderID.String(), Online: true, LastSeen: time.Now()}, 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 5*time.Minute, mr.TTL(key))

	mr.FastForward(6 * time.Minute)
	assert.False(t, mr.Exists(key))

	require.NoError(t, repo.SetPresence(ctx, models.RiderPresence{RiderID: riderID.String(), Online: true}, time.Minute))
	require.NoError(t, repo.ClearPresence(ctx, riderID))
	assert.False(t, mr.Exists(key))
}
