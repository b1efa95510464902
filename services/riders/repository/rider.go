package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

const riderColumns = `id, rider_code, name, phone, vehicle_type, is_active, wallet_balance,
	rating, total_deliveries, current_task_id, current_lat, current_lng,
	location_updated_at, fcm_token, created_at, updated_at`

// GetRider returns the rider or nil when it does not exist
func (r *RiderRepo) GetRider(ctx context.Context, riderID uuid.UUID) (*models.Rider, error) {
	var rider models.Rider
	query := `SELECT ` + riderColumns + ` FROM riders WHERE id = $1`
	if err := r.db.GetContext(ctx, &rider, query, riderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rider: %w", err)
	}
	return &rider, nil
}

// UpdateProfile applies the non-nil fields and returns the updated rider, or
// nil when it does not exist
func (r *RiderRepo) UpdateProfile(ctx context.Context, riderID uuid.UUID, u models.ProfileUpdate, at time.Time) (*models.Rider, error) {
	var rider models.Rider
	query := `
		UPDATE riders SET
			name = COALESCE($1, name),
			vehicle_type = COALESCE($2, vehicle_type),
			fcm_token = COALESCE($3, fcm_token),
			updated_at = $4
		WHERE id = $5
		RETURNING ` + riderColumns
	if err := r.db.GetContext(ctx, &rider, query, u.Name, u.VehicleType, u.FCMToken, at, riderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update rider profile: %w", err)
	}
	return &rider, nil
}

// GetStats aggregates the rider's tasks and ledger. Deliveries completed at
// or after dayStart count towards today.
func (r *RiderRepo) GetStats(ctx context.Context, riderID uuid.UUID, dayStart time.Time) (*models.RiderStats, error) {
	var stats models.RiderStats
	query := `
		SELECT
			r.rating,
			r.total_deliveries,
			r.wallet_balance,
			(SELECT COUNT(*) FROM delivery_tasks t WHERE t.rider_id = r.id) AS total_orders,
			(SELECT COUNT(*) FROM delivery_tasks t
				WHERE t.rider_id = r.id AND t.status = 'delivered') AS completed_orders,
			(SELECT COUNT(*) FROM delivery_tasks t
				WHERE t.rider_id = r.id AND t.status = 'delivered' AND t.delivered_at >= $2) AS today_deliveries,
			(SELECT COALESCE(SUM(e.amount), 0) FROM rider_earnings e WHERE e.rider_id = r.id) AS total_earnings
		FROM riders r
		WHERE r.id = $1`
	if err := r.db.GetContext(ctx, &stats, query, riderID, dayStart); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rider stats: %w", err)
	}
	return &stats, nil
}
