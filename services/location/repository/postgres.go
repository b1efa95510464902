package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/database"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/location"
)

const riderLocationColumns = `id, rider_code, name, vehicle_type, current_lat, current_lng, location_updated_at`

// RecordLocation appends the sample to location_logs and moves the rider's
// current position
func (r *LocationRepo) RecordLocation(ctx context.Context, entry *models.LocationLog) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE riders SET current_lat = $1, current_lng = $2, location_updated_at = $3, updated_at = $3
			WHERE id = $4`,
			entry.Lat, entry.Lng, entry.RecordedAt, entry.RiderID)
		if err != nil {
			return fmt.Errorf("failed to update rider position: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update rider position: %w", err)
		}
		if n == 0 {
			return location.ErrRiderNotFound
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO location_logs (id, rider_id, lat, lng, speed, heading, accuracy, geohash, recorded_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			entry.ID, entry.RiderID, entry.Lat, entry.Lng, entry.Speed, entry.Heading,
			entry.Accuracy, entry.Geohash, entry.RecordedAt)
		if err != nil {
			return fmt.Errorf("failed to insert location log: %w", err)
		}
		return nil
	})
}

// ListHistory returns the rider's most recent samples, newest first
func (r *LocationRepo) ListHistory(ctx context.Context, riderID uuid.UUID, limit int) ([]models.LocationLog, error) {
	logs := []models.LocationLog{}
	query := `
		SELECT id, rider_id, lat, lng, speed, heading, accuracy, geohash, recorded_at
		FROM location_logs
		WHERE rider_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2`
	if err := r.db.SelectContext(ctx, &logs, query, riderID, limit); err != nil {
		return nil, fmt.Errorf("failed to list location history: %w", err)
	}
	return logs, nil
}

// ListLiveLocations returns every active rider with a known position
func (r *LocationRepo) ListLiveLocations(ctx context.Context) ([]models.RiderLocation, error) {
	riders := []models.RiderLocation{}
	query := `SELECT ` + riderLocationColumns + ` FROM riders
		WHERE is_active AND current_lat IS NOT NULL AND current_lng IS NOT NULL
		ORDER BY location_updated_at DESC`
	if err := r.db.SelectContext(ctx, &riders, query); err != nil {
		return nil, fmt.Errorf("failed to list live locations: %w", err)
	}
	return riders, nil
}
