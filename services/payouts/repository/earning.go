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

// ListEarnings returns ledger rows recorded within [from, to], newest first
func (r *PayoutRepo) ListEarnings(ctx context.Context, riderID uuid.UUID, from, to time.Time) ([]models.Earning, error) {
	earnings := []models.Earning{}
	query := `
		SELECT id, rider_id, task_id, order_number, amount, kind, created_at
		FROM rider_earnings
		WHERE rider_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &earnings, query, riderID, from, to); err != nil {
		return nil, fmt.Errorf("failed to list earnings: %w", err)
	}
	return earnings, nil
}

// GetWalletBalance returns the rider's balance or nil when the rider is unknown
func (r *PayoutRepo) GetWalletBalance(ctx context.Context, riderID uuid.UUID) (*int64, error) {
	var balance int64
	err := r.db.GetContext(ctx, &balance, `SELECT wallet_balance FROM riders WHERE id = $1`, riderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet balance: %w", err)
	}
	return &balance, nil
}
