package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

// ListCODOrders returns the rider's delivered cash orders, newest first
func (r *DeliveryRepo) ListCODOrders(ctx context.Context, riderID uuid.UUID) ([]models.CODOrder, error) {
	orders := []models.CODOrder{}
	query := `
		SELECT id, order_number, cod_amount, cash_collected, cash_settlement_status, delivered_at
		FROM delivery_tasks
		WHERE rider_id = $1 AND status = $2 AND cod_amount > 0
		ORDER BY delivered_at DESC`
	if err := r.db.SelectContext(ctx, &orders, query, riderID, models.TaskStatusDelivered); err != nil {
		return nil, fmt.Errorf("failed to list COD orders: %w", err)
	}
	return orders, nil
}

// UpdateSettlement sets the settlement flag of a delivered cash order and
// returns the task, or nil when no such order belongs to the rider
func (r *DeliveryRepo) UpdateSettlement(ctx context.Context, riderID, taskID uuid.UUID, status models.SettlementStatus) (*models.DeliveryTask, error) {
	var task models.DeliveryTask
	query := `
		UPDATE delivery_tasks SET cash_settlement_status = $1, updated_at = $2
		WHERE id = $3 AND rider_id = $4 AND status = $5 AND cod_amount > 0
		RETURNING ` + taskColumns
	err := r.db.GetContext(ctx, &task, query, status, models.Now(), taskID, riderID, models.TaskStatusDelivered)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update settlement: %w", err)
	}
	return &task, nil
}
