package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/database"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/internal/pkg/outbox"
	"github.com/piresc/bikeparts/services/deliveries"
)

const salesOrderColumns = `id, order_number, status, payment_method, total_amount, items,
	shipping_address, assigned_rider_id, created_at, updated_at`

const riderColumns = `id, rider_code, name, phone, vehicle_type, is_active, wallet_balance,
	rating, total_deliveries, current_task_id, current_lat, current_lng,
	location_updated_at, fcm_token, created_at, updated_at`

// GetSalesOrder returns the order or nil when it does not exist
func (r *DeliveryRepo) GetSalesOrder(ctx context.Context, orderID uuid.UUID) (*models.SalesOrder, error) {
	var order models.SalesOrder
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE id = $1`
	if err := r.db.GetContext(ctx, &order, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sales order: %w", err)
	}
	return &order, nil
}

// GetRider returns the rider or nil when it does not exist
func (r *DeliveryRepo) GetRider(ctx context.Context, riderID uuid.UUID) (*models.Rider, error) {
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

// CreateAssignment locks the sales order, claims the rider with a
// compare-and-swap on current_task_id and inserts the task
func (r *DeliveryRepo) CreateAssignment(ctx context.Context, task *models.DeliveryTask) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var status models.SalesOrderStatus
		err := tx.GetContext(ctx, &status, `SELECT status FROM sales_orders WHERE id = $1 FOR UPDATE`, task.OrderID)
		if errors.Is(err, sql.ErrNoRows) {
			return deliveries.ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock sales order: %w", err)
		}
		if !status.Dispatchable() {
			return deliveries.ErrOrderNotAssignable
		}

		// claim first so a busy rider is reported before the open-task index
		// aborts the transaction; fk_riders_current_task is deferred to commit
		res, err := tx.ExecContext(ctx, `
			UPDATE riders SET current_task_id = $1, updated_at = $2
			WHERE id = $3 AND is_active AND current_task_id IS NULL`,
			task.ID, task.CreatedAt, task.RiderID)
		if err != nil {
			return fmt.Errorf("failed to claim rider: %w", err)
		}
		claimed, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to claim rider: %w", err)
		}
		if claimed == 0 {
			return classifyUnclaimedRider(ctx, tx, task.RiderID)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO delivery_tasks (
				id, order_id, order_number, rider_id, items, pickup, delivery,
				cod_amount, status, otp_pickup, otp_delivery, photos, notes,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			task.ID, task.OrderID, task.OrderNumber, task.RiderID, task.Items, task.Pickup, task.Delivery,
			task.CODAmount, task.Status, task.OTPPickup, task.OTPDelivery, task.Photos, task.Notes,
			task.CreatedAt, task.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert delivery task: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE sales_orders SET status = $1, assigned_rider_id = $2, updated_at = $3
			WHERE id = $4`,
			models.SalesOrderDispatched, task.RiderID, task.CreatedAt, task.OrderID)
		if err != nil {
			return fmt.Errorf("failed to dispatch sales order: %w", err)
		}

		return outbox.Emit(ctx, tx, outbox.Event{
			Subject: constants.SubjectTaskAssigned,
			Key:     task.ID.String(),
			Payload: newTaskEvent(task, task.CreatedAt),
		})
	})
}

func classifyUnclaimedRider(ctx context.Context, tx *sqlx.Tx, riderID uuid.UUID) error {
	var state struct {
		IsActive      bool       `db:"is_active"`
		CurrentTaskID *uuid.UUID `db:"current_task_id"`
	}
	err := tx.GetContext(ctx, &state, `SELECT is_active, current_task_id FROM riders WHERE id = $1`, riderID)
	if errors.Is(err, sql.ErrNoRows) {
		return deliveries.ErrRiderUnavailable
	}
	if err != nil {
		return fmt.Errorf("failed to read rider: %w", err)
	}
	if !state.IsActive {
		return deliveries.ErrRiderUnavailable
	}
	return deliveries.ErrRiderBusy
}
