package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/database"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/internal/pkg/outbox"
	"github.com/piresc/bikeparts/services/deliveries"
)

const taskColumns = `id, order_id, order_number, rider_id, items, pickup, delivery, cod_amount,
	status, otp_pickup, otp_delivery, photos, cash_collected, cash_settlement_status, notes,
	picked_up_at, delivered_at, cancelled_at, cancel_reason, created_at, updated_at`

// GetTask returns the task owned by riderID or nil when there is none
func (r *DeliveryRepo) GetTask(ctx context.Context, riderID, taskID uuid.UUID) (*models.DeliveryTask, error) {
	var task models.DeliveryTask
	query := `SELECT ` + taskColumns + ` FROM delivery_tasks WHERE id = $1 AND rider_id = $2`
	if err := r.db.GetContext(ctx, &task, query, taskID, riderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get delivery task: %w", err)
	}
	return &task, nil
}

// MarkPickedUp moves an assigned task to picked_up
func (r *DeliveryRepo) MarkPickedUp(ctx context.Context, riderID, taskID uuid.UUID, at time.Time) (*models.DeliveryTask, error) {
	var task *models.DeliveryTask
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		task, err = transition(ctx, tx, riderID, taskID, models.TaskStatusPickedUp, at, `, picked_up_at = $4`)
		if err != nil {
			return err
		}
		return emitTaskEvent(ctx, tx, constants.SubjectTaskPickedUp, task, at)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// MarkOutForDelivery moves a picked up task to out_for_delivery
func (r *DeliveryRepo) MarkOutForDelivery(ctx context.Context, riderID, taskID uuid.UUID, at time.Time) (*models.DeliveryTask, error) {
	var task *models.DeliveryTask
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		task, err = transition(ctx, tx, riderID, taskID, models.TaskStatusOutForDelivery, at, ``)
		if err != nil {
			return err
		}
		return emitTaskEvent(ctx, tx, constants.SubjectTaskStarted, task, at)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// CompleteDelivery marks the task delivered, appends the earnings ledger row,
// credits the wallet and releases the rider in one transaction
func (r *DeliveryRepo) CompleteDelivery(ctx context.Context, c models.DeliveryCompletion) (*models.DeliveryTask, error) {
	var task *models.DeliveryTask
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		task, err = transition(ctx, tx, c.RiderID, c.TaskID, models.TaskStatusDelivered, c.DeliveredAt, `,
			delivered_at = $4,
			photos = CASE WHEN $6::text = '' THEN photos ELSE array_append(photos, $6::text) END,
			cash_collected = COALESCE($7::bigint, cash_collected),
			cash_settlement_status = CASE WHEN $7::bigint IS NULL THEN cash_settlement_status ELSE 'pending' END`,
			c.PhotoProofURL, c.CashCollected)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO rider_earnings (id, rider_id, task_id, order_number, amount, kind, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.New(), c.RiderID, c.TaskID, task.OrderNumber, c.Fee, models.EarningDelivery, c.DeliveredAt)
		if err != nil {
			return fmt.Errorf("failed to record earning: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE riders SET
				wallet_balance = wallet_balance + $1,
				total_deliveries = total_deliveries + 1,
				current_task_id = NULLIF(current_task_id, $2),
				updated_at = $3
			WHERE id = $4`,
			c.Fee, c.TaskID, c.DeliveredAt, c.RiderID)
		if err != nil {
			return fmt.Errorf("failed to credit rider wallet: %w", err)
		}

		_, err = tx.ExecContext(ctx, `UPDATE sales_orders SET status = $1, updated_at = $2 WHERE id = $3`,
			models.SalesOrderDelivered, c.DeliveredAt, task.OrderID)
		if err != nil {
			return fmt.Errorf("failed to close sales order: %w", err)
		}

		event := newTaskEvent(task, c.DeliveredAt)
		event.Fee = c.Fee
		return outbox.Emit(ctx, tx, outbox.Event{
			Subject: constants.SubjectTaskDelivered,
			Key:     task.ID.String(),
			Payload: event,
		})
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// CancelTask cancels a non-terminal task, releases the rider and returns the
// sales order to the dispatch queue
func (r *DeliveryRepo) CancelTask(ctx context.Context, riderID, taskID uuid.UUID, reason string, at time.Time) (*models.DeliveryTask, error) {
	var task *models.DeliveryTask
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		task, err = transition(ctx, tx, riderID, taskID, models.TaskStatusCancelled, at,
			`, cancelled_at = $4, cancel_reason = $6`, reason)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE riders SET current_task_id = NULL, updated_at = $1
			WHERE id = $2 AND current_task_id = $3`,
			at, riderID, taskID)
		if err != nil {
			return fmt.Errorf("failed to release rider: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE sales_orders SET status = $1, assigned_rider_id = NULL, updated_at = $2
			WHERE id = $3 AND status = $4`,
			models.SalesOrderConfirmed, at, task.OrderID, models.SalesOrderDispatched)
		if err != nil {
			return fmt.Errorf("failed to release sales order: %w", err)
		}

		event := newTaskEvent(task, at)
		event.Reason = reason
		return outbox.Emit(ctx, tx, outbox.Event{
			Subject: constants.SubjectTaskCancelled,
			Key:     task.ID.String(),
			Payload: event,
		})
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks returns the rider's tasks in the given statuses, newest first
func (r *DeliveryRepo) ListTasks(ctx context.Context, riderID uuid.UUID, statuses []models.TaskStatus) ([]models.DeliveryTask, error) {
	tasks := []models.DeliveryTask{}
	query := `SELECT ` + taskColumns + ` FROM delivery_tasks
		WHERE rider_id = $1 AND status = ANY($2)
		ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &tasks, query, riderID, models.StatusStrings(statuses)); err != nil {
		return nil, fmt.Errorf("failed to list delivery tasks: %w", err)
	}
	return tasks, nil
}

// ListHistory returns a page of past tasks and the total matching count
func (r *DeliveryRepo) ListHistory(ctx context.Context, riderID uuid.UUID, q models.HistoryQuery) ([]models.DeliveryTask, int, error) {
	statuses := models.StatusStrings(q.Statuses)

	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM delivery_tasks WHERE rider_id = $1 AND status = ANY($2)`,
		riderID, statuses)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count task history: %w", err)
	}

	tasks := []models.DeliveryTask{}
	query := `SELECT ` + taskColumns + ` FROM delivery_tasks
		WHERE rider_id = $1 AND status = ANY($2)
		ORDER BY updated_at DESC
		LIMIT $3 OFFSET $4`
	if err := r.db.SelectContext(ctx, &tasks, query, riderID, statuses, q.Limit, q.Offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list task history: %w", err)
	}
	return tasks, total, nil
}

// transition applies a conditional status change. $1 task, $2 rider,
// $3 next status, $4 timestamp, $5 allowed source statuses; extra args
// continue from $6.
func transition(ctx context.Context, tx *sqlx.Tx, riderID, taskID uuid.UUID, next models.TaskStatus, at time.Time, set string, extra ...interface{}) (*models.DeliveryTask, error) {
	query := `UPDATE delivery_tasks SET status = $3, updated_at = $4` + set + `
		WHERE id = $1 AND rider_id = $2 AND status = ANY($5)
		RETURNING ` + taskColumns

	args := append([]interface{}{taskID, riderID, next, at, models.StatusStrings(models.SourcesFor(next))}, extra...)

	var task models.DeliveryTask
	err := tx.GetContext(ctx, &task, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, transitionRejected(ctx, tx, riderID, taskID, next)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update delivery task: %w", err)
	}
	return &task, nil
}

// transitionRejected reports why a conditional update matched nothing
func transitionRejected(ctx context.Context, tx *sqlx.Tx, riderID, taskID uuid.UUID, next models.TaskStatus) error {
	var current models.TaskStatus
	err := tx.GetContext(ctx, &current,
		`SELECT status FROM delivery_tasks WHERE id = $1 AND rider_id = $2`, taskID, riderID)
	if errors.Is(err, sql.ErrNoRows) {
		return deliveries.ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read delivery task: %w", err)
	}
	return deliveries.TransitionConflict(current, next)
}

func emitTaskEvent(ctx context.Context, tx *sqlx.Tx, subject string, task *models.DeliveryTask, at time.Time) error {
	return outbox.Emit(ctx, tx, outbox.Event{
		Subject: subject,
		Key:     task.ID.String(),
		Payload: newTaskEvent(task, at),
	})
}

func newTaskEvent(task *models.DeliveryTask, at time.Time) models.TaskEvent {
	return models.TaskEvent{
		TaskID:      task.ID.String(),
		OrderNumber: task.OrderNumber,
		RiderID:     task.RiderID.String(),
		Status:      task.Status,
		CODAmount:   task.CODAmount,
		OccurredAt:  at,
	}
}
