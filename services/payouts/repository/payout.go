package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/database"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/internal/pkg/outbox"
	"github.com/piresc/bikeparts/services/payouts"
)

const payoutColumns = `id, rider_id, amount, method, status, bank_details, reference,
	failure_reason, processed_at, created_at, updated_at`

var openPayoutStatuses = pq.StringArray{string(models.PayoutPending), string(models.PayoutProcessing)}

// CreatePayout holds the amount against the wallet and records a pending
// payout. The debit is conditional on the balance covering it.
func (r *PayoutRepo) CreatePayout(ctx context.Context, payout *models.Payout) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE riders SET wallet_balance = wallet_balance - $1, updated_at = $2
			WHERE id = $3 AND wallet_balance >= $1`,
			payout.Amount, payout.CreatedAt, payout.RiderID)
		if err != nil {
			return fmt.Errorf("failed to debit wallet: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to debit wallet: %w", err)
		}
		if n == 0 {
			return payouts.ErrInsufficientBalance
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO payouts (id, rider_id, amount, method, status, bank_details, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			payout.ID, payout.RiderID, payout.Amount, payout.Method, payout.Status,
			payout.BankDetails, payout.CreatedAt, payout.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert payout: %w", err)
		}

		return outbox.Emit(ctx, tx, outbox.Event{
			Subject: constants.SubjectPayoutRequested,
			Key:     payout.ID.String(),
			Payload: newPayoutEvent(payout, payout.CreatedAt),
		})
	})
}

// ResolvePayout closes an open payout as completed or failed. A failed payout
// credits the held amount back to the wallet.
func (r *PayoutRepo) ResolvePayout(ctx context.Context, payoutID uuid.UUID, status models.PayoutStatus, res models.PayoutResolution, at time.Time) (*models.Payout, error) {
	var payout models.Payout
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &payout, `
			UPDATE payouts SET
				status = $1,
				reference = NULLIF($2, ''),
				failure_reason = NULLIF($3, ''),
				processed_at = $4,
				updated_at = $4
			WHERE id = $5 AND status = ANY($6)
			RETURNING `+payoutColumns,
			status, res.Reference, res.FailureReason, at, payoutID, openPayoutStatuses)
		if errors.Is(err, sql.ErrNoRows) {
			return classifyUnresolved(ctx, tx, payoutID)
		}
		if err != nil {
			return fmt.Errorf("failed to resolve payout: %w", err)
		}

		subject := constants.SubjectPayoutCompleted
		if status == models.PayoutFailed {
			subject = constants.SubjectPayoutFailed
			_, err = tx.ExecContext(ctx, `
				UPDATE riders SET wallet_balance = wallet_balance + $1, updated_at = $2
				WHERE id = $3`,
				payout.Amount, at, payout.RiderID)
			if err != nil {
				return fmt.Errorf("failed to refund wallet: %w", err)
			}
		}

		return outbox.Emit(ctx, tx, outbox.Event{
			Subject: subject,
			Key:     payout.ID.String(),
			Payload: newPayoutEvent(&payout, at),
		})
	})
	if err != nil {
		return nil, err
	}
	return &payout, nil
}

func classifyUnresolved(ctx context.Context, tx *sqlx.Tx, payoutID uuid.UUID) error {
	var status models.PayoutStatus
	err := tx.GetContext(ctx, &status, `SELECT status FROM payouts WHERE id = $1`, payoutID)
	if errors.Is(err, sql.ErrNoRows) {
		return payouts.ErrPayoutNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read payout: %w", err)
	}
	return payouts.ErrPayoutClosed
}

// ListPayouts returns a page of the rider's payouts and the total count
func (r *PayoutRepo) ListPayouts(ctx context.Context, riderID uuid.UUID, limit, offset int) ([]models.Payout, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM payouts WHERE rider_id = $1`, riderID); err != nil {
		return nil, 0, fmt.Errorf("failed to count payouts: %w", err)
	}

	list := []models.Payout{}
	query := `SELECT ` + payoutColumns + ` FROM payouts
		WHERE rider_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	if err := r.db.SelectContext(ctx, &list, query, riderID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list payouts: %w", err)
	}
	return list, total, nil
}

func newPayoutEvent(p *models.Payout, at time.Time) models.PayoutEvent {
	return models.PayoutEvent{
		PayoutID:   p.ID.String(),
		RiderID:    p.RiderID.String(),
		Amount:     p.Amount,
		Method:     p.Method,
		Status:     p.Status,
		OccurredAt: at,
	}
}
