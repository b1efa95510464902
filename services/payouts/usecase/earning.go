package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/payouts"
)

const defaultEarningsWindow = 30 * 24 * time.Hour

// EarningsToday lists ledger rows since local midnight
func (uc *PayoutUC) EarningsToday(ctx context.Context, riderID uuid.UUID) (*models.EarningsReport, error) {
	now := uc.now().In(uc.loc)
	return uc.report(ctx, riderID, models.StartOfDay(now), now)
}

// EarningsHistory lists ledger rows between two YYYY-MM-DD dates. The window
// defaults to the last 30 days; the to date includes its whole day.
func (uc *PayoutUC) EarningsHistory(ctx context.Context, riderID uuid.UUID, from, to string) (*models.EarningsReport, error) {
	now := uc.now().In(uc.loc)

	end := now
	if to != "" {
		day, err := models.ParseDate(to, uc.loc)
		if err != nil {
			return nil, apperror.Validation("Invalid to date, expected YYYY-MM-DD")
		}
		end = models.EndOfDay(day)
	}

	start := models.StartOfDay(now.Add(-defaultEarningsWindow))
	if from != "" {
		day, err := models.ParseDate(from, uc.loc)
		if err != nil {
			return nil, apperror.Validation("Invalid from date, expected YYYY-MM-DD")
		}
		start = day
	}
	if start.After(end) {
		return nil, apperror.Validation("from must not be after to")
	}

	return uc.report(ctx, riderID, start, end)
}

func (uc *PayoutUC) report(ctx context.Context, riderID uuid.UUID, from, to time.Time) (*models.EarningsReport, error) {
	balance, err := uc.payoutRepo.GetWalletBalance(ctx, riderID)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load wallet")
	}
	if balance == nil {
		return nil, payouts.ErrRiderNotFound
	}

	earnings, err := uc.payoutRepo.ListEarnings(ctx, riderID, from, to)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load earnings")
	}

	report := &models.EarningsReport{
		Earnings:      earnings,
		WalletBalance: *balance,
		From:          from,
		To:            to,
	}
	for _, e := range earnings {
		report.Total += e.Amount
	}
	return report, nil
}
