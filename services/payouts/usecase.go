package payouts

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/bikeparts/services/payouts PayoutUC

// PayoutUC covers wallet withdrawals and the earnings ledger
type PayoutUC interface {
	RequestPayout(ctx context.Context, riderID uuid.UUID, req models.PayoutRequest) (*models.Payout, error)
	CompletePayout(ctx context.Context, payoutID uuid.UUID, res models.PayoutResolution) (*models.Payout, error)
	FailPayout(ctx context.Context, payoutID uuid.UUID, res models.PayoutResolution) (*models.Payout, error)
	PayoutHistory(ctx context.Context, riderID uuid.UUID, limit, offset int) (*models.PayoutHistory, error)

	EarningsToday(ctx context.Context, riderID uuid.UUID) (*models.EarningsReport, error)
	EarningsHistory(ctx context.Context, riderID uuid.UUID, from, to string) (*models.EarningsReport, error)
}
