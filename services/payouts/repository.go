package payouts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/bikeparts/services/payouts PayoutRepo

// PayoutRepo defines data access for payouts, the earnings ledger and wallets
type PayoutRepo interface {
	CreatePayout(ctx context.Context, payout *models.Payout) error
	ResolvePayout(ctx context.Context, payoutID uuid.UUID, status models.PayoutStatus, res models.PayoutResolution, at time.Time) (*models.Payout, error)
	ListPayouts(ctx context.Context, riderID uuid.UUID, limit, offset int) ([]models.Payout, int, error)

	ListEarnings(ctx context.Context, riderID uuid.UUID, from, to time.Time) ([]models.Earning, error)
	GetWalletBalance(ctx context.Context, riderID uuid.UUID) (*int64, error)
}
