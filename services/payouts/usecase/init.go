package usecase

import (
	"time"

	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/payouts"
)

// PayoutUC implements the payout use case interface
type PayoutUC struct {
	cfg        *models.Config
	payoutRepo payouts.PayoutRepo
	loc        *time.Location
	now        func() time.Time
}

// NewPayoutUC creates a new payout use case. Day boundaries are computed in
// the configured timezone, falling back to UTC.
func NewPayoutUC(cfg *models.Config, payoutRepo payouts.PayoutRepo) *PayoutUC {
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil || cfg.App.Timezone == "" {
		loc = time.UTC
	}
	return &PayoutUC{
		cfg:        cfg,
		payoutRepo: payoutRepo,
		loc:        loc,
		now:        models.Now,
	}
}
