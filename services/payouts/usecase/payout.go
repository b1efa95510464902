package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
	"github.com/piresc/bikeparts/internal/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// RequestPayout withdraws from the rider wallet. The amount is held
// immediately and the payout starts pending.
func (uc *PayoutUC) RequestPayout(ctx context.Context, riderID uuid.UUID, req models.PayoutRequest) (*models.Payout, error) {
	if req.Amount < uc.cfg.Delivery.MinPayout {
		return nil, apperror.Validation(fmt.Sprintf("Minimum payout amount is %d", uc.cfg.Delivery.MinPayout))
	}
	if !req.PayoutMethod.Valid() {
		return nil, apperror.Validation("Invalid payout method")
	}
	if req.PayoutMethod == models.PayoutBankTransfer && !req.BankDetails.Complete() {
		return nil, apperror.Validation("Bank details are required for bank transfer")
	}
	bank := req.BankDetails
	if req.PayoutMethod != models.PayoutBankTransfer {
		bank = nil
	}

	now := uc.now()
	payout := &models.Payout{
		ID:          uuid.New(),
		RiderID:     riderID,
		Amount:      req.Amount,
		Method:      req.PayoutMethod,
		Status:      models.PayoutPending,
		BankDetails: bank,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := nrpkg.WithSegment(ctx, "PayoutRepo.CreatePayout", func() error {
		return uc.payoutRepo.CreatePayout(ctx, payout)
	})
	if err != nil {
		return nil, passThrough(err, "Failed to request payout")
	}

	logger.InfoCtx(ctx, "Payout requested",
		logger.RiderID(riderID),
		logger.String("payout_id", payout.ID.String()),
		logger.Int64("amount", payout.Amount))
	return payout, nil
}

// CompletePayout marks an open payout as paid out
func (uc *PayoutUC) CompletePayout(ctx context.Context, payoutID uuid.UUID, res models.PayoutResolution) (*models.Payout, error) {
	payout, err := uc.payoutRepo.ResolvePayout(ctx, payoutID, models.PayoutCompleted, res, uc.now())
	if err != nil {
		return nil, passThrough(err, "Failed to complete payout")
	}
	return payout, nil
}

// FailPayout marks an open payout as failed and returns the held amount to the wallet
func (uc *PayoutUC) FailPayout(ctx context.Context, payoutID uuid.UUID, res models.PayoutResolution) (*models.Payout, error) {
	if res.FailureReason == "" {
		return nil, apperror.Validation("Failure reason is required")
	}
	payout, err := uc.payoutRepo.ResolvePayout(ctx, payoutID, models.PayoutFailed, res, uc.now())
	if err != nil {
		return nil, passThrough(err, "Failed to fail payout")
	}
	logger.WarnCtx(ctx, "Payout failed",
		logger.RiderID(payout.RiderID),
		logger.String("payout_id", payout.ID.String()),
		logger.String("reason", res.FailureReason))
	return payout, nil
}

// PayoutHistory returns a page of the rider's payouts, newest first
func (uc *PayoutUC) PayoutHistory(ctx context.Context, riderID uuid.UUID, limit, offset int) (*models.PayoutHistory, error) {
	limit, offset = utils.ClampPage(limit, offset, defaultPageSize, maxPageSize)

	list, total, err := uc.payoutRepo.ListPayouts(ctx, riderID, limit, offset)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load payout history")
	}
	return &models.PayoutHistory{
		Payouts:    list,
		Pagination: models.NewPagination(total, limit, offset),
	}, nil
}

func passThrough(err error, message string) error {
	if apperror.KindOf(err) != apperror.KindInternal {
		return err
	}
	return apperror.Internal(err, message)
}
