package payouts

import "github.com/piresc/bikeparts/internal/pkg/apperror"

var (
	ErrInsufficientBalance = apperror.Validation("Insufficient wallet balance")
	ErrPayoutNotFound      = apperror.NotFound("Payout not found")
	ErrPayoutClosed        = apperror.Conflict("Payout is already completed or failed")
	ErrRiderNotFound       = apperror.NotFound("Rider not found")
)
