package deliveries

import (
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

// Errors shared by the usecase and repository layers
var (
	ErrOrderNotFound      = apperror.NotFound("Order not found")
	ErrOrderNotAssignable = apperror.Conflict("Order is already assigned or not ready for dispatch")
	ErrRiderUnavailable   = apperror.Validation("Rider not found or inactive")
	ErrRiderBusy          = apperror.Conflict("Rider already has an active order")
	ErrTaskNotFound       = apperror.NotFound("Order not found")
	ErrNotDelivered       = apperror.NotFound("Order not found or not delivered")
	ErrInvalidPickupOTP   = apperror.Validation("Invalid pickup OTP")
	ErrInvalidDeliveryOTP = apperror.Validation("Invalid delivery OTP")
	ErrMalformedOTP       = apperror.Validation("OTP must be 4 to 6 digits")
)

// TransitionConflict reports a move outside the task state graph
func TransitionConflict(from, to models.TaskStatus) error {
	return apperror.Conflictf("cannot move task from %s to %s", from, to)
}
