package issues

import "github.com/piresc/bikeparts/internal/pkg/apperror"

var (
	ErrIssueNotFound = apperror.NotFound("Issue not found")
	ErrTaskNotFound  = apperror.NotFound("Order not found")
	ErrIssueClosed   = apperror.Conflict("Issue is closed")
)
