package riders

import "github.com/piresc/bikeparts/internal/pkg/apperror"

var (
	ErrRiderNotFound = apperror.NotFound("Rider not found")
	ErrNoChanges     = apperror.Validation("No profile fields to update")
)
