package location

import "github.com/piresc/bikeparts/internal/pkg/apperror"

var (
	ErrRiderNotFound   = apperror.NotFound("Rider not found")
	ErrInvalidLocation = apperror.Validation("Invalid coordinates")
)
