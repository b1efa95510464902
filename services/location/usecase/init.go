package usecase

import (
	"time"

	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/location"
)

// LocationUC implements the location use case interface
type LocationUC struct {
	cfg          *models.Config
	locationRepo location.LocationRepo
	locationGW   location.LocationGW
	now          func() time.Time
}

// NewLocationUC creates a new location use case
func NewLocationUC(
	cfg *models.Config,
	locationRepo location.LocationRepo,
	locationGW location.LocationGW,
) *LocationUC {
	return &LocationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		locationGW:   locationGW,
		now:          models.Now,
	}
}
