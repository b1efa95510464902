package usecase

import (
	"time"

	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/riders"
)

// RiderUC implements the rider use case interface
type RiderUC struct {
	cfg       *models.Config
	riderRepo riders.RiderRepo
	riderGW   riders.RiderGW
	loc       *time.Location
	now       func() time.Time
}

// NewRiderUC creates a new rider use case
func NewRiderUC(cfg *models.Config, riderRepo riders.RiderRepo, riderGW riders.RiderGW) *RiderUC {
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil || cfg.App.Timezone == "" {
		loc = time.UTC
	}
	return &RiderUC{
		cfg:       cfg,
		riderRepo: riderRepo,
		riderGW:   riderGW,
		loc:       loc,
		now:       models.Now,
	}
}
