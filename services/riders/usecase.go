package riders

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/bikeparts/services/riders RiderUC

// RiderUC covers the rider's own profile, statistics and presence
type RiderUC interface {
	GetProfile(ctx context.Context, riderID uuid.UUID) (*models.Rider, error)
	UpdateProfile(ctx context.Context, riderID uuid.UUID, update models.ProfileUpdate) (*models.Rider, error)
	Stats(ctx context.Context, riderID uuid.UUID) (*models.RiderStats, error)
	SetOnline(ctx context.Context, riderID uuid.UUID, online bool) (*models.RiderPresence, error)
}
