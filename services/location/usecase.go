package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/bikeparts/services/location LocationUC

// LocationUC defines the interface for rider location tracking
type LocationUC interface {
	UpdateLocation(ctx context.Context, riderID uuid.UUID, update models.LocationUpdate) (*models.LocationLog, error)
	History(ctx context.Context, riderID uuid.UUID, limit int) ([]models.LocationLog, error)

	// back office
	LiveLocations(ctx context.Context) ([]models.RiderLocation, error)
	NearbyRiders(ctx context.Context, query models.NearbyQuery) ([]models.RiderLocation, error)
}
