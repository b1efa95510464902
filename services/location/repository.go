package location

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/bikeparts/services/location LocationRepo

// LocationRepo defines location persistence. PostgreSQL holds the write-once
// log and the rider's last position; Redis holds the live geo index.
type LocationRepo interface {
	RecordLocation(ctx context.Context, entry *models.LocationLog) error
	ListHistory(ctx context.Context, riderID uuid.UUID, limit int) ([]models.LocationLog, error)
	ListLiveLocations(ctx context.Context) ([]models.RiderLocation, error)

	CacheLiveLocation(ctx context.Context, entry *models.LocationLog, ttl time.Duration) error
	NearbyRiders(ctx context.Context, query models.NearbyQuery, since time.Time) ([]models.RiderLocation, error)
}
