package riders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/bikeparts/services/riders RiderRepo

// RiderRepo defines rider persistence in PostgreSQL and presence in Redis
type RiderRepo interface {
	GetRider(ctx context.Context, riderID uuid.UUID) (*models.Rider, error)
	UpdateProfile(ctx context.Context, riderID uuid.UUID, update models.ProfileUpdate, at time.Time) (*models.Rider, error)
	GetStats(ctx context.Context, riderID uuid.UUID, dayStart time.Time) (*models.RiderStats, error)

	SetPresence(ctx context.Context, presence models.RiderPresence, ttl time.Duration) error
	ClearPresence(ctx context.Context, riderID uuid.UUID) error
}
