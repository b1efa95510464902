package riders

import (
	"context"

	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/bikeparts/services/riders RiderGW

// RiderGW announces presence changes
type RiderGW interface {
	PublishStatus(ctx context.Context, event models.RiderStatusEvent) error
	BroadcastStatus(ctx context.Context, event models.RiderStatusEvent) error
}
