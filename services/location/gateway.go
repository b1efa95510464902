package location

import (
	"context"

	"github.com/piresc/bikeparts/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/bikeparts/services/location LocationGW

// LocationGW fans a reported position out to subscribers
type LocationGW interface {
	PublishLocation(ctx context.Context, event models.LocationEvent) error
	BroadcastLocation(ctx context.Context, event models.LocationEvent) error
}
