package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
)

// Publisher sends a core NATS message
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Broadcaster pushes an event to every session in a websocket room
type Broadcaster interface {
	BroadcastToRoom(room, event string, data interface{}) error
}

// LocationGW publishes positions to NATS and the admin websocket room
type LocationGW struct {
	publisher   Publisher
	broadcaster Broadcaster
}

// NewLocationGW creates a new location gateway
func NewLocationGW(publisher Publisher, broadcaster Broadcaster) *LocationGW {
	return &LocationGW{
		publisher:   publisher,
		broadcaster: broadcaster,
	}
}

// PublishLocation publishes the sample on rider.location
func (g *LocationGW) PublishLocation(ctx context.Context, event models.LocationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal location event: %w", err)
	}
	return nrpkg.WithMessageSegment(ctx, constants.SubjectRiderLocation, func() error {
		return g.publisher.Publish(constants.SubjectRiderLocation, data)
	})
}

// BroadcastLocation sends the sample to connected admins
func (g *LocationGW) BroadcastLocation(_ context.Context, event models.LocationEvent) error {
	return g.broadcaster.BroadcastToRoom(constants.RoomAdmin, constants.EventRiderLocationUpdate, event)
}
