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

// RiderGW announces presence over NATS and to connected admins
type RiderGW struct {
	publisher   Publisher
	broadcaster Broadcaster
}

// NewRiderGW creates a new rider gateway
func NewRiderGW(publisher Publisher, broadcaster Broadcaster) *RiderGW {
	return &RiderGW{
		publisher:   publisher,
		broadcaster: broadcaster,
	}
}

// PublishStatus publishes the change on rider.status
func (g *RiderGW) PublishStatus(ctx context.Context, event models.RiderStatusEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal rider status: %w", err)
	}
	return nrpkg.WithMessageSegment(ctx, constants.SubjectRiderStatus, func() error {
		return g.publisher.Publish(constants.SubjectRiderStatus, data)
	})
}

// BroadcastStatus sends the change to the admin room
func (g *RiderGW) BroadcastStatus(_ context.Context, event models.RiderStatusEvent) error {
	return g.broadcaster.BroadcastToRoom(constants.RoomAdmin, constants.EventRiderStatusUpdate, event)
}
