package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/models"
	natspkg "github.com/piresc/bikeparts/internal/pkg/nats"
)

// Broadcaster pushes an event to every session in a websocket room
type Broadcaster interface {
	BroadcastToRoom(room, event string, data interface{}) error
}

// EventHandler forwards task and payout events to connected sockets. Each
// instance reads through its own consumer so it reaches its own sessions.
type EventHandler struct {
	broadcaster Broadcaster
	consumer    *natspkg.Consumer
}

// NewEventHandler creates a new event forwarder
func NewEventHandler(broadcaster Broadcaster) *EventHandler {
	return &EventHandler{broadcaster: broadcaster}
}

// Start attaches the instance's realtime consumer to the rider events stream
func (h *EventHandler) Start(ctx context.Context, client *natspkg.Client, streamName, instance string) error {
	consumer, err := natspkg.NewJetStreamConsumer(ctx, client, natspkg.RealtimeConsumer(streamName, instance),
		func(msg jetstream.Msg) error {
			return h.HandleMessage(msg.Subject(), msg.Data())
		})
	if err != nil {
		return fmt.Errorf("failed to start realtime consumer: %w", err)
	}
	h.consumer = consumer
	return nil
}

// Stop stops event delivery
func (h *EventHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
		logger.Info("Realtime consumer stopped")
	}
}

// HandleMessage routes one event to the admin room and the owning rider's room
func (h *EventHandler) HandleMessage(subject string, data []byte) error {
	switch {
	case strings.HasPrefix(subject, "task."):
		var event models.TaskEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("failed to unmarshal task event: %w", err)
		}
		return h.fanOut(event.RiderID, constants.EventTaskUpdate, event)

	case strings.HasPrefix(subject, "payout."):
		var event models.PayoutEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("failed to unmarshal payout event: %w", err)
		}
		return h.fanOut(event.RiderID, constants.EventPayoutUpdate, event)
	}
	return fmt.Errorf("unexpected subject %s", subject)
}

func (h *EventHandler) fanOut(riderID, event string, data interface{}) error {
	if err := h.broadcaster.BroadcastToRoom(constants.RoomAdmin, event, data); err != nil {
		return err
	}
	if riderID == "" {
		return nil
	}
	return h.broadcaster.BroadcastToRoom(fmt.Sprintf(constants.RoomRiderFormat, riderID), event, data)
}
