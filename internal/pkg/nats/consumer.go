package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/bikeparts/internal/pkg/logger"
)

// JetStreamMessageHandler processes one JetStream message
type JetStreamMessageHandler func(msg jetstream.Msg) error

// Consumer pushes messages of a durable JetStream consumer to a handler
type Consumer struct {
	consumer   jetstream.Consumer
	consumeCtx jetstream.ConsumeContext
}

// NewJetStreamConsumer creates (or updates) the consumer and starts
// delivering messages to handler. Handler errors NAK the message.
func NewJetStreamConsumer(ctx context.Context, client *Client, config ConsumerConfig, handler JetStreamMessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	consumer, err := client.js.CreateOrUpdateConsumer(ctx, config.StreamName, config.toJetStream())
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s: %w", config.ConsumerName, err)
	}

	c := &Consumer{consumer: consumer}
	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.Err(err))

			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}
	c.consumeCtx = consumeCtx

	logger.Info("JetStream consumer started",
		logger.String("stream", config.StreamName),
		logger.String("consumer", config.ConsumerName))

	return c, nil
}

// Stop stops message delivery
func (c *Consumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
		c.consumeCtx = nil
	}
}

// IsActive returns true while messages are being consumed
func (c *Consumer) IsActive() bool {
	return c.consumeCtx != nil
}
