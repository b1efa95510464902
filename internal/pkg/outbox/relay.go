package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/database"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

// Publisher delivers a relayed event. msgID lets the broker drop duplicates.
type Publisher interface {
	PublishMsg(ctx context.Context, subject, msgID string, data []byte) error
}

// Relay moves committed outbox rows to the broker. Delivery is at-least-once.
type Relay struct {
	db        *sqlx.DB
	publisher Publisher
	cfg       models.OutboxConfig
	logger    *logger.ZapLogger
}

// NewRelay creates a relay polling db every cfg.PollInterval
func NewRelay(db *sqlx.DB, publisher Publisher, cfg models.OutboxConfig, zapLogger *logger.ZapLogger) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 10
	}
	return &Relay{db: db, publisher: publisher, cfg: cfg, logger: zapLogger}
}

// Run polls until ctx is cancelled
func (r *Relay) Run(ctx context.Context) error {
	r.logger.Info("Outbox relay started",
		logger.Duration("poll_interval", r.cfg.PollInterval),
		logger.Int("batch_size", r.cfg.BatchSize))

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		for {
			published, err := r.ProcessBatch(ctx)
			if err != nil {
				r.logger.Error("Outbox relay batch failed", logger.Err(err))
				break
			}
			// A full batch means more rows are probably waiting
			if published < r.cfg.BatchSize {
				break
			}
		}

		select {
		case <-ctx.Done():
			r.logger.Info("Outbox relay stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// ProcessBatch publishes one batch of pending events and returns how many
// rows it handled. Rows are locked with SKIP LOCKED so several relays can run.
func (r *Relay) ProcessBatch(ctx context.Context) (int, error) {
	handled := 0
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var events []models.OutboxEvent
		query := `
			SELECT id, subject, aggregate_id, payload, attempts, last_error, created_at, published_at
			FROM outbox_events
			WHERE published_at IS NULL AND attempts < $1
			ORDER BY created_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		`
		if err := tx.SelectContext(ctx, &events, query, r.cfg.MaxAttempts, r.cfg.BatchSize); err != nil {
			return fmt.Errorf("failed to load outbox events: %w", err)
		}

		for _, event := range events {
			if pubErr := r.publisher.PublishMsg(ctx, event.Subject, event.ID.String(), event.Payload); pubErr != nil {
				r.logger.Warn("Failed to relay outbox event",
					logger.String("event_id", event.ID.String()),
					logger.String("subject", event.Subject),
					logger.Int("attempts", event.Attempts+1),
					logger.Err(pubErr))

				if _, err := tx.ExecContext(ctx,
					`UPDATE outbox_events SET attempts = attempts + 1, last_error = $2 WHERE id = $1`,
					event.ID, pubErr.Error()); err != nil {
					return fmt.Errorf("failed to record outbox failure: %w", err)
				}
				continue
			}

			if _, err := tx.ExecContext(ctx,
				`UPDATE outbox_events SET attempts = attempts + 1, published_at = $2, last_error = NULL WHERE id = $1`,
				event.ID, models.Now()); err != nil {
				return fmt.Errorf("failed to mark outbox event published: %w", err)
			}
			handled++
		}
		return nil
	})
	return handled, err
}
