package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

// Event is a domain event to be relayed once the surrounding transaction commits
type Event struct {
	Subject string
	Key     string
	Payload interface{}
}

// Emit records event inside the caller's transaction
func Emit(ctx context.Context, tx sqlx.ExecerContext, event Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Subject, err)
	}

	query := `
		INSERT INTO outbox_events (id, subject, aggregate_id, payload, attempts, created_at)
		VALUES ($1, $2, $3, $4, 0, $5)
	`
	if _, err := tx.ExecContext(ctx, query, uuid.New(), event.Subject, event.Key, payload, models.Now()); err != nil {
		return fmt.Errorf("failed to record %s event: %w", event.Subject, err)
	}
	return nil
}
