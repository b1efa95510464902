package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

// SetPresence marks the rider online until ttl elapses
func (r *RiderRepo) SetPresence(ctx context.Context, presence models.RiderPresence, ttl time.Duration) error {
	data, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("failed to marshal presence: %w", err)
	}
	key := fmt.Sprintf(constants.KeyRiderOnline, presence.RiderID)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store presence: %w", err)
	}
	return nil
}

// ClearPresence marks the rider offline
func (r *RiderRepo) ClearPresence(ctx context.Context, riderID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyRiderOnline, riderID.String())
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear presence: %w", err)
	}
	return nil
}
