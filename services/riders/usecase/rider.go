package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/riders"
)

const maxNameLength = 100

// GetProfile returns the caller's profile
func (uc *RiderUC) GetProfile(ctx context.Context, riderID uuid.UUID) (*models.Rider, error) {
	rider, err := uc.riderRepo.GetRider(ctx, riderID)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load profile")
	}
	if rider == nil {
		return nil, riders.ErrRiderNotFound
	}
	return rider, nil
}

// UpdateProfile changes the name, vehicle type or push token
func (uc *RiderUC) UpdateProfile(ctx context.Context, riderID uuid.UUID, update models.ProfileUpdate) (*models.Rider, error) {
	if update.Name == nil && update.VehicleType == nil && update.FCMToken == nil {
		return nil, riders.ErrNoChanges
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" || utf8.RuneCountInString(name) > maxNameLength {
			return nil, apperror.Validation("Name must be between 1 and 100 characters")
		}
		update.Name = &name
	}
	if update.VehicleType != nil && !update.VehicleType.Valid() {
		return nil, apperror.Validation("Invalid vehicle type")
	}

	rider, err := uc.riderRepo.UpdateProfile(ctx, riderID, update, uc.now())
	if err != nil {
		return nil, apperror.Internal(err, "Failed to update profile")
	}
	if rider == nil {
		return nil, riders.ErrRiderNotFound
	}
	return rider, nil
}

// Stats summarises the caller's deliveries and earnings
func (uc *RiderUC) Stats(ctx context.Context, riderID uuid.UUID) (*models.RiderStats, error) {
	dayStart := models.StartOfDay(uc.now().In(uc.loc))

	stats, err := uc.riderRepo.GetStats(ctx, riderID, dayStart)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load stats")
	}
	if stats == nil {
		return nil, riders.ErrRiderNotFound
	}
	return stats, nil
}

// SetOnline records presence and tells the back office. Presence expires on
// its own when the app stops refreshing it.
func (uc *RiderUC) SetOnline(ctx context.Context, riderID uuid.UUID, online bool) (*models.RiderPresence, error) {
	rider, err := uc.riderRepo.GetRider(ctx, riderID)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to update status")
	}
	if rider == nil || !rider.IsActive {
		return nil, riders.ErrRiderNotFound
	}

	presence := models.RiderPresence{
		RiderID:  riderID.String(),
		Online:   online,
		LastSeen: uc.now(),
	}
	if online {
		err = uc.riderRepo.SetPresence(ctx, presence, uc.cfg.Delivery.PresenceTTL)
	} else {
		err = uc.riderRepo.ClearPresence(ctx, riderID)
	}
	if err != nil {
		return nil, apperror.Internal(err, "Failed to update status")
	}

	event := models.RiderStatusEvent{RiderID: presence.RiderID, Online: online, Timestamp: presence.LastSeen}
	if err := uc.riderGW.PublishStatus(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish rider status", logger.RiderID(riderID), logger.Err(err))
	}
	if err := uc.riderGW.BroadcastStatus(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to broadcast rider status", logger.RiderID(riderID), logger.Err(err))
	}

	logger.InfoCtx(ctx, "Rider status changed", logger.RiderID(riderID), logger.Bool("online", online))
	return &presence, nil
}
