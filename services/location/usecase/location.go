package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/models"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
	"github.com/piresc/bikeparts/internal/utils"
	"github.com/piresc/bikeparts/services/location"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500

	defaultRadiusKm = 5.0
	maxRadiusKm     = 50.0
)

// UpdateLocation records a GPS sample. The database write is authoritative;
// the live index, NATS publish and admin broadcast only log their failures.
func (uc *LocationUC) UpdateLocation(ctx context.Context, riderID uuid.UUID, update models.LocationUpdate) (*models.LocationLog, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	entry := &models.LocationLog{
		ID:         uuid.New(),
		RiderID:    riderID,
		Lat:        update.Lat,
		Lng:        update.Lng,
		Speed:      update.Speed,
		Heading:    update.Heading,
		Accuracy:   update.Accuracy,
		Geohash:    utils.EncodeGeohash(update.Lat, update.Lng, utils.LocationGeohashPrecision),
		RecordedAt: uc.now(),
	}

	err := nrpkg.WithSegment(ctx, "LocationRepo.RecordLocation", func() error {
		return uc.locationRepo.RecordLocation(ctx, entry)
	})
	if err != nil {
		if apperror.KindOf(err) != apperror.KindInternal {
			return nil, err
		}
		return nil, apperror.Internal(err, "Failed to update location")
	}

	if err := uc.locationRepo.CacheLiveLocation(ctx, entry, uc.cfg.Delivery.LocationTTL); err != nil {
		logger.WarnCtx(ctx, "Failed to cache live location", logger.RiderID(riderID), logger.Err(err))
	}

	event := models.LocationEvent{
		RiderID:    riderID.String(),
		Lat:        entry.Lat,
		Lng:        entry.Lng,
		Speed:      entry.Speed,
		Heading:    entry.Heading,
		RecordedAt: entry.RecordedAt,
	}
	if err := uc.locationGW.PublishLocation(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish location", logger.RiderID(riderID), logger.Err(err))
	}
	if err := uc.locationGW.BroadcastLocation(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to broadcast location", logger.RiderID(riderID), logger.Err(err))
	}

	return entry, nil
}

func validateUpdate(u models.LocationUpdate) error {
	if !utils.ValidCoordinate(u.Lat, u.Lng) {
		return location.ErrInvalidLocation
	}
	if u.Speed != nil && *u.Speed < 0 {
		return apperror.Validation("Speed must not be negative")
	}
	if u.Heading != nil && (*u.Heading < 0 || *u.Heading > 360) {
		return apperror.Validation("Heading must be between 0 and 360")
	}
	if u.Accuracy != nil && *u.Accuracy < 0 {
		return apperror.Validation("Accuracy must not be negative")
	}
	return nil
}

// History returns the rider's latest samples
func (uc *LocationUC) History(ctx context.Context, riderID uuid.UUID, limit int) ([]models.LocationLog, error) {
	limit, _ = utils.ClampPage(limit, 0, defaultHistoryLimit, maxHistoryLimit)

	logs, err := uc.locationRepo.ListHistory(ctx, riderID, limit)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load location history")
	}
	return logs, nil
}

// LiveLocations returns the last known position of every active rider
func (uc *LocationUC) LiveLocations(ctx context.Context) ([]models.RiderLocation, error) {
	riders, err := uc.locationRepo.ListLiveLocations(ctx)
	if err != nil {
		return nil, apperror.Internal(err, "Failed to load live locations")
	}
	return riders, nil
}

// NearbyRiders returns active riders around a point, nearest first. Riders
// whose last report is older than the live location TTL are skipped.
func (uc *LocationUC) NearbyRiders(ctx context.Context, q models.NearbyQuery) ([]models.RiderLocation, error) {
	if !utils.ValidCoordinate(q.Lat, q.Lng) {
		return nil, location.ErrInvalidLocation
	}
	if q.RadiusKm < 0 {
		return nil, apperror.Validation("Radius must not be negative")
	}
	if q.RadiusKm == 0 {
		q.RadiusKm = defaultRadiusKm
	}
	if q.RadiusKm > maxRadiusKm {
		q.RadiusKm = maxRadiusKm
	}

	since := uc.now().Add(-uc.cfg.Delivery.LocationTTL)
	riders, err := nrpkg.WithSegmentAndReturn(ctx, "LocationRepo.NearbyRiders", func() ([]models.RiderLocation, error) {
		return uc.locationRepo.NearbyRiders(ctx, q, since)
	})
	if err != nil {
		return nil, apperror.Internal(err, "Failed to search nearby riders")
	}
	return riders, nil
}
