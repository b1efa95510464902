package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/internal/utils"
)

// CacheLiveLocation indexes the rider in the live geo set and refreshes the
// per-rider position hash
func (r *LocationRepo) CacheLiveLocation(ctx context.Context, entry *models.LocationLog, ttl time.Duration) error {
	member := entry.RiderID.String()
	if err := r.redisClient.GeoAdd(ctx, constants.KeyRidersLiveGeo, entry.Lng, entry.Lat, member); err != nil {
		return fmt.Errorf("failed to index live location: %w", err)
	}

	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(entry.Lat, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(entry.Lng, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(entry.RecordedAt.Unix(), 10),
	}
	if entry.Speed != nil {
		fields[constants.FieldSpeed] = strconv.FormatFloat(*entry.Speed, 'f', -1, 64)
	}
	if entry.Heading != nil {
		fields[constants.FieldHeading] = strconv.FormatFloat(*entry.Heading, 'f', -1, 64)
	}

	key := fmt.Sprintf(constants.KeyRiderLocation, member)
	if err := r.redisClient.HSetWithTTL(ctx, key, fields, ttl); err != nil {
		return fmt.Errorf("failed to store live location: %w", err)
	}
	return nil
}

// NearbyRiders searches the live geo set and returns active riders whose
// position was reported at or after since, nearest first
func (r *LocationRepo) NearbyRiders(ctx context.Context, q models.NearbyQuery, since time.Time) ([]models.RiderLocation, error) {
	hits, err := r.redisClient.GeoRadius(ctx, constants.KeyRidersLiveGeo, q.Lng, q.Lat, q.RadiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to search live locations: %w", err)
	}
	if len(hits) == 0 {
		return []models.RiderLocation{}, nil
	}

	ids := make(pq.StringArray, 0, len(hits))
	for _, hit := range hits {
		if _, err := uuid.Parse(hit.Name); err == nil {
			ids = append(ids, hit.Name)
		}
	}

	nearby := []models.RiderLocation{}
	query := `SELECT ` + riderLocationColumns + ` FROM riders
		WHERE id::text = ANY($1) AND is_active AND location_updated_at >= $2`
	if err := r.db.SelectContext(ctx, &nearby, query, ids, since); err != nil {
		return nil, fmt.Errorf("failed to load nearby riders: %w", err)
	}

	// distances come from the stored position, the geo set may lag behind it
	for i := range nearby {
		nearby[i].DistanceKm = utils.CalculateDistance(q.Lat, q.Lng, nearby[i].Lat, nearby[i].Lng)
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby, nil
}
