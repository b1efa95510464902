package models

import (
	"time"

	"github.com/google/uuid"
)

// GeoPoint is a coordinate with the time it was reported
type GeoPoint struct {
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	LastUpdated time.Time `json:"lastUpdated,omitempty"`
}

// LocationUpdate is a GPS sample sent by the rider app
type LocationUpdate struct {
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Speed    *float64 `json:"speed,omitempty"`
	Heading  *float64 `json:"heading,omitempty"`
	Accuracy *float64 `json:"accuracy,omitempty"`
}

// LocationLog is a stored, write-once GPS sample
type LocationLog struct {
	ID         uuid.UUID `json:"id" db:"id"`
	RiderID    uuid.UUID `json:"riderId" db:"rider_id"`
	Lat        float64   `json:"lat" db:"lat"`
	Lng        float64   `json:"lng" db:"lng"`
	Speed      *float64  `json:"speed,omitempty" db:"speed"`
	Heading    *float64  `json:"heading,omitempty" db:"heading"`
	Accuracy   *float64  `json:"accuracy,omitempty" db:"accuracy"`
	Geohash    string    `json:"geohash" db:"geohash"`
	RecordedAt time.Time `json:"timestamp" db:"recorded_at"`
}

// RiderLocation is a live position shown to admins
type RiderLocation struct {
	RiderID     uuid.UUID   `json:"riderId" db:"id"`
	RiderCode   string      `json:"riderCode" db:"rider_code"`
	Name        string      `json:"name" db:"name"`
	VehicleType VehicleType `json:"vehicleType" db:"vehicle_type"`
	Lat         float64     `json:"lat" db:"current_lat"`
	Lng         float64     `json:"lng" db:"current_lng"`
	LastUpdated *time.Time  `json:"lastUpdated" db:"location_updated_at"`
	DistanceKm  float64     `json:"distanceKm,omitempty" db:"-"`
}

// NearbyQuery searches live positions around a point
type NearbyQuery struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
}

// LocationEvent is published when a rider reports a position
type LocationEvent struct {
	RiderID    string    `json:"riderId"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Speed      *float64  `json:"speed,omitempty"`
	Heading    *float64  `json:"heading,omitempty"`
	RecordedAt time.Time `json:"timestamp"`
}
