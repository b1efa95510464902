package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleType is the kind of vehicle a rider delivers with
type VehicleType string

const (
	VehicleBike    VehicleType = "bike"
	VehicleScooter VehicleType = "scooter"
	VehicleCar     VehicleType = "car"
	VehicleVan     VehicleType = "van"
)

// Valid reports whether v is a supported vehicle type
func (v VehicleType) Valid() bool {
	switch v {
	case VehicleBike, VehicleScooter, VehicleCar, VehicleVan:
		return true
	}
	return false
}

// Rider represents a delivery rider. The wallet balance is the aggregate of
// the rider_earnings ledger minus payouts held or completed.
type Rider struct {
	ID                uuid.UUID   `json:"id" db:"id"`
	RiderCode         string      `json:"riderId" db:"rider_code"`
	Name              string      `json:"name" db:"name"`
	Phone             string      `json:"phone" db:"phone"`
	VehicleType       VehicleType `json:"vehicleType" db:"vehicle_type"`
	IsActive          bool        `json:"isActive" db:"is_active"`
	WalletBalance     int64       `json:"walletBalance" db:"wallet_balance"`
	Rating            float64     `json:"rating" db:"rating"`
	TotalDeliveries   int         `json:"totalDeliveries" db:"total_deliveries"`
	CurrentTaskID     *uuid.UUID  `json:"currentOrder,omitempty" db:"current_task_id"`
	CurrentLat        *float64    `json:"-" db:"current_lat"`
	CurrentLng        *float64    `json:"-" db:"current_lng"`
	LocationUpdatedAt *time.Time  `json:"-" db:"location_updated_at"`
	FCMToken          string      `json:"-" db:"fcm_token"`
	CreatedAt         time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time   `json:"updatedAt" db:"updated_at"`
}

// CurrentLocation returns the last reported position, if any
func (r *Rider) CurrentLocation() *GeoPoint {
	if r.CurrentLat == nil || r.CurrentLng == nil {
		return nil
	}
	p := &GeoPoint{Lat: *r.CurrentLat, Lng: *r.CurrentLng}
	if r.LocationUpdatedAt != nil {
		p.LastUpdated = *r.LocationUpdatedAt
	}
	return p
}

// ProfileUpdate holds the rider-editable profile fields
type ProfileUpdate struct {
	Name        *string      `json:"name,omitempty"`
	VehicleType *VehicleType `json:"vehicleType,omitempty"`
	FCMToken    *string      `json:"fcmToken,omitempty"`
}

// StatusUpdate toggles rider presence
type StatusUpdate struct {
	Online bool `json:"online"`
}

// RiderStats aggregates delivery and earnings figures for a rider
type RiderStats struct {
	TotalOrders     int     `json:"totalOrders" db:"total_orders"`
	CompletedOrders int     `json:"completedOrders" db:"completed_orders"`
	TodayDeliveries int     `json:"todayDeliveries" db:"today_deliveries"`
	Rating          float64 `json:"rating" db:"rating"`
	TotalDeliveries int     `json:"totalDeliveries" db:"total_deliveries"`
	TotalEarnings   int64   `json:"totalEarnings" db:"total_earnings"`
	WalletBalance   int64   `json:"walletBalance" db:"wallet_balance"`
}

// RiderPresence is the online state kept in Redis
type RiderPresence struct {
	RiderID  string    `json:"riderId"`
	Online   bool      `json:"online"`
	LastSeen time.Time `json:"lastSeen"`
}
