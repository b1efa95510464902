package constants

// Redis key formats
const (
	// Location
	KeyRiderLocation = "rider:location:%s" // Format: rider:location:{rider_id}
	KeyRidersLiveGeo = "riders:live"       // Geo set of the last known position of every rider

	// Presence
	KeyRiderOnline = "rider:online:%s" // Format: rider:online:{rider_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{identifier}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldSpeed     = "speed"
	FieldHeading   = "heading"
)
