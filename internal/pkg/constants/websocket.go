package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Rider to server
	EventLocationUpdate = "location-update"
	EventStatusUpdate   = "status-update"
	EventOrderUpdate    = "order-update"

	// Server to admins
	EventRiderLocationUpdate = "rider-location-update"
	EventRiderStatusUpdate   = "rider-status-update"
	EventRiderOrderUpdate    = "rider-order-update"
	EventPayoutUpdate        = "payout-update"

	// Server to rider
	EventTaskUpdate = "task-update"
)

// WebSocket rooms
const (
	RoomAdmin       = "admin-room"
	RoomRiderFormat = "rider_%s" // Format: rider_{rider_id}
)

// WebSocket error codes
const (
	ErrorInvalidFormat   = "invalid_format"
	ErrorInternalError   = "internal_error"
	ErrorInvalidLocation = "invalid_location"
	ErrorStatusUpdate    = "status_update_failed"
)

// ErrorSeverity decides how much of an error is shown to a socket client
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
	ErrorSeveritySecurity
)
