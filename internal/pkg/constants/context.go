package constants

// CtxRiderID is the echo context key holding the authenticated rider id
const CtxRiderID = "rider_id"

// HeaderAPIKey carries the back-office API key
const HeaderAPIKey = "X-API-Key"
