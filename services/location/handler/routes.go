package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/services/location"
	httpHandler "github.com/piresc/bikeparts/services/location/handler/http"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC) *Handler {
	return &Handler{locationHTTP: httpHandler.NewLocationHandler(locationUC)}
}

// RegisterRoutes registers rider reporting routes and admin tracking routes
func (h *Handler) RegisterRoutes(rider *echo.Group, admin *echo.Group) {
	rider.POST("/location", h.locationHTTP.UpdateLocation)
	rider.GET("/location/history", h.locationHTTP.History)

	admin.GET("/riders/locations", h.locationHTTP.LiveLocations)
	admin.GET("/riders/nearby", h.locationHTTP.NearbyRiders)
}
