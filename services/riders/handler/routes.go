package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/services/riders"
	httpHandler "github.com/piresc/bikeparts/services/riders/handler/http"
)

// Handler combines all handlers for the riders service
type Handler struct {
	riderHTTP *httpHandler.RiderHandler
}

// NewHandler creates a new combined handler
func NewHandler(riderUC riders.RiderUC) *Handler {
	return &Handler{riderHTTP: httpHandler.NewRiderHandler(riderUC)}
}

// RegisterRoutes registers profile routes on the rider group
func (h *Handler) RegisterRoutes(rider *echo.Group) {
	rider.GET("/profile", h.riderHTTP.GetProfile)
	rider.PUT("/profile", h.riderHTTP.UpdateProfile)
	rider.GET("/stats", h.riderHTTP.Stats)
	rider.PUT("/status", h.riderHTTP.SetStatus)
}
