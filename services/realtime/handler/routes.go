package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/models"
	pkgws "github.com/piresc/bikeparts/internal/pkg/websocket"
	"github.com/piresc/bikeparts/services/location"
	wsHandler "github.com/piresc/bikeparts/services/realtime/handler/websocket"
	"github.com/piresc/bikeparts/services/riders"
)

// Handler exposes the socket endpoints
type Handler struct {
	socket *wsHandler.SocketHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	cfg *models.Config,
	manager *pkgws.Manager,
	locationUC location.LocationUC,
	riderUC riders.RiderUC,
) *Handler {
	return &Handler{socket: wsHandler.NewSocketHandler(cfg, manager, locationUC, riderUC)}
}

// RegisterRoutes registers the rider and admin socket endpoints. Both
// authenticate themselves since browsers cannot set headers on upgrade.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/rider", h.socket.RiderSocket)
	e.GET("/ws/admin", h.socket.AdminSocket)
}
