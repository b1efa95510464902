package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	jwtpkg "github.com/piresc/bikeparts/internal/pkg/jwt"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/middleware"
	"github.com/piresc/bikeparts/internal/pkg/models"
	pkgws "github.com/piresc/bikeparts/internal/pkg/websocket"
	"github.com/piresc/bikeparts/internal/utils"
	"github.com/piresc/bikeparts/services/location"
	"github.com/piresc/bikeparts/services/riders"
)

const messageTimeout = 10 * time.Second

// SocketHandler authenticates socket clients and routes rider events
type SocketHandler struct {
	cfg        *models.Config
	manager    *pkgws.Manager
	locationUC location.LocationUC
	riderUC    riders.RiderUC
	now        func() time.Time
}

// NewSocketHandler creates a new socket handler
func NewSocketHandler(
	cfg *models.Config,
	manager *pkgws.Manager,
	locationUC location.LocationUC,
	riderUC riders.RiderUC,
) *SocketHandler {
	return &SocketHandler{
		cfg:        cfg,
		manager:    manager,
		locationUC: locationUC,
		riderUC:    riderUC,
		now:        models.Now,
	}
}

// RiderSocket accepts a rider connection authenticated with a bearer token,
// either in the Authorization header or the token query parameter
func (h *SocketHandler) RiderSocket(c echo.Context) error {
	token, ok := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		token = c.QueryParam("token")
	}
	if token == "" {
		return utils.UnauthorizedResponse(c, "Authentication token is required")
	}

	claims, err := jwtpkg.ValidateToken(token, h.cfg.JWT.Secret)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid token")
	}
	riderID, err := claims.RiderUUID()
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid token: riderId is not a valid UUID")
	}

	room := fmt.Sprintf(constants.RoomRiderFormat, riderID.String())
	return h.manager.Serve(c, riderID.String(), []string{room}, func(s *pkgws.Session, msg models.WSMessage) {
		h.handleRiderMessage(c.Request().Context(), riderID, s, msg)
	})
}

// AdminSocket accepts a back-office connection authenticated with the API
// key, either in the X-API-Key header or the apiKey query parameter
func (h *SocketHandler) AdminSocket(c echo.Context) error {
	key := c.Request().Header.Get(constants.HeaderAPIKey)
	if key == "" {
		key = c.QueryParam("apiKey")
	}
	if !middleware.ValidAPIKey(key, h.cfg.APIKeys.BackOffice) {
		return utils.UnauthorizedResponse(c, "Invalid API key")
	}

	sessionKey := "admin:" + uuid.NewString()
	return h.manager.Serve(c, sessionKey, []string{constants.RoomAdmin}, func(s *pkgws.Session, msg models.WSMessage) {
		h.manager.SendError(s, fmt.Errorf("unsupported event %q", msg.Event), constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
	})
}

func (h *SocketHandler) handleRiderMessage(parent context.Context, riderID uuid.UUID, s *pkgws.Session, msg models.WSMessage) {
	ctx, cancel := context.WithTimeout(parent, messageTimeout)
	defer cancel()

	switch msg.Event {
	case constants.EventLocationUpdate:
		var req models.LocationUpdate
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			h.manager.SendError(s, fmt.Errorf("invalid location payload"), constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
			return
		}
		if _, err := h.locationUC.UpdateLocation(ctx, riderID, req); err != nil {
			h.sendUseCaseError(s, err, constants.ErrorInvalidLocation)
		}

	case constants.EventStatusUpdate:
		var req models.StatusUpdate
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			h.manager.SendError(s, fmt.Errorf("invalid status payload"), constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
			return
		}
		if _, err := h.riderUC.SetOnline(ctx, riderID, req.Online); err != nil {
			h.sendUseCaseError(s, err, constants.ErrorStatusUpdate)
		}

	case constants.EventOrderUpdate:
		event := models.RiderOrderEvent{
			RiderID:   riderID.String(),
			Data:      msg.Data,
			Timestamp: h.now(),
		}
		if err := h.manager.BroadcastToRoom(constants.RoomAdmin, constants.EventRiderOrderUpdate, event); err != nil {
			logger.WarnCtx(ctx, "Failed to relay order update", logger.RiderID(riderID), logger.Err(err))
		}

	default:
		h.manager.SendError(s, fmt.Errorf("unsupported event %q", msg.Event), constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
	}
}

func (h *SocketHandler) sendUseCaseError(s *pkgws.Session, err error, code string) {
	switch apperror.KindOf(err) {
	case apperror.KindValidation, apperror.KindConflict, apperror.KindNotFound:
		h.manager.SendError(s, err, code, constants.ErrorSeverityClient)
	default:
		h.manager.SendError(s, err, constants.ErrorInternalError, constants.ErrorSeverityServer)
	}
}
