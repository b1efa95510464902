package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	jwtpkg "github.com/piresc/bikeparts/internal/pkg/jwt"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/internal/utils"
)

// RiderAuthMiddleware authenticates a rider bearer token and stores the
// rider id (uuid.UUID) under "rider_id"
func RiderAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			tokenString, ok := BearerToken(authHeader)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			riderID, err := claims.RiderUUID()
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: riderId is not a valid UUID")
			}

			c.Set(constants.CtxRiderID, riderID)

			return next(c)
		}
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
