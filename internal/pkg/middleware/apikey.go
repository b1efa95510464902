package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/utils"
)

// APIKeyHeader carries the back-office key
const APIKeyHeader = constants.HeaderAPIKey

// ValidAPIKey reports whether supplied matches one of the configured keys.
// Empty configured keys never match.
func ValidAPIKey(supplied string, allowed ...string) bool {
	if supplied == "" {
		return false
	}
	for _, key := range allowed {
		if key != "" && subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) == 1 {
			return true
		}
	}
	return false
}

// ValidateAPIKey guards back-office routes with the X-API-Key header
func ValidateAPIKey(allowedKeys ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if !ValidAPIKey(apiKey, allowedKeys...) {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
