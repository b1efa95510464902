package utils

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/constants"
)

// RiderID returns the rider id stored by the auth middleware
func RiderID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(constants.CtxRiderID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, apperror.Unauthorized("Rider not authenticated")
	}
	return id, nil
}

// ParamUUID parses the named path parameter. A malformed id cannot match any
// row, so it is reported as notFoundMessage.
func ParamUUID(c echo.Context, name, notFoundMessage string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NotFound(notFoundMessage)
	}
	return id, nil
}

// QueryInt reads an integer query parameter, falling back to def when absent
func QueryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Validation("Invalid " + name + " parameter")
	}
	return v, nil
}

// QueryFloat reads a float query parameter. Missing values are rejected when
// required, otherwise def is returned.
func QueryFloat(c echo.Context, name string, def float64, required bool) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		if required {
			return 0, apperror.Validation(name + " is required")
		}
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperror.Validation("Invalid " + name + " parameter")
	}
	return v, nil
}

// ClampPage normalises limit and offset to [1, max] and [0, inf)
func ClampPage(limit, offset, def, max int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// IsHTTPURL reports whether s is an absolute http or https URL
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
