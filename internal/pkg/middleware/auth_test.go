package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/bikeparts/internal/pkg/jwt"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiderAuthMiddleware(t *testing.T) {
	cfg := models.JWTConfig{Secret: "rider-secret", Expiration: 10, Issuer: "test"}
	riderID := uuid.New()
	validToken, _, err := jwtpkg.GenerateRiderToken(riderID, cfg)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "valid token", header: "Bearer " + validToken, expectedStatus: http.StatusOK},
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + validToken, expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/rider/profile", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen interface{}
			handler := RiderAuthMiddleware(cfg)(func(c echo.Context) error {
				seen = c.Get("rider_id")
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, riderID, seen)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	_, ok = BearerToken("Bearer")
	assert.False(t, ok)

	_, ok = BearerToken("Bearer ")
	assert.False(t, ok)
}

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name           string
		key            string
		expectedStatus int
	}{
		{name: "valid key", key: "backoffice-key", expectedStatus: http.StatusOK},
		{name: "missing key", key: "", expectedStatus: http.StatusUnauthorized},
		{name: "wrong key", key: "nope", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/admin/assignments", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()

			handler := ValidateAPIKey("backoffice-key")(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(e.NewContext(req, rec)))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestValidAPIKey_EmptyConfiguredKeyNeverMatches(t *testing.T) {
	assert.False(t, ValidAPIKey("", ""))
	assert.False(t, ValidAPIKey("anything", ""))
	assert.True(t, ValidAPIKey("k2", "k1", "k2"))
}
