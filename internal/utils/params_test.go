package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/apperror"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestRiderID(t *testing.T) {
	c := newTestContext("/")
	_, err := RiderID(c)
	assert.True(t, apperror.Is(err, apperror.KindUnauthorized))

	id := uuid.New()
	c.Set(constants.CtxRiderID, id)
	got, err := RiderID(c)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	c.Set(constants.CtxRiderID, id.String())
	_, err = RiderID(c)
	assert.Error(t, err)
}

func TestParamUUID(t *testing.T) {
	c := newTestContext("/")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	_, err := ParamUUID(c, "id", "Order not found")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Equal(t, "Order not found", apperror.MessageOf(err))

	id := uuid.New()
	c.SetParamValues(id.String())
	got, err := ParamUUID(c, "id", "Order not found")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestQueryInt(t *testing.T) {
	c := newTestContext("/?limit=25&offset=abc")

	limit, err := QueryInt(c, "limit", 50)
	require.NoError(t, err)
	assert.Equal(t, 25, limit)

	missing, err := QueryInt(c, "page", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, missing)

	_, err = QueryInt(c, "offset", 0)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestQueryFloat(t *testing.T) {
	c := newTestContext("/?lat=6.9271&lng=east")

	lat, err := QueryFloat(c, "lat", 0, true)
	require.NoError(t, err)
	assert.Equal(t, 6.9271, lat)

	_, err = QueryFloat(c, "lng", 0, true)
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = QueryFloat(c, "radius", 0, true)
	assert.EqualError(t, err, "radius is required")

	radius, err := QueryFloat(c, "radius", 5, false)
	require.NoError(t, err)
	assert.Equal(t, 5.0, radius)
}

func TestClampPage(t *testing.T) {
	testCases := []struct {
		name           string
		limit, offset  int
		expectedLimit  int
		expectedOffset int
	}{
		{name: "defaults", limit: 0, offset: 0, expectedLimit: 50, expectedOffset: 0},
		{name: "over max", limit: 1000, offset: 10, expectedLimit: 100, expectedOffset: 10},
		{name: "negative offset", limit: 5, offset: -1, expectedLimit: 5, expectedOffset: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := ClampPage(tc.limit, tc.offset, 50, 100)
			assert.Equal(t, tc.expectedLimit, limit)
			assert.Equal(t, tc.expectedOffset, offset)
		})
	}
}

func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("https://cdn.example.com/proofs/a.jpg"))
	assert.True(t, IsHTTPURL("http://localhost:9000/a.png"))
	assert.False(t, IsHTTPURL("ftp://example.com/a.png"))
	assert.False(t, IsHTTPURL("/relative/path.png"))
	assert.False(t, IsHTTPURL(""))
}
