package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/piresc/bikeparts/services/location"
	"github.com/piresc/bikeparts/services/location/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string, riderID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if riderID != uuid.Nil {
		c.Set(constants.CtxRiderID, riderID)
	}
	return c, rec
}

func TestLocationHandler_UpdateLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)
	riderID := uuid.New()
	speed := 10.0

	mockUC.EXPECT().
		UpdateLocation(gomock.Any(), riderID, models.LocationUpdate{Lat: 6.9, Lng: 79.8, Speed: &speed}).
		Return(&models.LocationLog{RiderID: riderID, Lat: 6.9, Lng: 79.8}, nil)

	c, rec := newContext(http.MethodPost, "/", `{"lat":6.9,"lng":79.8,"speed":10}`, riderID)

	err := handler.UpdateLocation(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationHandler_UpdateLocation_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().UpdateLocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, location.ErrInvalidLocation)

	c, rec := newContext(http.MethodPost, "/", `{"lat":91,"lng":0}`, uuid.New())

	err := handler.UpdateLocation(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocationHandler_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)
	riderID := uuid.New()

	mockUC.EXPECT().History(gomock.Any(), riderID, 200).Return([]models.LocationLog{}, nil)

	c, rec := newContext(http.MethodGet, "/?limit=200", "", riderID)

	err := handler.History(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLocationHandler_NearbyRiders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	mockUC.EXPECT().
		NearbyRiders(gomock.Any(), models.NearbyQuery{Lat: 6.9271, Lng: 79.8612, RadiusKm: 3}).
		Return([]models.RiderLocation{{Name: "Nimal"}}, nil)

	c, rec := newContext(http.MethodGet, "/?lat=6.9271&lng=79.8612&radius=3", "", uuid.Nil)

	err := handler.NearbyRiders(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Nimal"`)
}

func TestLocationHandler_NearbyRiders_MissingLat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewLocationHandler(mocks.NewMockLocationUC(ctrl))
	c, rec := newContext(http.MethodGet, "/?lng=79.8612", "", uuid.Nil)

	err := handler.NearbyRiders(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
