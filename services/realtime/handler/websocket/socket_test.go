package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	jwtpkg "github.com/piresc/bikeparts/internal/pkg/jwt"
	"github.com/piresc/bikeparts/internal/pkg/models"
	pkgws "github.com/piresc/bikeparts/internal/pkg/websocket"
	"github.com/piresc/bikeparts/services/location"
	locationmocks "github.com/piresc/bikeparts/services/location/mocks"
	ridermocks "github.com/piresc/bikeparts/services/riders/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	baseURL    string
	cfg        *models.Config
	manager    *pkgws.Manager
	locationUC *locationmocks.MockLocationUC
	riderUC    *ridermocks.MockRiderUC
}

func setupEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &models.Config{
		JWT:     models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "test"},
		APIKeys: models.APIKeyConfig{BackOffice: "office-key"},
	}
	env := &testEnv{
		cfg:        cfg,
		manager:    pkgws.NewManager(),
		locationUC: locationmocks.NewMockLocationUC(ctrl),
		riderUC:    ridermocks.NewMockRiderUC(ctrl),
	}
	h := NewSocketHandler(cfg, env.manager, env.locationUC, env.riderUC)

	e := echo.New()
	e.GET("/ws/rider", h.RiderSocket)
	e.GET("/ws/admin", h.AdminSocket)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	env.baseURL = "ws" + strings.TrimPrefix(srv.URL, "http")
	return env
}

func (env *testEnv) dialRider(t *testing.T, riderID uuid.UUID) *websocket.Conn {
	token, _, err := jwtpkg.GenerateRiderToken(riderID, env.cfg.JWT)
	require.NoError(t, err)

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Bearer "+token)
	conn, _, err := websocket.DefaultDialer.Dial(env.baseURL+"/ws/rider", header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	room := "rider_" + riderID.String()
	require.Eventually(t, func() bool { return env.manager.RoomSize(room) == 1 }, time.Second, 10*time.Millisecond)
	return conn
}

func (env *testEnv) dialAdmin(t *testing.T) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(env.baseURL+"/ws/admin?apiKey=office-key", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, func() bool { return env.manager.RoomSize(constants.RoomAdmin) == 1 }, time.Second, 10*time.Millisecond)
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) models.WSMessage {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func send(t *testing.T, conn *websocket.Conn, event string, data interface{}) {
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: event, Data: raw}))
}

func TestRiderSocket_RejectsMissingToken(t *testing.T) {
	env := setupEnv(t)

	_, resp, err := websocket.DefaultDialer.Dial(env.baseURL+"/ws/rider", nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRiderSocket_TokenQueryParam(t *testing.T) {
	env := setupEnv(t)
	riderID := uuid.New()
	token, _, err := jwtpkg.GenerateRiderToken(riderID, env.cfg.JWT)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(env.baseURL+"/ws/rider?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		_, ok := env.manager.Session(riderID.String())
		return ok
	}, time.Second, 10*time.Millisecond)
}

func TestAdminSocket_RejectsWrongKey(t *testing.T) {
	env := setupEnv(t)

	header := http.Header{}
	header.Set(constants.HeaderAPIKey, "wrong")
	_, resp, err := websocket.DefaultDialer.Dial(env.baseURL+"/ws/admin", header)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRiderSocket_LocationUpdate(t *testing.T) {
	env := setupEnv(t)
	riderID := uuid.New()
	called := make(chan models.LocationUpdate, 1)

	env.locationUC.EXPECT().UpdateLocation(gomock.Any(), riderID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, u models.LocationUpdate) (*models.LocationLog, error) {
			called <- u
			return &models.LocationLog{RiderID: riderID, Lat: u.Lat, Lng: u.Lng}, nil
		})

	conn := env.dialRider(t, riderID)
	send(t, conn, constants.EventLocationUpdate, models.LocationUpdate{Lat: 6.9271, Lng: 79.8612})

	select {
	case u := <-called:
		assert.Equal(t, 6.9271, u.Lat)
	case <-time.After(2 * time.Second):
		t.Fatal("location update was not routed")
	}
}

func TestRiderSocket_InvalidLocation(t *testing.T) {
	env := setupEnv(t)
	riderID := uuid.New()

	env.locationUC.EXPECT().UpdateLocation(gomock.Any(), riderID, gomock.Any()).
		Return(nil, location.ErrInvalidLocation)

	conn := env.dialRider(t, riderID)
	send(t, conn, constants.EventLocationUpdate, models.LocationUpdate{Lat: 123, Lng: 79.8})

	msg := readMessage(t, conn)
	require.Equal(t, constants.EventError, msg.Event)
	var payload models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	assert.Equal(t, constants.ErrorInvalidLocation, payload.Code)
	assert.Equal(t, "Invalid coordinates", payload.Message)
}

func TestRiderSocket_StatusUpdate(t *testing.T) {
	env := setupEnv(t)
	riderID := uuid.New()
	called := make(chan bool, 1)

	env.riderUC.EXPECT().SetOnline(gomock.Any(), riderID, false).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, online bool) (*models.RiderPresence, error) {
			called <- online
			return &models.RiderPresence{RiderID: riderID.String(), Online: online}, nil
		})

	conn := env.dialRider(t, riderID)
	send(t, conn, constants.EventStatusUpdate, models.StatusUpdate{Online: false})

	select {
	case online := <-called:
		assert.False(t, online)
	case <-time.After(2 * time.Second):
		t.Fatal("status update was not routed")
	}
}

func TestRiderSocket_OrderUpdateRelayedToAdmins(t *testing.T) {
	env := setupEnv(t)
	riderID := uuid.New()

	admin := env.dialAdmin(t)
	rider := env.dialRider(t, riderID)

	send(t, rider, constants.EventOrderUpdate, map[string]string{"orderId": "SO-1001", "note": "stuck in traffic"})

	msg := readMessage(t, admin)
	require.Equal(t, constants.EventRiderOrderUpdate, msg.Event)
	var relayed models.RiderOrderEvent
	require.NoError(t, json.Unmarshal(msg.Data, &relayed))
	assert.Equal(t, riderID.String(), relayed.RiderID)
	assert.JSONEq(t, `{"orderId":"SO-1001","note":"stuck in traffic"}`, string(relayed.Data))
}

func TestRiderSocket_UnknownEvent(t *testing.T) {
	env := setupEnv(t)
	conn := env.dialRider(t, uuid.New())

	send(t, conn, "teleport", map[string]string{})

	msg := readMessage(t, conn)
	assert.Equal(t, constants.EventError, msg.Event)
}
