package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, m *Manager) string {
	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return m.Serve(c, c.QueryParam("key"), []string{c.QueryParam("room")}, func(s *Session, msg models.WSMessage) {
			_ = m.Send(s, "echo", msg.Event)
		})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) models.WSMessage {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestManager_BroadcastToRoom(t *testing.T) {
	m := NewManager()
	url := newTestServer(t, m)

	conn := dial(t, url+"?key=r1&room=rider_r1")
	require.Eventually(t, func() bool { return m.RoomSize("rider_r1") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, m.BroadcastToRoom("rider_r1", constants.EventTaskUpdate, map[string]string{"status": "assigned"}))

	msg := readMessage(t, conn)
	assert.Equal(t, constants.EventTaskUpdate, msg.Event)
	assert.JSONEq(t, `{"status":"assigned"}`, string(msg.Data))
}

func TestManager_RoutesMessagesAndAnswersPing(t *testing.T) {
	m := NewManager()
	conn := dial(t, newTestServer(t, m)+"?key=r1&room=rider_r1")

	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: constants.EventPing}))
	assert.Equal(t, constants.EventPong, readMessage(t, conn).Event)

	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: "hello", Data: json.RawMessage(`{}`)}))
	msg := readMessage(t, conn)
	assert.Equal(t, "echo", msg.Event)
	assert.Equal(t, `"hello"`, string(msg.Data))
}

func TestManager_InvalidFrame(t *testing.T) {
	m := NewManager()
	conn := dial(t, newTestServer(t, m)+"?key=r1&room=rider_r1")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	msg := readMessage(t, conn)
	assert.Equal(t, constants.EventError, msg.Event)
	var payload models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	assert.Equal(t, constants.ErrorInvalidFormat, payload.Code)
}

func TestManager_NewerConnectionReplacesOlder(t *testing.T) {
	m := NewManager()
	url := newTestServer(t, m)

	first := dial(t, url+"?key=r1&room=rider_r1")
	require.Eventually(t, func() bool { return m.RoomSize("rider_r1") == 1 }, time.Second, 10*time.Millisecond)
	firstSession, _ := m.Session("r1")

	second := dial(t, url+"?key=r1&room=rider_r1")
	require.Eventually(t, func() bool {
		s, ok := m.Session("r1")
		return ok && s != firstSession
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, first.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := first.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 1, m.RoomSize("rider_r1"))

	require.NoError(t, m.BroadcastToRoom("rider_r1", constants.EventTaskUpdate, "x"))
	assert.Equal(t, constants.EventTaskUpdate, readMessage(t, second).Event)
}

func TestManager_DisconnectEvictsFromRooms(t *testing.T) {
	m := NewManager()
	conn := dial(t, newTestServer(t, m)+"?key=admin:1&room="+constants.RoomAdmin)
	require.Eventually(t, func() bool { return m.RoomSize(constants.RoomAdmin) == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		_, ok := m.Session("admin:1")
		return !ok && m.RoomSize(constants.RoomAdmin) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestManager_SlowSessionIsEvicted(t *testing.T) {
	m := NewManager()
	s := newSession("slow", nil)
	m.sessions[s.Key] = s
	m.rooms[constants.RoomAdmin] = map[*Session]struct{}{s: {}}
	s.rooms[constants.RoomAdmin] = struct{}{}

	for i := 0; i < sendBufferSize; i++ {
		require.True(t, s.enqueue([]byte("{}")))
	}

	require.NoError(t, m.BroadcastToRoom(constants.RoomAdmin, constants.EventPayoutUpdate, "overflow"))

	_, ok := m.Session("slow")
	assert.False(t, ok)
	assert.Equal(t, 0, m.RoomSize(constants.RoomAdmin))
	select {
	case <-s.Done():
	default:
		t.Fatal("evicted session should be closed")
	}
	assert.False(t, s.enqueue([]byte("{}")))
}
