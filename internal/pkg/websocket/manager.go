package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bikeparts/internal/pkg/constants"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/models"
)

const (
	sendBufferSize = 64
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8 << 10
)

// MessageHandler processes one inbound message of a session
type MessageHandler func(s *Session, msg models.WSMessage)

// Session is one live socket. Writes go through a bounded queue drained by a
// single writer goroutine.
type Session struct {
	Key  string
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	rooms  map[string]struct{}
	closed bool
	done   chan struct{}
}

func newSession(key string, conn *websocket.Conn) *Session {
	return &Session{
		Key:   key,
		conn:  conn,
		send:  make(chan []byte, sendBufferSize),
		rooms: make(map[string]struct{}),
		done:  make(chan struct{}),
	}
}

// enqueue queues a frame without blocking. It reports false when the session
// is closed or its queue is full.
func (s *Session) enqueue(frame []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.send <- frame:
		return true
	default:
		return false
	}
}

func (s *Session) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	close(s.send)
	s.mu.Unlock()
	if s.conn != nil {
		_ = s.conn.Close()
	}
}

// Done is closed once the session has been evicted
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Manager is the registry of live sessions and the rooms they belong to
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	rooms    map[string]map[*Session]struct{}
	upgrader websocket.Upgrader
}

// NewManager creates an empty registry
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		rooms:    make(map[string]map[*Session]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the request, registers the session under key in the given
// rooms and runs the read loop until the peer leaves or the session is evicted
func (m *Manager) Serve(c echo.Context, key string, rooms []string, handle MessageHandler) error {
	conn, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	s := m.register(key, conn, rooms)
	defer m.Evict(s)

	go m.writePump(s)
	m.readPump(s, handle)
	return nil
}

func (m *Manager) register(key string, conn *websocket.Conn, rooms []string) *Session {
	s := newSession(key, conn)

	m.mu.Lock()
	previous := m.sessions[key]
	m.sessions[key] = s
	for _, room := range rooms {
		members, ok := m.rooms[room]
		if !ok {
			members = make(map[*Session]struct{})
			m.rooms[room] = members
		}
		members[s] = struct{}{}
		s.rooms[room] = struct{}{}
	}
	m.mu.Unlock()

	if previous != nil {
		logger.Info("Replacing existing websocket session", logger.String("session", key))
		m.Evict(previous)
	}

	logger.Info("WebSocket client connected",
		logger.String("session", key),
		logger.Strings("rooms", rooms))
	return s
}

// Evict removes the session from every room and closes it. Evicting a
// session that was already replaced leaves its successor registered.
func (m *Manager) Evict(s *Session) {
	m.mu.Lock()
	if m.sessions[s.Key] == s {
		delete(m.sessions, s.Key)
	}
	s.mu.Lock()
	for room := range s.rooms {
		if members, ok := m.rooms[room]; ok {
			delete(members, s)
			if len(members) == 0 {
				delete(m.rooms, room)
			}
		}
	}
	s.rooms = map[string]struct{}{}
	s.mu.Unlock()
	m.mu.Unlock()

	s.close()
}

// Session returns the live session registered under key
func (m *Manager) Session(key string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[key]
	return s, ok
}

// RoomSize returns the number of sessions in room
func (m *Manager) RoomSize(room string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms[room])
}

// BroadcastToRoom queues the event on every session of the room. Sessions
// that cannot take the frame are evicted and the event is dropped for them.
func (m *Manager) BroadcastToRoom(room, event string, data interface{}) error {
	frame, err := encode(event, data)
	if err != nil {
		return err
	}

	m.mu.RLock()
	members := make([]*Session, 0, len(m.rooms[room]))
	for s := range m.rooms[room] {
		members = append(members, s)
	}
	m.mu.RUnlock()

	for _, s := range members {
		if !s.enqueue(frame) {
			logger.Warn("Dropping slow websocket session",
				logger.String("session", s.Key),
				logger.String("room", room),
				logger.String("event", event))
			m.Evict(s)
		}
	}
	return nil
}

// Send queues the event on a single session
func (m *Manager) Send(s *Session, event string, data interface{}) error {
	frame, err := encode(event, data)
	if err != nil {
		return err
	}
	if !s.enqueue(frame) {
		m.Evict(s)
		return fmt.Errorf("session %s is not accepting messages", s.Key)
	}
	return nil
}

// SendError sends an error event, hiding details of non-client errors
func (m *Manager) SendError(s *Session, err error, code string, severity constants.ErrorSeverity) {
	message := "Operation failed"
	switch severity {
	case constants.ErrorSeverityClient:
		message = err.Error()
		logger.Warn("WebSocket request rejected",
			logger.String("session", s.Key),
			logger.String("error_code", code),
			logger.Err(err))
	case constants.ErrorSeveritySecurity:
		message = "Access denied"
		logger.Warn("Security-related websocket error",
			logger.String("session", s.Key),
			logger.String("error_code", code),
			logger.Err(err))
	default:
		logger.Error("WebSocket operation failed",
			logger.String("session", s.Key),
			logger.String("error_code", code),
			logger.Err(err))
	}

	_ = m.Send(s, constants.EventError, models.WSErrorMessage{Code: code, Message: message})
}

func (m *Manager) readPump(s *Session, handle MessageHandler) {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read failed", logger.String("session", s.Key), logger.Err(err))
			} else {
				logger.Info("WebSocket client disconnected", logger.String("session", s.Key))
			}
			return
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Event == "" {
			m.SendError(s, fmt.Errorf("invalid message format"), constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
			continue
		}
		if msg.Event == constants.EventPing {
			_ = m.Send(s, constants.EventPong, nil)
			continue
		}
		handle(s, msg)
	}
}

func (m *Manager) writePump(s *Session) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame, ok := <-s.send:
			if !ok {
				return
			}
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				logger.Warn("WebSocket write failed", logger.String("session", s.Key), logger.Err(err))
				m.Evict(s)
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				m.Evict(s)
				return
			}
		}
	}
}

func encode(event string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshaling message data: %w", err)
	}
	frame, err := json.Marshal(models.WSMessage{Event: event, Data: raw})
	if err != nil {
		return nil, fmt.Errorf("error marshaling message: %w", err)
	}
	return frame, nil
}
