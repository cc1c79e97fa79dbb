package ws

import (
	"encoding/json"
	"sync"

	"quicksurvey/log"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgSnapshot         MessageType = "snapshot"
	MsgResponseReceived MessageType = "response_received"
	MsgStatusChanged    MessageType = "status_changed"
	MsgError            MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for survey owner dashboards. An owner
// may keep several dashboards open on the same survey; every connection for
// that survey receives each event.
type Hub struct {
	// surveyID -> connections
	ownerConns map[string]map[*Connection]struct{}

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	SurveyID string
	UserID   string
	Send     chan []byte
	Hub      *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	SurveyID string
	Message  *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		ownerConns: make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.ownerConns[conn.SurveyID] == nil {
				h.ownerConns[conn.SurveyID] = make(map[*Connection]struct{})
			}
			h.ownerConns[conn.SurveyID][conn] = struct{}{}
			h.mu.Unlock()
			log.Debugf("owner %s connected to survey %s", conn.UserID, conn.SurveyID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.ownerConns[conn.SurveyID]; ok {
				if _, ok := conns[conn]; ok {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.ownerConns, conn.SurveyID)
					}
				}
			}
			h.mu.Unlock()
			log.Debugf("owner %s disconnected from survey %s", conn.UserID, conn.SurveyID)

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.ownerConns[msg.SurveyID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToOwner sends a message to every dashboard watching the survey
// (implements service.Broadcaster).
func (h *Hub) BroadcastToOwner(surveyID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SurveyID: surveyID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
