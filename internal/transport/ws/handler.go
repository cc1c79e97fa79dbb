package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"quicksurvey/internal/service"
	"quicksurvey/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Handler handles WebSocket connections
type Handler struct {
	hub         *Hub
	authSvc     *service.AuthService
	surveySvc   *service.SurveyService
	responseSvc *service.ResponseService
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, authSvc *service.AuthService, surveySvc *service.SurveyService, responseSvc *service.ResponseService) *Handler {
	return &Handler{
		hub:         hub,
		authSvc:     authSvc,
		surveySvc:   surveySvc,
		responseSvc: responseSvc,
	}
}

// SurveyWS handles GET /v1/ws/surveys/{surveyId}. Only the survey owner may
// subscribe.
func (h *Handler) SurveyWS(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	token := r.URL.Query().Get("token")

	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.authSvc.ValidateToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	survey, err := h.surveySvc.Get(r.Context(), surveyID, claims.UserID)
	if err != nil {
		http.Error(w, "survey not found", http.StatusNotFound)
		return
	}
	if survey.OwnerID != claims.UserID {
		http.Error(w, "not the survey owner", http.StatusForbidden)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("websocket upgrade error: %v", err)
		return
	}

	conn := &Connection{
		SurveyID: surveyID,
		UserID:   claims.UserID,
		Send:     make(chan []byte, 256),
		Hub:      h.hub,
	}

	h.hub.Register(conn)

	// Prime the dashboard with the current state before any events arrive.
	snapshot, err := json.Marshal(map[string]interface{}{
		"surveyId":      surveyID,
		"status":        survey.Status,
		"responseCount": h.responseSvc.LiveCount(r.Context(), surveyID),
	})
	if err == nil {
		if data, err := json.Marshal(&Message{Type: MsgSnapshot, Payload: snapshot}); err == nil {
			conn.Send <- data
		}
	}

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Debugf("websocket read error: %v", err)
			}
			break
		}
		// Incoming messages are ignored; the dashboard stream is one-way.
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
