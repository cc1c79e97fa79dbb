package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func recvMessage(t *testing.T, conn *Connection) *Message {
	t.Helper()
	select {
	case data := <-conn.Send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("malformed hub message: %v", err)
		}
		return &msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for hub message")
		return nil
	}
}

func TestHubBroadcastToOwner(t *testing.T) {
	hub := NewHub()

	conn := &Connection{SurveyID: "survey-1", UserID: "owner-1", Send: make(chan []byte, 8), Hub: hub}
	hub.Register(conn)
	defer hub.Unregister(conn)

	hub.BroadcastToOwner("survey-1", string(MsgResponseReceived), map[string]string{"responseId": "r-1"})

	msg := recvMessage(t, conn)
	if msg.Type != MsgResponseReceived {
		t.Errorf("Type = %q, want %q", msg.Type, MsgResponseReceived)
	}
	var payload map[string]string
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload["responseId"] != "r-1" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestHubFansOutToEveryDashboard(t *testing.T) {
	hub := NewHub()

	first := &Connection{SurveyID: "survey-1", UserID: "owner-1", Send: make(chan []byte, 8), Hub: hub}
	second := &Connection{SurveyID: "survey-1", UserID: "owner-1", Send: make(chan []byte, 8), Hub: hub}
	other := &Connection{SurveyID: "survey-2", UserID: "owner-2", Send: make(chan []byte, 8), Hub: hub}
	hub.Register(first)
	hub.Register(second)
	hub.Register(other)
	defer hub.Unregister(first)
	defer hub.Unregister(second)
	defer hub.Unregister(other)

	hub.BroadcastToOwner("survey-1", string(MsgStatusChanged), map[string]string{"status": "PUBLISHED"})

	for _, conn := range []*Connection{first, second} {
		if msg := recvMessage(t, conn); msg.Type != MsgStatusChanged {
			t.Errorf("Type = %q, want %q", msg.Type, MsgStatusChanged)
		}
	}

	select {
	case data := <-other.Send:
		t.Errorf("unrelated survey received broadcast: %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()

	conn := &Connection{SurveyID: "survey-1", UserID: "owner-1", Send: make(chan []byte, 8), Hub: hub}
	hub.Register(conn)
	hub.Unregister(conn)

	select {
	case _, open := <-conn.Send:
		if open {
			t.Error("expected Send to be closed after unregister")
		}
	case <-time.After(time.Second):
		t.Fatal("Send was not closed")
	}
}
