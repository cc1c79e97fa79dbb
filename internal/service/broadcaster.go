package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToOwner(surveyID string, msgType string, payload interface{})
}
