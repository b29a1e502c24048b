package websocket

import (
	"encoding/json"
	"time"
)

type MessageType string

const (
	// Client to Server
	MessageTypePing      MessageType = "PING"
	MessageTypeSyncState MessageType = "SYNC_STATE"

	// Server to Client
	MessageTypeStateSync       MessageType = "STATE_SYNC"
	MessageTypeFavoriteChanged MessageType = "FAVORITE_CHANGED"
	MessageTypePong            MessageType = "PONG"
	MessageTypeError           MessageType = "ERROR"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`
	Seq       int             `json:"seq,omitempty"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	msg := &Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
	}
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		msg.Payload = payloadBytes
	}
	return msg, nil
}

// Server to Client payloads

type StateSyncPayload struct {
	ClientID string   `json:"clientId"`
	IDs      []string `json:"ids"`
}

type FavoriteChangedPayload struct {
	ResortID   string   `json:"resortId"`
	IsFavorite bool     `json:"isFavorite"`
	IDs        []string `json:"ids"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
