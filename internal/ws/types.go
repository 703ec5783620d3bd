package ws

import (
	"encoding/json"
	"fmt"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMoves      MessageType = "moves"
	MessageTypePlace      MessageType = "place"
	MessageTypeClear      MessageType = "clear"
	MessageTypeReset      MessageType = "reset"
	MessageTypeMoveList   MessageType = "moveList"
	MessageTypeBoardState MessageType = "boardState"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage marshals payload into a message of the given type.
func NewMessage(msgType MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %s payload: %w", msgType, err)
	}
	return Message{Type: msgType, Payload: raw}, nil
}

type ErrorPayload struct {
	Error string `json:"error"`
}
