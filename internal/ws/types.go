// Package ws defines the websocket message envelope and payloads shared
// by the controller and its clients.
package ws

import (
	"encoding/json"
)

// MessageType discriminates websocket messages.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope every websocket frame carries.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload is the body of a "move" message.
type MovePayload struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// ErrorPayload is the body of an "error" message.
type ErrorPayload struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// NewMessage marshals payload into an envelope of the given type.
func NewMessage(messageType MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: messageType, Payload: raw}, nil
}
