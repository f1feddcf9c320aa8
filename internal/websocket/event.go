package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Inbound event kinds. Anything else is unrecognized and ignored.
const (
	EventJoinRoom  = "join_room"
	EventLeaveRoom = "leave_room"
	EventChat      = "chat"
)

// Outbound frame types.
const (
	FrameChat  = "chat"
	FrameError = "error"
)

var ErrMalformedEvent = errors.New("malformed event")

// RoomID is the canonical string form of a room key. Clients may send the
// id as a JSON string or number; both decode to the same representation so
// membership comparisons never fail on type alone.
type RoomID string

func (r *RoomID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = RoomID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*r = RoomID(n.String())
		return nil
	}
	return fmt.Errorf("room id must be a string or a number")
}

// Event is the closed set of inbound frame shapes, parsed at the boundary.
type Event struct {
	Type    string `json:"type"`
	RoomID  RoomID `json:"roomId"`
	Message string `json:"message"`
}

// ParseEvent decodes one inbound text frame.
func ParseEvent(raw []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, ErrMalformedEvent
	}
	if ev.Type == "" {
		return nil, ErrMalformedEvent
	}
	return &ev, nil
}

// ChatFrame is the outbound broadcast payload.
type ChatFrame struct {
	Type      string `json:"type"`
	RoomID    string `json:"roomId"`
	Message   string `json:"message"`
	SenderID  string `json:"senderId"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds, server-assigned
}

func NewChatFrame(roomID, message, senderID string) *ChatFrame {
	return &ChatFrame{
		Type:      FrameChat,
		RoomID:    roomID,
		Message:   message,
		SenderID:  senderID,
		Timestamp: time.Now().UnixMilli(),
	}
}

// ErrorFrame is returned to a sender whose frame could not be processed.
type ErrorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewErrorFrame(message string) *ErrorFrame {
	return &ErrorFrame{Type: FrameError, Message: message}
}
