package services

import (
	"context"
	"fmt"
	"strconv"

	"chat-server/internal/models"
)

// ChatService adapts the string-keyed persistence interface the WebSocket
// relay speaks to the numeric-keyed repositories.
type ChatService struct {
	rooms RoomStore
	chats ChatStore
}

func NewChatService(rooms RoomStore, chats ChatStore) *ChatService {
	return &ChatService{rooms: rooms, chats: chats}
}

// RoomExists reports whether the referenced room is present. A room id that
// does not parse as a numeric key cannot match any room, so it is reported
// as absent rather than as an error.
func (s *ChatService) RoomExists(ctx context.Context, roomID string) (bool, error) {
	id, err := parseID(roomID)
	if err != nil {
		return false, nil
	}
	return s.rooms.Exists(id)
}

// AppendChat persists one chat message.
func (s *ChatService) AppendChat(ctx context.Context, roomID, message, senderID string) error {
	rid, err := parseID(roomID)
	if err != nil {
		return fmt.Errorf("invalid room id %q: %w", roomID, err)
	}
	uid, err := parseID(senderID)
	if err != nil {
		return fmt.Errorf("invalid sender id %q: %w", senderID, err)
	}

	return s.chats.Create(&models.Chat{
		RoomID:  rid,
		UserID:  uid,
		Message: message,
	})
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
