package services

import (
	"errors"
	"fmt"
	"strings"

	"chat-server/internal/models"
	"chat-server/internal/repositories/postgres"
)

var (
	ErrRoomAlreadyExists = errors.New("room already exists")
	ErrRoomNotFound      = errors.New("room not found")
)

// RoomStore is the persistence surface the room service needs.
type RoomStore interface {
	Create(room *models.Room) error
	FindBySlug(slug string) (*models.Room, error)
	FindByID(id uint) (*models.Room, error)
	Exists(id uint) (bool, error)
}

// ChatStore is the persistence surface for chat history.
type ChatStore interface {
	Create(chat *models.Chat) error
	FindByRoomID(roomID uint) ([]models.Chat, error)
}

type RoomService struct {
	rooms RoomStore
	chats ChatStore
}

func NewRoomService(rooms RoomStore, chats ChatStore) *RoomService {
	return &RoomService{rooms: rooms, chats: chats}
}

// Slugify normalizes a room name into its slug: lowercased, runs of
// whitespace collapsed to single dashes.
func Slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

func (s *RoomService) Create(adminID uint, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	room := models.Room{
		Slug:    Slugify(req.Name),
		AdminID: adminID,
	}

	if err := s.rooms.Create(&room); err != nil {
		if errors.Is(err, postgres.ErrDuplicateSlug) {
			return nil, ErrRoomAlreadyExists
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return &models.RoomResponse{
		ID:        room.ID,
		Slug:      room.Slug,
		AdminID:   room.AdminID,
		CreatedAt: room.CreatedAt,
	}, nil
}

func (s *RoomService) GetBySlug(slug string) (*models.RoomResponse, error) {
	room, err := s.rooms.FindBySlug(slug)
	if err != nil {
		return nil, ErrRoomNotFound
	}

	return &models.RoomResponse{
		ID:        room.ID,
		Slug:      room.Slug,
		AdminID:   room.AdminID,
		CreatedAt: room.CreatedAt,
	}, nil
}

// History returns the latest messages of a room, newest first.
func (s *RoomService) History(roomID uint) ([]models.ChatResponse, error) {
	chats, err := s.chats.FindByRoomID(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	messages := make([]models.ChatResponse, 0, len(chats))
	for _, chat := range chats {
		messages = append(messages, models.ChatResponse{
			ID:      chat.ID,
			RoomID:  chat.RoomID,
			UserID:  chat.UserID,
			Message: chat.Message,
			Sended:  chat.CreatedAt,
		})
	}
	return messages, nil
}
