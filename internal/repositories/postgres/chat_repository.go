package postgres

import (
	"chat-server/internal/models"

	"gorm.io/gorm"
)

// historyLimit caps how many messages a single history query returns.
const historyLimit = 50

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(chat *models.Chat) error {
	return r.db.Create(chat).Error
}

// FindByRoomID returns the latest messages of a room, newest first.
func (r *ChatRepository) FindByRoomID(roomID uint) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.
		Where("room_id = ?", roomID).
		Order("id DESC").
		Limit(historyLimit).
		Find(&chats).Error
	return chats, err
}
