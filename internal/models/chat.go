package models

import (
	"time"

	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// Chat is one persisted chat message inside a room.
type Chat struct {
	gorm.Model
	RoomID  uint   `gorm:"not null;index" json:"roomId"`
	UserID  uint   `gorm:"not null" json:"userId"`
	Message string `gorm:"not null" json:"message"`

	Room Room `gorm:"foreignKey:RoomID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}

/** -------------------- DTOs -------------------- */
// Response
type ChatResponse struct {
	ID      uint      `json:"id"`
	RoomID  uint      `json:"roomId"`
	UserID  uint      `json:"userId"`
	Message string    `json:"message"`
	Sended  time.Time `json:"sended"`
}

type ChatHistoryResponse struct {
	Messages []ChatResponse `json:"messages"`
}
