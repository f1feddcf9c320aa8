package models

import (
	"time"

	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// Room is a named chat channel. The slug is the human-facing key used in
// URLs; the numeric ID is what chat messages reference.
type Room struct {
	gorm.Model
	Slug    string `gorm:"uniqueIndex;not null" json:"slug"`
	AdminID uint   `gorm:"not null" json:"adminId"`

	Admin User `gorm:"foreignKey:AdminID" json:"-"`
}

/** -------------------- DTOs -------------------- */
// Request
type CreateRoomRequest struct {
	Name string `json:"name" binding:"required,min=3,max=20"`
}

// Response
type RoomResponse struct {
	ID        uint      `json:"roomId"`
	Slug      string    `json:"slug"`
	AdminID   uint      `json:"adminId"`
	CreatedAt time.Time `json:"createdAt"`
}
