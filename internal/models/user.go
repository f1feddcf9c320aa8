package models

import (
	"time"

	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// User represents a registered account.
type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized

	Rooms []*Room `gorm:"foreignKey:AdminID" json:"rooms,omitempty"`
}

/** -------------------- DTOs -------------------- */
// Request
type SignupRequest struct {
	Email    string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=64"`
	Name     string `json:"name" binding:"required,min=2,max=50"`
}

type SigninRequest struct {
	Email    string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Response
type UserResponse struct {
	ID        uint      `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type SigninResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
