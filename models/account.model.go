package models

import (
	"time"

	"gorm.io/gorm"
)

// Rate-limit levels. Level 0 accounts get the base allowance, level 1 accounts
// get a looser one.
const (
	LimitLevelZero = 0
	LimitLevelOne  = 1
)

type Account struct {
	gorm.Model
	Name        string `json:"name" gorm:"default:''"`
	Email       string `json:"email" gorm:"unique;not null"`
	Password    string `json:"-" gorm:"not null"`
	Role        string `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	LimitLevel  int    `json:"limit_level" gorm:"default:0"`
	Balance     uint   `json:"balance" gorm:"default:0"`
	IsSuspended bool   `json:"is_suspended" gorm:"default:false"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// Session is one issued login token. The token id (jti) is embedded in the JWT
// so logout can revoke a single token and logoutAll can revoke every session of
// an account. Rows are purged for real by the cleanup job, no soft delete.
type Session struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	TokenID   string    `json:"token_id" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked" gorm:"default:false"`
}

// ActionLog records one rate-limited action per row; the limit guards count
// rows inside the sliding window.
type ActionLog struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	Email     string    `gorm:"index;not null"`
}
