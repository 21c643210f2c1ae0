package model

import (
	"database/sql"
	"time"
)

// Messages corresponds to the messages table. JobId links a conversation to a
// posting when present.
type Messages struct {
	Id         int64 `gorm:"primaryKey"`
	SenderId   int64 `gorm:"not null;index"`
	ReceiverId int64 `gorm:"not null;index"`
	JobId      sql.NullInt64
	Content    string `gorm:"type:text;not null"`
	IsRead     bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
