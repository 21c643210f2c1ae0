package model

import (
	"database/sql"
	"time"
)

// Users corresponds to the users table in the database. An identity always has
// at least one of email or wallet_address; wallet-only identities carry no
// password hash.
type Users struct {
	Id               int64          `gorm:"primaryKey"`
	Email            sql.NullString `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash     sql.NullString `gorm:"type:varchar(128)"`
	WalletAddress    sql.NullString `gorm:"type:varchar(64);uniqueIndex"`
	Name             string         `gorm:"type:varchar(128);not null"`
	Role             string         `gorm:"type:varchar(16);not null;default:user"`
	VerificationTier string         `gorm:"type:varchar(16);not null;default:pending"`
	AvatarUrl        sql.NullString `gorm:"type:varchar(512)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
