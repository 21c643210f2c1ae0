package model

import "time"

// WalletProfiles corresponds to the wallet_profiles table. A user may link
// several wallets; at most one of them carries the primary flag, enforced by
// the transactional write paths in the dao.
type WalletProfiles struct {
	Id              int64  `gorm:"primaryKey"`
	UserId          int64  `gorm:"not null;index"`
	WalletAddress   string `gorm:"type:varchar(64);not null;uniqueIndex"`
	WalletKind      string `gorm:"type:varchar(32);not null;default:metamask"`
	IsPrimary       bool   `gorm:"not null;default:false"`
	ReputationScore int    `gorm:"not null;default:0"`
	TxCount         int64  `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
