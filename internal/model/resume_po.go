package model

import "time"

// Resumes corresponds to the resumes table. One resume per user, enforced by
// the unique index on user_id.
type Resumes struct {
	Id         int64  `gorm:"primaryKey"`
	UserId     int64  `gorm:"not null;uniqueIndex"`
	Title      string `gorm:"type:varchar(255);not null"`
	Summary    string `gorm:"type:text"`
	Skills     string `gorm:"type:text"`
	Experience string `gorm:"type:text"`
	Education  string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
