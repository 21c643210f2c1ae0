package model

import "time"

// Jobs corresponds to the jobs table. UserId is the posting user.
type Jobs struct {
	Id          int64  `gorm:"primaryKey"`
	UserId      int64  `gorm:"not null;index"`
	Title       string `gorm:"type:varchar(255);not null"`
	Company     string `gorm:"type:varchar(255);not null"`
	Location    string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:text"`
	SalaryRange string `gorm:"type:varchar(128)"`
	JobType     string `gorm:"type:varchar(32);not null;default:full_time"`
	Category    string `gorm:"type:varchar(64)"`
	Status      string `gorm:"type:varchar(16);not null;default:open"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
