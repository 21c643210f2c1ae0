package model

import "time"

// Applications corresponds to the applications table. A user applies to a job
// at most once, enforced by the (job_id, user_id) unique index.
type Applications struct {
	Id          int64  `gorm:"primaryKey"`
	JobId       int64  `gorm:"not null;uniqueIndex:idx_applications_job_user"`
	UserId      int64  `gorm:"not null;uniqueIndex:idx_applications_job_user"`
	CoverLetter string `gorm:"type:text"`
	Status      string `gorm:"type:varchar(16);not null;default:pending"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
