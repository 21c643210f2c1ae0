package model

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ApplicationsDao defines the interface for database operations on the
// applications table.
type ApplicationsDao interface {
	Insert(ctx context.Context, data *Applications) error
	FindOneById(ctx context.Context, id int64) (*Applications, error)
	FindOneByJobAndUser(ctx context.Context, jobId, userId int64) (*Applications, error)
	FindPageByUserId(ctx context.Context, userId int64, offset, limit int) ([]*Applications, int64, error)
	FindPageByJobId(ctx context.Context, jobId int64, offset, limit int) ([]*Applications, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type applicationsDao struct {
	db *gorm.DB
}

// NewApplicationsDao creates a new instance of ApplicationsDao.
func NewApplicationsDao(db *gorm.DB) ApplicationsDao {
	return &applicationsDao{db: db}
}

func (d *applicationsDao) Insert(ctx context.Context, data *Applications) error {
	return d.db.WithContext(ctx).Create(data).Error
}

func (d *applicationsDao) FindOneById(ctx context.Context, id int64) (*Applications, error) {
	var resp Applications
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *applicationsDao) FindOneByJobAndUser(ctx context.Context, jobId, userId int64) (*Applications, error) {
	var resp Applications
	err := d.db.WithContext(ctx).Where("job_id = ? AND user_id = ?", jobId, userId).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *applicationsDao) FindPageByUserId(ctx context.Context, userId int64, offset, limit int) ([]*Applications, int64, error) {
	tx := d.db.WithContext(ctx).Model(&Applications{}).Where("user_id = ?", userId)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []*Applications
	err := tx.Order("created_at DESC").Offset(offset).Limit(limit).Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (d *applicationsDao) FindPageByJobId(ctx context.Context, jobId int64, offset, limit int) ([]*Applications, int64, error) {
	tx := d.db.WithContext(ctx).Model(&Applications{}).Where("job_id = ?", jobId)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []*Applications
	err := tx.Order("created_at DESC").Offset(offset).Limit(limit).Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (d *applicationsDao) UpdateStatus(ctx context.Context, id int64, status string) error {
	return d.db.WithContext(ctx).Model(&Applications{}).Where("id = ?", id).
		Update("status", status).Error
}
