package model

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ResumesDao defines the interface for database operations on the resumes
// table.
type ResumesDao interface {
	Insert(ctx context.Context, data *Resumes) error
	FindOneById(ctx context.Context, id int64) (*Resumes, error)
	FindOneByUserId(ctx context.Context, userId int64) (*Resumes, error)
	FindPage(ctx context.Context, offset, limit int) ([]*Resumes, int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type resumesDao struct {
	db *gorm.DB
}

// NewResumesDao creates a new instance of ResumesDao.
func NewResumesDao(db *gorm.DB) ResumesDao {
	return &resumesDao{db: db}
}

func (d *resumesDao) Insert(ctx context.Context, data *Resumes) error {
	return d.db.WithContext(ctx).Create(data).Error
}

func (d *resumesDao) FindOneById(ctx context.Context, id int64) (*Resumes, error) {
	var resp Resumes
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *resumesDao) FindOneByUserId(ctx context.Context, userId int64) (*Resumes, error) {
	var resp Resumes
	err := d.db.WithContext(ctx).Where("user_id = ?", userId).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *resumesDao) FindPage(ctx context.Context, offset, limit int) ([]*Resumes, int64, error) {
	tx := d.db.WithContext(ctx).Model(&Resumes{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var resumes []*Resumes
	err := tx.Order("created_at DESC").Offset(offset).Limit(limit).Find(&resumes).Error
	if err != nil {
		return nil, 0, err
	}
	return resumes, total, nil
}

func (d *resumesDao) Update(ctx context.Context, id int64, fields map[string]any) error {
	return d.db.WithContext(ctx).Model(&Resumes{}).Where("id = ?", id).Updates(fields).Error
}

func (d *resumesDao) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Delete(&Resumes{}, id).Error
}
