package model

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// JobsFilter narrows a paginated job listing. Zero values are ignored.
type JobsFilter struct {
	Keyword  string
	Location string
	JobType  string
	Category string
	Status   string
}

// JobsDao defines the interface for database operations on the jobs table.
type JobsDao interface {
	Insert(ctx context.Context, data *Jobs) error
	FindOneById(ctx context.Context, id int64) (*Jobs, error)
	FindPage(ctx context.Context, filter JobsFilter, offset, limit int) ([]*Jobs, int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type jobsDao struct {
	db *gorm.DB
}

// NewJobsDao creates a new instance of JobsDao.
func NewJobsDao(db *gorm.DB) JobsDao {
	return &jobsDao{db: db}
}

func (d *jobsDao) Insert(ctx context.Context, data *Jobs) error {
	return d.db.WithContext(ctx).Create(data).Error
}

func (d *jobsDao) FindOneById(ctx context.Context, id int64) (*Jobs, error) {
	var resp Jobs
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *jobsDao) FindPage(ctx context.Context, filter JobsFilter, offset, limit int) ([]*Jobs, int64, error) {
	tx := d.db.WithContext(ctx).Model(&Jobs{})
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		tx = tx.Where("title ILIKE ? OR company ILIKE ?", kw, kw)
	}
	if filter.Location != "" {
		tx = tx.Where("location = ?", filter.Location)
	}
	if filter.JobType != "" {
		tx = tx.Where("job_type = ?", filter.JobType)
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []*Jobs
	err := tx.Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (d *jobsDao) Update(ctx context.Context, id int64, fields map[string]any) error {
	return d.db.WithContext(ctx).Model(&Jobs{}).Where("id = ?", id).Updates(fields).Error
}

func (d *jobsDao) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Delete(&Jobs{}, id).Error
}
