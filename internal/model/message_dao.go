package model

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// MessagesDao defines the interface for database operations on the messages
// table.
type MessagesDao interface {
	Insert(ctx context.Context, data *Messages) error
	FindOneById(ctx context.Context, id int64) (*Messages, error)
	// FindPageByParticipant returns messages the user sent or received.
	FindPageByParticipant(ctx context.Context, userId int64, offset, limit int) ([]*Messages, int64, error)
	MarkRead(ctx context.Context, id int64) error
}

type messagesDao struct {
	db *gorm.DB
}

// NewMessagesDao creates a new instance of MessagesDao.
func NewMessagesDao(db *gorm.DB) MessagesDao {
	return &messagesDao{db: db}
}

func (d *messagesDao) Insert(ctx context.Context, data *Messages) error {
	return d.db.WithContext(ctx).Create(data).Error
}

func (d *messagesDao) FindOneById(ctx context.Context, id int64) (*Messages, error) {
	var resp Messages
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *messagesDao) FindPageByParticipant(ctx context.Context, userId int64, offset, limit int) ([]*Messages, int64, error) {
	tx := d.db.WithContext(ctx).Model(&Messages{}).
		Where("sender_id = ? OR receiver_id = ?", userId, userId)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var msgs []*Messages
	err := tx.Order("created_at DESC").Offset(offset).Limit(limit).Find(&msgs).Error
	if err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

func (d *messagesDao) MarkRead(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&Messages{}).Where("id = ?", id).
		Update("is_read", true).Error
}
