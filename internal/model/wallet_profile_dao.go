package model

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WalletProfilesDao defines the interface for database operations on the
// wallet_profiles table.
type WalletProfilesDao interface {
	// CreatePrimary inserts a new profile with the primary flag set, unsetting
	// any sibling primary in the same transaction.
	CreatePrimary(ctx context.Context, data *WalletProfiles) error
	FindOneById(ctx context.Context, id int64) (*WalletProfiles, error)
	FindOneByAddress(ctx context.Context, address string) (*WalletProfiles, error)
	FindAllByUserId(ctx context.Context, userId int64) ([]*WalletProfiles, error)
	// SetPrimary marks the given profile primary and unsets siblings in one
	// transaction. The user id guards against cross-user updates.
	SetPrimary(ctx context.Context, userId, id int64) error
	UpdateActivity(ctx context.Context, id int64, txCount int64, score int) error
	Delete(ctx context.Context, id int64) error
}

type walletProfilesDao struct {
	db *gorm.DB
}

// NewWalletProfilesDao creates a new instance of WalletProfilesDao.
func NewWalletProfilesDao(db *gorm.DB) WalletProfilesDao {
	return &walletProfilesDao{db: db}
}

func (d *walletProfilesDao) CreatePrimary(ctx context.Context, data *WalletProfiles) error {
	data.IsPrimary = true
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&WalletProfiles{}).
			Where("user_id = ? AND is_primary = ?", data.UserId, true).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Create(data).Error
	})
}

func (d *walletProfilesDao) FindOneById(ctx context.Context, id int64) (*WalletProfiles, error) {
	var resp WalletProfiles
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *walletProfilesDao) FindOneByAddress(ctx context.Context, address string) (*WalletProfiles, error) {
	var resp WalletProfiles
	err := d.db.WithContext(ctx).Where("wallet_address = ?", address).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *walletProfilesDao) FindAllByUserId(ctx context.Context, userId int64) ([]*WalletProfiles, error) {
	var profiles []*WalletProfiles
	err := d.db.WithContext(ctx).Where("user_id = ?", userId).
		Order("is_primary DESC, created_at ASC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (d *walletProfilesDao) SetPrimary(ctx context.Context, userId, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&WalletProfiles{}).
			Where("user_id = ? AND is_primary = ?", userId, true).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		res := tx.Model(&WalletProfiles{}).
			Where("id = ? AND user_id = ?", id, userId).
			Update("is_primary", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (d *walletProfilesDao) UpdateActivity(ctx context.Context, id int64, txCount int64, score int) error {
	return d.db.WithContext(ctx).Model(&WalletProfiles{}).Where("id = ?", id).
		Updates(map[string]any{"tx_count": txCount, "reputation_score": score}).Error
}

func (d *walletProfilesDao) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Delete(&WalletProfiles{}, id).Error
}
