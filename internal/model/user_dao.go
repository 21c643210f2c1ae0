package model

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = gorm.ErrRecordNotFound

// UsersDao defines the interface for database operations on the users table.
type UsersDao interface {
	Insert(ctx context.Context, data *Users) error
	FindOneById(ctx context.Context, id int64) (*Users, error)
	FindOneByEmail(ctx context.Context, email string) (*Users, error)
	FindOneByWalletAddress(ctx context.Context, address string) (*Users, error)
	UpdateWalletAddress(ctx context.Context, id int64, address string) error
	UpdateVerificationTier(ctx context.Context, id int64, tier string) error
}

type usersDao struct {
	db *gorm.DB
}

// NewUsersDao creates a new instance of UsersDao.
func NewUsersDao(db *gorm.DB) UsersDao {
	return &usersDao{db: db}
}

func (d *usersDao) Insert(ctx context.Context, data *Users) error {
	return d.db.WithContext(ctx).Create(data).Error
}

func (d *usersDao) FindOneById(ctx context.Context, id int64) (*Users, error) {
	var resp Users
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *usersDao) FindOneByEmail(ctx context.Context, email string) (*Users, error) {
	var resp Users
	err := d.db.WithContext(ctx).Where("email = ?", email).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *usersDao) FindOneByWalletAddress(ctx context.Context, address string) (*Users, error) {
	var resp Users
	err := d.db.WithContext(ctx).Where("wallet_address = ?", address).First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (d *usersDao) UpdateWalletAddress(ctx context.Context, id int64, address string) error {
	return d.db.WithContext(ctx).Model(&Users{}).Where("id = ?", id).
		Update("wallet_address", address).Error
}

func (d *usersDao) UpdateVerificationTier(ctx context.Context, id int64, tier string) error {
	return d.db.WithContext(ctx).Model(&Users{}).Where("id = ?", id).
		Update("verification_tier", tier).Error
}
