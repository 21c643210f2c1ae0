package svc

import (
	"log"
	"time"

	"chainboard/internal/chain"
	"chainboard/internal/config"
	"chainboard/internal/model"
	"chainboard/internal/token"

	"github.com/zeromicro/go-zero/core/collection"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServiceContext struct {
	Config            config.Config
	DB                *gorm.DB
	UsersDao          model.UsersDao
	WalletProfilesDao model.WalletProfilesDao
	JobsDao           model.JobsDao
	ApplicationsDao   model.ApplicationsDao
	MessagesDao       model.MessagesDao
	ResumesDao        model.ResumesDao
	Token             *token.Manager
	TxCounter         chain.TxCounter
	// NonceStore holds issued login challenges until they are consumed or
	// expire.
	NonceStore *collection.Cache
}

func NewServiceContext(c config.Config) *ServiceContext {
	db, err := initDB(c.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	nonceStore, err := collection.NewCache(time.Duration(c.Nonce.Expire) * time.Second)
	if err != nil {
		log.Fatalf("failed to init nonce store: %v", err)
	}

	return &ServiceContext{
		Config:            c,
		DB:                db,
		UsersDao:          model.NewUsersDao(db),
		WalletProfilesDao: model.NewWalletProfilesDao(db),
		JobsDao:           model.NewJobsDao(db),
		ApplicationsDao:   model.NewApplicationsDao(db),
		MessagesDao:       model.NewMessagesDao(db),
		ResumesDao:        model.NewResumesDao(db),
		Token:             token.NewManager(c.Auth.AccessSecret, time.Duration(c.Auth.AccessExpire)*time.Second),
		TxCounter:         chain.NewEthTxCounter(c.Chain.RpcUrl),
		NonceStore:        nonceStore,
	}
}

func initDB(dsn string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Users{},
		&model.WalletProfiles{},
		&model.Jobs{},
		&model.Applications{},
		&model.Messages{},
		&model.Resumes{},
	); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}
