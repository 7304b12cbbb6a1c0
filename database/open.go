package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// NewLogger returns the gorm logger used for every connection.
func NewLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

func dialector(dsn string) gorm.Dialector {
	return postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	})
}

// Open connects to the primary Postgres host and registers the read replica
// when one is configured. Reads then go to the replica, writes to the primary.
func Open(cfg config.Database) (*gorm.DB, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("database host is not configured")
	}

	db, err := gorm.Open(dialector(cfg.DSN(cfg.Host)), &gorm.Config{
		PrepareStmt: false,
		Logger:      NewLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.ReplicaHost != "" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{dialector(cfg.DSN(cfg.ReplicaHost))},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("register read replica: %w", err)
		}
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return nil, fmt.Errorf("enable pgcrypto extension: %w", err)
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("test database connection: %w", err)
	}
	return db, nil
}
