package database

import (
	"errors"
	"fmt"
	"time"

	"mis/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tune the connection pool; zero values keep the driver defaults.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewConnection opens the process-wide connection pool using GORM.
// The caller owns the handle and must Close it; there is no fallback DSN and no retry.
func NewConnection(dsn string, opts Options) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database: DSN is required")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: pool: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the tables of every resource record.
// Parents precede children so the tracking foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.AuditLog{},
		&model.Project{},
		&model.TrackingOutput{},
		&model.TrackingActivity{},
		&model.TrackingSubActivity{},
		&model.TrackingRow{},
		&model.Document{},
		&model.Picture{},
		&model.Report{},
		&model.Link{},
	)
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
