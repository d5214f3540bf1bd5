package database

import (
	"context"
	"fmt"
	"time"

	"github.com/SundayYogurt/jobboard_service/config"
	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormWriter sends gorm's log lines through zerolog.
type gormWriter struct {
	zl zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.zl.Warn().Str("component", "gorm").Msg(fmt.Sprintf(format, args...))
}

func newGormLogger(zl zerolog.Logger, level logger.LogLevel) logger.Interface {
	return logger.New(gormWriter{zl: zl}, logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// migrateLockID guards AutoMigrate across replicas.
const migrateLockID int64 = 20260222

func Open(cfg config.Config) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.IsProd() {
		level = logger.Error
	}
	gormLogger := newGormLogger(log.Logger, level)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping error: %w", err)
	}

	log.Info().Msg("database connected")
	return db, nil
}

// Migrate creates or updates every table. It holds a postgres advisory lock
// so concurrent starts do not race.
func Migrate(db *gorm.DB) error {
	return db.Connection(func(conn *gorm.DB) error {
		if err := conn.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
			return fmt.Errorf("migration lock error: %w", err)
		}
		defer func() {
			_ = conn.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
		}()

		if err := conn.AutoMigrate(
			&domain.College{},
			&domain.Student{},
			&domain.Company{},
			&domain.Job{},
			&domain.StudentSkill{},
			&domain.JobApplication{},
		); err != nil {
			return fmt.Errorf("migration error: %w", err)
		}

		log.Info().Msg("migration successful")
		return nil
	})
}

func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
