// Package database opens, migrates and seeds the gorm connection.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pim-suite/mycontacts/internal/config"
	"github.com/pim-suite/mycontacts/internal/db/dsn"
	"github.com/pim-suite/mycontacts/internal/db/models"
	"github.com/pim-suite/mycontacts/internal/logger/adapter/stdlogger"
)

const slowQueryThreshold = 200 * time.Millisecond

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	source := dsn.Create(cfg)

	switch cfg.DB.GormEngine {
	case config.EngineMySQL, "":
		return gormmysql.Open(source), nil
	case config.EnginePostgres:
		return postgres.Open(source), nil
	case config.EngineSQLite:
		return sqlite.Open(source), nil
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedGormEngine, cfg.DB.GormEngine)
	}
}

// Open connects to the configured database and applies the pool settings.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger(cfg)})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DB.GormEngine, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	if cfg.DB.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}

	if cfg.DB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}

	log.Info().Str("engine", cfg.DB.GormEngine).Str("name", cfg.DB.Name).Msg("database connected")

	return db, nil
}

// Migrate creates or updates the tables of all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.ContactType{},
		&models.ContactGroup{},
		&models.Contact{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// Close closes the underlying connection pool unless ctx is done first.
func Close(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- sqlDB.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err = <-done:
		return err
	}
}

func newLogger(cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg.DevMode || cfg.Log.SQLLog {
		level = gormlogger.Info
	}

	return gormlogger.New(stdlogger.NewComponent("gorm", zerolog.WarnLevel), gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
