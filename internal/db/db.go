package db

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"satellite-monitor-backend/config"
	"satellite-monitor-backend/internal/model"
)

// StatusModels are the tables owned by the status service.
func StatusModels() []any { return []any{&model.Satellite{}} }

// TelemetryModels are the tables owned by the telemetry service.
func TelemetryModels() []any { return []any{&model.Telemetry{}} }

// UserModels are the tables owned by the users service.
func UserModels() []any { return []any{&model.User{}} }

// Init opens the configured database, sizes its pool and creates missing tables.
func Init(cfg *config.DatabaseConfig, models ...any) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(LogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Printf("Running database migrations (%s)...", cfg.Driver)
	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	log.Println("Database initialization complete.")
	return db, nil
}

// Dialector picks the gorm driver named by cfg.Driver.
func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is empty for driver %q", cfg.Driver)
	}
	switch strings.ToLower(cfg.Driver) {
	case "", "sqlite", "sqlite3":
		return sqlite.Open(cfg.DSN), nil
	case "postgres", "postgresql":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// LogLevel converts a config string into a gorm log level, defaulting to warn.
func LogLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
