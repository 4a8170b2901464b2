package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"satellite-monitor-backend/internal/model"
)

const seedBatchSize = 100

// gormTelemetryStore implements TelemetryStore using GORM.
type gormTelemetryStore struct {
	db *gorm.DB
}

// NewGormTelemetryStore creates a new GORM-backed telemetry store.
func NewGormTelemetryStore(db *gorm.DB) TelemetryStore {
	return &gormTelemetryStore{db: db}
}

func (s *gormTelemetryStore) EnsureSeeded(ctx context.Context, backfill func() []model.Telemetry) (bool, error) {
	var seeded bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Telemetry{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count telemetry: %w", err)
		}
		if count > 0 {
			return nil
		}

		rows := backfill()
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&rows, seedBatchSize).Error; err != nil {
			return fmt.Errorf("failed to seed telemetry: %w", err)
		}
		seeded = true
		return nil
	})
	return seeded, err
}

func (s *gormTelemetryStore) Append(ctx context.Context, samples []model.Telemetry) error {
	if len(samples) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&samples).Error; err != nil {
		return fmt.Errorf("failed to append telemetry: %w", err)
	}
	return nil
}

func (s *gormTelemetryStore) Recent(ctx context.Context, satelliteID int64, limit int) ([]model.Telemetry, error) {
	q := s.newestFirst(ctx).Limit(limit)
	if satelliteID != 0 {
		q = q.Where("satellite_id = ?", satelliteID)
	}

	var rows []model.Telemetry
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query telemetry: %w", err)
	}
	return rows, nil
}

func (s *gormTelemetryStore) Latest(ctx context.Context, satelliteID int64) (model.Telemetry, error) {
	var row model.Telemetry
	err := s.newestFirst(ctx).Where("satellite_id = ?", satelliteID).Take(&row).Error
	return row, notFound(err, "telemetry for satellite %d", satelliteID)
}

func (s *gormTelemetryStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Telemetry{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count telemetry: %w", err)
	}
	return count, nil
}

// newestFirst orders by timestamp, breaking ties by insertion order.
func (s *gormTelemetryStore) newestFirst(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Order("timestamp DESC").Order("id DESC")
}
