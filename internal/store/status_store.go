package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"satellite-monitor-backend/internal/model"
)

// gormStatusStore implements StatusStore using GORM.
type gormStatusStore struct {
	db *gorm.DB
}

// NewGormStatusStore creates a new GORM-backed status store.
func NewGormStatusStore(db *gorm.DB) StatusStore {
	return &gormStatusStore{db: db}
}

func (s *gormStatusStore) EnsureSeeded(ctx context.Context, roster []model.Satellite) (bool, error) {
	var seeded bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Satellite{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count satellites: %w", err)
		}
		if count > 0 || len(roster) == 0 {
			return nil
		}

		rows := make([]model.Satellite, len(roster))
		copy(rows, roster)
		// A concurrent seeder may have won; the unique name index makes this a no-op.
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&rows)
		if res.Error != nil {
			return fmt.Errorf("failed to seed satellites: %w", res.Error)
		}
		seeded = res.RowsAffected > 0
		return nil
	})
	return seeded, err
}

func (s *gormStatusStore) Advance(ctx context.Context, now time.Time, step func() float64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []int64
		if err := tx.Model(&model.Satellite{}).Order("id").Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to list satellite ids: %w", err)
		}
		for _, id := range ids {
			// Increment in SQL so concurrent readers never lose an update.
			if err := tx.Model(&model.Satellite{}).Where("id = ?", id).Updates(map[string]any{
				"operational_time": gorm.Expr("operational_time + ?", step()),
				"last_update":      now,
			}).Error; err != nil {
				return fmt.Errorf("failed to advance satellite %d: %w", id, err)
			}
		}
		return nil
	})
}

func (s *gormStatusStore) List(ctx context.Context) ([]model.Satellite, error) {
	var sats []model.Satellite
	if err := s.db.WithContext(ctx).Order("id").Find(&sats).Error; err != nil {
		return nil, fmt.Errorf("failed to list satellites: %w", err)
	}
	return sats, nil
}

func (s *gormStatusStore) Get(ctx context.Context, id int64) (model.Satellite, error) {
	var sat model.Satellite
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&sat).Error
	return sat, notFound(err, "satellite %d", id)
}

func (s *gormStatusStore) GetByName(ctx context.Context, name string) (model.Satellite, error) {
	var sat model.Satellite
	err := s.db.WithContext(ctx).Where("name = ?", name).Take(&sat).Error
	return sat, notFound(err, "satellite %q", name)
}

// notFound maps gorm's missing-row error onto ErrNotFound and wraps the rest.
func notFound(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to load %s: %w", what, err)
}
