// Package status serves the satellite roster. Every read first advances each
// satellite's operational time, so repeated reads observe growing values.
package status

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"satellite-monitor-backend/internal/model"
	"satellite-monitor-backend/internal/orbit"
	"satellite-monitor-backend/internal/store"
)

const (
	minStepHours = 0.1
	maxStepHours = 0.5
)

// Service implements seed, advance, then query for the status endpoints.
type Service struct {
	store store.StatusStore
	src   orbit.Source
	now   func() time.Time

	seedMu sync.Mutex
	seeded atomic.Bool
}

// NewService creates a status service over s drawing randomness from src.
func NewService(s store.StatusStore, src orbit.Source) *Service {
	return &Service{
		store: s,
		src:   src,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// List returns every satellite after advancing their clocks.
func (s *Service) List(ctx context.Context) ([]model.Satellite, error) {
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return s.store.List(ctx)
}

// Get returns one satellite by id, or an error wrapping store.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (model.Satellite, error) {
	if err := s.refresh(ctx); err != nil {
		return model.Satellite{}, err
	}
	return s.store.Get(ctx, id)
}

// GetByName returns one satellite by exact name, or an error wrapping store.ErrNotFound.
func (s *Service) GetByName(ctx context.Context, name string) (model.Satellite, error) {
	if err := s.refresh(ctx); err != nil {
		return model.Satellite{}, err
	}
	return s.store.GetByName(ctx, name)
}

// refresh seeds an empty roster and then advances every operational-time counter.
func (s *Service) refresh(ctx context.Context) error {
	now := s.now()
	if err := s.ensureSeeded(ctx, now); err != nil {
		return err
	}
	if err := s.store.Advance(ctx, now, s.step); err != nil {
		return fmt.Errorf("advance operational time: %w", err)
	}
	return nil
}

// ensureSeeded serializes first-time seeding within this process.
func (s *Service) ensureSeeded(ctx context.Context, now time.Time) error {
	if s.seeded.Load() {
		return s.seed(ctx, now)
	}
	s.seedMu.Lock()
	defer s.seedMu.Unlock()
	if err := s.seed(ctx, now); err != nil {
		return err
	}
	s.seeded.Store(true)
	return nil
}

func (s *Service) seed(ctx context.Context, now time.Time) error {
	if _, err := s.store.EnsureSeeded(ctx, Roster(now)); err != nil {
		return fmt.Errorf("seed satellites: %w", err)
	}
	return nil
}

func (s *Service) step() float64 {
	return orbit.Uniform(s.src, minStepHours, maxStepHours)
}

// Roster builds the initial status rows from the known profiles.
func Roster(now time.Time) []model.Satellite {
	profiles := orbit.Roster()
	rows := make([]model.Satellite, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, model.Satellite{
			ID:              p.ID,
			Name:            p.Name,
			Status:          true,
			OrbitType:       p.OrbitType,
			OperationalTime: p.BaselineHours,
			LastUpdate:      now,
		})
	}
	return rows
}
