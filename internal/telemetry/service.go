// Package telemetry generates and serves simulated satellite readings.
//
// ListAll, ListForSatellite and Latest append a fresh sample before they
// query; History only reads.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"satellite-monitor-backend/internal/model"
	"satellite-monitor-backend/internal/orbit"
	"satellite-monitor-backend/internal/store"
)

// ErrUnknownSatellite is returned for ids outside the known roster.
var ErrUnknownSatellite = errors.New("unknown satellite")

// Publisher receives every freshly generated sample after it is stored.
type Publisher interface {
	Publish(ctx context.Context, samples []model.Telemetry) error
}

// Recorder counts generated samples.
type Recorder interface {
	SamplesGenerated(satelliteName string, n int)
}

// Option configures a Service.
type Option func(*Service)

// WithPublisher forwards generated samples to p.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithRecorder reports generated samples to r.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// Service implements the telemetry read paths.
type Service struct {
	store     store.TelemetryStore
	src       orbit.Source
	now       func() time.Time
	publisher Publisher
	recorder  Recorder

	seedMu sync.Mutex
	seeded atomic.Bool
}

// NewService creates a telemetry service over s drawing randomness from src.
func NewService(s store.TelemetryStore, src orbit.Source, opts ...Option) *Service {
	svc := &Service{
		store: s,
		src:   src,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ListAll appends one sample per known satellite and returns the newest
// limit rows across all of them.
func (s *Service) ListAll(ctx context.Context, limit int) ([]model.Telemetry, error) {
	now := s.now()
	if err := s.ensureSeeded(ctx, now); err != nil {
		return nil, err
	}

	profiles := orbit.Roster()
	samples := make([]model.Telemetry, 0, len(profiles))
	for _, p := range profiles {
		samples = append(samples, orbit.Sample(p, now, s.src))
	}
	if err := s.append(ctx, samples); err != nil {
		return nil, err
	}
	return s.store.Recent(ctx, 0, limit)
}

// ListForSatellite appends one sample for id and returns its newest limit rows.
func (s *Service) ListForSatellite(ctx context.Context, id int64, limit int) ([]model.Telemetry, error) {
	if err := s.generate(ctx, id); err != nil {
		return nil, err
	}
	return s.store.Recent(ctx, id, limit)
}

// Latest appends one sample for id and returns the newest row.
func (s *Service) Latest(ctx context.Context, id int64) (model.Telemetry, error) {
	if err := s.generate(ctx, id); err != nil {
		return model.Telemetry{}, err
	}
	return s.store.Latest(ctx, id)
}

// History returns the newest limit rows for id without generating a sample.
func (s *Service) History(ctx context.Context, id int64, limit int) ([]model.Telemetry, error) {
	if err := s.ensureSeeded(ctx, s.now()); err != nil {
		return nil, err
	}
	if _, ok := orbit.Lookup(id); !ok {
		return nil, fmt.Errorf("satellite %d: %w", id, ErrUnknownSatellite)
	}
	return s.store.Recent(ctx, id, limit)
}

// generate seeds if needed, validates id and stores one new sample for it.
func (s *Service) generate(ctx context.Context, id int64) error {
	now := s.now()
	if err := s.ensureSeeded(ctx, now); err != nil {
		return err
	}
	p, ok := orbit.Lookup(id)
	if !ok {
		return fmt.Errorf("satellite %d: %w", id, ErrUnknownSatellite)
	}
	return s.append(ctx, []model.Telemetry{orbit.Sample(p, now, s.src)})
}

func (s *Service) append(ctx context.Context, samples []model.Telemetry) error {
	if err := s.store.Append(ctx, samples); err != nil {
		return fmt.Errorf("store telemetry: %w", err)
	}
	s.emit(ctx, samples)
	return nil
}

func (s *Service) emit(ctx context.Context, samples []model.Telemetry) {
	if s.recorder != nil {
		for _, sm := range samples {
			s.recorder.SamplesGenerated(sm.SatelliteName, 1)
		}
	}
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, samples); err != nil {
		log.Printf("Warning: failed to publish %d telemetry samples: %v", len(samples), err)
	}
}

// ensureSeeded serializes first-time backfill within this process.
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
	seeded, err := s.store.EnsureSeeded(ctx, func() []model.Telemetry {
		return orbit.Backfill(now, s.src)
	})
	if err != nil {
		return fmt.Errorf("seed telemetry: %w", err)
	}
	if seeded && s.recorder != nil {
		for _, p := range orbit.Roster() {
			s.recorder.SamplesGenerated(p.Name, orbit.BackfillHours)
		}
	}
	return nil
}
