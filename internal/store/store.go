package store

import (
	"context"
	"errors"
	"time"

	"satellite-monitor-backend/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// StatusStore persists the satellite roster.
type StatusStore interface {
	// EnsureSeeded inserts roster when the table is empty and reports whether it did.
	EnsureSeeded(ctx context.Context, roster []model.Satellite) (bool, error)
	// Advance adds step() hours to every satellite's operational time in one transaction.
	Advance(ctx context.Context, now time.Time, step func() float64) error
	List(ctx context.Context) ([]model.Satellite, error)
	Get(ctx context.Context, id int64) (model.Satellite, error)
	GetByName(ctx context.Context, name string) (model.Satellite, error)
}

// TelemetryStore is an append-only log of telemetry samples.
type TelemetryStore interface {
	// EnsureSeeded stores the rows produced by backfill when the log is empty.
	EnsureSeeded(ctx context.Context, backfill func() []model.Telemetry) (bool, error)
	Append(ctx context.Context, samples []model.Telemetry) error
	// Recent returns up to limit rows, newest first. A zero satelliteID spans all satellites.
	Recent(ctx context.Context, satelliteID int64, limit int) ([]model.Telemetry, error)
	Latest(ctx context.Context, satelliteID int64) (model.Telemetry, error)
	Count(ctx context.Context) (int64, error)
}

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	List(ctx context.Context, skip, limit int) ([]model.User, error)
	Get(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}
