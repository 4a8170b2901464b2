package model

import "time"

// Satellite is the status record of one roster entry.
type Satellite struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Status          bool      `gorm:"not null" json:"status"` // true = active
	OrbitType       string    `gorm:"size:50;not null" json:"orbit_type"`
	OperationalTime float64   `gorm:"not null" json:"operational_time"` // hours
	LastUpdate      time.Time `gorm:"not null" json:"last_update"`
}
