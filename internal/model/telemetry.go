package model

import "time"

// Telemetry is one simulated reading of a satellite. Rows are never updated.
type Telemetry struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	SatelliteID   int64     `gorm:"not null;index:idx_telemetry_satellite_ts,priority:1" json:"satellite_id"`
	SatelliteName string    `gorm:"size:100;not null" json:"satellite_name"`
	Temperature   float64   `gorm:"not null" json:"temperature"`   // Celsius
	BatteryLevel  float64   `gorm:"not null" json:"battery_level"` // percent
	Latitude      float64   `gorm:"not null" json:"latitude"`
	Longitude     float64   `gorm:"not null" json:"longitude"`
	Altitude      float64   `gorm:"not null" json:"altitude"` // km
	Timestamp     time.Time `gorm:"not null;index:idx_telemetry_satellite_ts,priority:2" json:"timestamp"`
}

// TableName keeps the table name singular.
func (Telemetry) TableName() string {
	return "telemetry"
}
