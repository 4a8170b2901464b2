// Package orbit produces synthetic telemetry for the fixed satellite roster.
// Values follow a cheap trigonometric track with bounded noise, not real
// orbital mechanics.
package orbit

import (
	"math"
	"time"

	"satellite-monitor-backend/internal/model"
)

const (
	temperatureJitter = 5
	batteryJitter     = 3
)

// Sample returns one reading for p at the given reference time.
// The returned row has no id; the store assigns it.
func Sample(p Profile, at time.Time, src Source) model.Telemetry {
	timeFactor := HoursSinceEpoch(at)

	altitude := p.Altitude + Jitter(src, p.AltitudeJitter)
	latitude := p.LatAmplitude*math.Sin(timeFactor*p.AngularRate) + Jitter(src, p.LatJitter)
	longitude := math.Mod(timeFactor*p.LonRate, 360) + Jitter(src, p.LonJitter)

	return model.Telemetry{
		SatelliteID:   p.ID,
		SatelliteName: p.Name,
		Temperature:   p.BaseTemp + Jitter(src, temperatureJitter),
		BatteryLevel:  clamp(p.BaseBattery+Jitter(src, batteryJitter), 0, 100),
		Latitude:      clamp(latitude, -90, 90),
		Longitude:     NormalizeLongitude(longitude),
		Altitude:      math.Max(0, altitude),
		Timestamp:     at,
	}
}

// HoursSinceEpoch is the slowly varying phase of the track.
func HoursSinceEpoch(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Hour)
}

// NormalizeLongitude maps any angle into [0, 360).
func NormalizeLongitude(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	// r+360 can round up to exactly 360 for tiny negative inputs.
	if r >= 360 {
		r = 0
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
