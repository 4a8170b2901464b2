package orbit

import (
	"time"

	"satellite-monitor-backend/internal/model"
)

// BackfillHours is the length of the synthetic history seeded per satellite.
const BackfillHours = 24

// Backfill simulates the last day of readings for every known satellite.
// Slot i lies in the hour starting at now-i h, at a random minute and second;
// a slot that would fall after now is pinned to now.
func Backfill(now time.Time, src Source) []model.Telemetry {
	out := make([]model.Telemetry, 0, len(roster)*BackfillHours)
	for _, p := range roster {
		for i := 0; i < BackfillHours; i++ {
			ts := now.Add(-time.Duration(i) * time.Hour).Truncate(time.Hour).
				Add(time.Duration(src.IntN(60))*time.Minute + time.Duration(src.IntN(60))*time.Second)
			if ts.After(now) {
				ts = now
			}
			out = append(out, Sample(p, ts, src))
		}
	}
	return out
}
