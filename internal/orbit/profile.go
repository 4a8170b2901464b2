package orbit

// Profile holds the fixed constants of one known satellite.
type Profile struct {
	ID            int64
	Name          string
	OrbitType     string
	BaselineHours float64 // operational time at first seed

	Altitude       float64 // km
	AltitudeJitter float64
	LatAmplitude   float64 // degrees
	AngularRate    float64 // radians per hour of time factor
	LatJitter      float64
	LonRate        float64 // degrees per hour of time factor
	LonJitter      float64
	BaseTemp       float64 // Celsius
	BaseBattery    float64 // percent
}

var roster = []Profile{
	{
		ID:             1,
		Name:           "Hubble Space Telescope",
		OrbitType:      "Low Earth Orbit",
		BaselineHours:  120000.0,
		Altitude:       540,
		AltitudeJitter: 10,
		LatAmplitude:   28.5,
		AngularRate:    0.1,
		LatJitter:      2,
		LonRate:        15,
		LonJitter:      5,
		BaseTemp:       20,
		BaseBattery:    85,
	},
	{
		ID:             2,
		Name:           "ISS (International Space Station)",
		OrbitType:      "Low Earth Orbit",
		BaselineHours:  175200.0,
		Altitude:       408,
		AltitudeJitter: 5,
		LatAmplitude:   51.6,
		AngularRate:    0.08,
		LatJitter:      1,
		LonRate:        12,
		LonJitter:      3,
		BaseTemp:       25,
		BaseBattery:    90,
	},
	{
		ID:             3,
		Name:           "NOAA-19",
		OrbitType:      "Polar Orbit",
		BaselineHours:  87600.0,
		Altitude:       870,
		AltitudeJitter: 15,
		LatAmplitude:   90,
		AngularRate:    0.05,
		LatJitter:      3,
		LonRate:        8,
		LonJitter:      2,
		BaseTemp:       15,
		BaseBattery:    75,
	},
}

// Roster returns a copy of the known satellites ordered by id.
func Roster() []Profile {
	out := make([]Profile, len(roster))
	copy(out, roster)
	return out
}

// Lookup returns the profile with the given id.
func Lookup(id int64) (Profile, bool) {
	for _, p := range roster {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}
