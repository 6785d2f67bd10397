package ecs

// Clock is the simulation time shared by all systems.
type Clock struct {
	// FrameDelta is the scaled time of the current frame in seconds.
	FrameDelta float64
	// FixedDelta is the length of one physics step in seconds.
	FixedDelta float64
	// TimeScale multiplies real time. Zero freezes the simulation.
	TimeScale float64
	Paused    bool

	Elapsed    float64
	Frames     uint64
	FixedSteps uint64
}

// Scale converts a real delta into simulation time.
func (c *Clock) Scale(real float64) float64 {
	if c == nil || c.Paused || c.TimeScale <= 0 || real <= 0 {
		return 0
	}
	return real * c.TimeScale
}

// Pause freezes the clock, the equivalent of a zero time scale.
func (c *Clock) Pause() {
	if c == nil {
		return
	}
	c.Paused = true
}
