package component

// TriggerVolume is a box centred on the entity Transform that reports
// overlaps without colliding.
type TriggerVolume struct {
	Width  float64
	Height float64
}

var TriggerVolumeComponent = NewComponent[TriggerVolume]()

// Occupancy records the trigger entities a body overlaps, keyed by the raw
// entity handle. Entered and Exited hold this frame's edges only.
type Occupancy struct {
	Inside  map[uint64]bool
	Entered []uint64
	Exited  []uint64
}

var OccupancyComponent = NewComponent[Occupancy]()
