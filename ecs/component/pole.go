package component

// Pole is a climbable vertical surface centred on its Transform. An inactive
// pole is ignored by probes and drops any body latched to it.
type Pole struct {
	Width  float64
	Height float64
	Active bool
}

var PoleComponent = NewComponent[Pole]()
