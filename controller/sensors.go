package controller

// GroundProbe is a circle relative to the body position.
type GroundProbe struct {
	OffsetX, OffsetY float64
	Radius           float64
}

// PoleProbe is a box relative to the body position.
type PoleProbe struct {
	OffsetX, OffsetY float64
	Width, Height    float64
}

// Overlapper answers overlap queries against the physical world.
type Overlapper interface {
	OverlapGround(x, y, radius float64) bool
	OverlapPole(x, y, width, height float64) PoleHandle
}

// ContactSensors samples ground and pole contact around a body position.
// A missing probe or world reports no contact.
type ContactSensors struct {
	World  Overlapper
	Ground *GroundProbe
	Pole   *PoleProbe
}

func (s ContactSensors) Grounded(x, y float64) bool {
	if s.World == nil || s.Ground == nil || s.Ground.Radius <= 0 {
		return false
	}
	return s.World.OverlapGround(x+s.Ground.OffsetX, y+s.Ground.OffsetY, s.Ground.Radius)
}

func (s ContactSensors) TouchingPole(x, y float64) PoleHandle {
	if s.World == nil || s.Pole == nil || s.Pole.Width <= 0 || s.Pole.Height <= 0 {
		return nil
	}
	return validPole(s.World.OverlapPole(x+s.Pole.OffsetX, y+s.Pole.OffsetY, s.Pole.Width, s.Pole.Height))
}

// Sample fills the contact fields of an Inputs value for a body position.
func (s ContactSensors) Sample(x, y float64, in Inputs) Inputs {
	in.Grounded = s.Grounded(x, y)
	in.Pole = s.TouchingPole(x, y)
	return in
}
