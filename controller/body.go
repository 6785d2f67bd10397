package controller

// Body is the rigid body driven by a Controller. Implementations forward to
// the physics integrator; the controller is the only writer.
type Body interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Velocity() (x, y float64)
	SetVelocity(x, y float64)
	Mass() float64
	GravityScale() float64
	SetGravityScale(scale float64)
	// ApplyImpulse changes velocity instantly by impulse/mass.
	ApplyImpulse(x, y float64)
	// ApplyForce accumulates a force for the next integration step.
	ApplyForce(x, y float64)
}

// PoleHandle is a weak reference to a climbable surface. The surface may be
// destroyed or deactivated at any time; callers must check Valid before
// trusting CenterX.
type PoleHandle interface {
	Valid() bool
	CenterX() float64
}

func validPole(p PoleHandle) PoleHandle {
	if p == nil || !p.Valid() {
		return nil
	}
	return p
}
