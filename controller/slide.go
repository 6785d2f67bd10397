package controller

// Phase is the pole slide state of the controller.
type Phase int

const (
	PhaseGrounded Phase = iota
	PhaseAirborneFree
	PhaseAirborneSliding
)

func (p Phase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseAirborneFree:
		return "airborne"
	case PhaseAirborneSliding:
		return "sliding"
	default:
		return "unknown"
	}
}

// SlideState tracks the latched pole. Sliding always implies a latched
// pole; losing the pole ends the slide on the same frame.
type SlideState struct {
	phase    Phase
	latched  PoleHandle
	usedPole bool
}

func (s *SlideState) Phase() Phase {
	return s.phase
}

func (s *SlideState) Sliding() bool {
	return s.phase == PhaseAirborneSliding
}

// Latched returns the latched pole or nil.
func (s *SlideState) Latched() PoleHandle {
	return s.latched
}

// UsedPoleThisAirtime reports whether a pole was touched since the body was
// last settled on the ground.
func (s *SlideState) UsedPoleThisAirtime() bool {
	return s.usedPole
}

// slideUpdate is the result of one frame of slide evaluation.
type slideUpdate struct {
	from, to       Phase
	restoreGravity bool
}

// update runs the automatic latch and unlatch rules for one frame.
func (s *SlideState) update(grounded bool, touching PoleHandle) slideUpdate {
	res := slideUpdate{from: s.phase}
	if grounded {
		s.phase = PhaseGrounded
		s.latched = nil
		res.restoreGravity = true
		res.to = s.phase
		return res
	}

	if s.phase == PhaseGrounded {
		s.phase = PhaseAirborneFree
	}

	if s.phase != PhaseAirborneSliding {
		if p := validPole(touching); p != nil {
			s.phase = PhaseAirborneSliding
			s.latched = p
			s.usedPole = true
		}
	}

	if s.phase == PhaseAirborneSliding && validPole(s.latched) == nil {
		s.phase = PhaseAirborneFree
		s.latched = nil
		res.restoreGravity = true
	}

	res.to = s.phase
	return res
}

// jump reports whether a jump is allowed and, if so, drops any latch.
func (s *SlideState) jump(grounded bool) (Phase, bool) {
	from := s.phase
	if !grounded && s.phase != PhaseAirborneSliding {
		return from, false
	}
	s.phase = PhaseAirborneFree
	s.latched = nil
	return from, true
}

// settle clears the used pole flag once the body has been grounded for a
// full frame after landing.
func (s *SlideState) settle(grounded, wasGrounded bool) {
	if grounded && wasGrounded {
		s.usedPole = false
	}
}
