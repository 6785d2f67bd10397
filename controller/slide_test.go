package controller

import "testing"

func TestSlideStateTransitions(t *testing.T) {
	pole := &fakePole{x: 2, valid: true}
	var s SlideState

	steps := []struct {
		name     string
		grounded bool
		touching PoleHandle
		want     Phase
		restore  bool
	}{
		{"start_grounded", true, nil, PhaseGrounded, true},
		{"leave_ground", false, nil, PhaseAirborneFree, false},
		{"touch_pole", false, pole, PhaseAirborneSliding, false},
		{"keep_sliding_off_probe", false, nil, PhaseAirborneSliding, false},
		{"land", true, nil, PhaseGrounded, true},
	}
	for _, step := range steps {
		res := s.update(step.grounded, step.touching)
		if res.to != step.want || s.Phase() != step.want {
			t.Fatalf("%s: phase = %v, want %v", step.name, s.Phase(), step.want)
		}
		if res.restoreGravity != step.restore {
			t.Fatalf("%s: restore = %v, want %v", step.name, res.restoreGravity, step.restore)
		}
		if s.Sliding() != (s.Latched() != nil) {
			t.Fatalf("%s: sliding=%v latched=%v", step.name, s.Sliding(), s.Latched())
		}
	}
}

func TestSlideStateInvalidPoleNeverLatches(t *testing.T) {
	var s SlideState
	s.update(false, &fakePole{valid: false})
	if s.Sliding() || s.UsedPoleThisAirtime() {
		t.Fatalf("latched an invalid pole")
	}
}

func TestSlideStateUsedPoleClearsAfterTwoGroundedFrames(t *testing.T) {
	var s SlideState
	s.update(false, &fakePole{valid: true})
	if !s.UsedPoleThisAirtime() {
		t.Fatalf("touch did not mark the pole as used")
	}

	// Landing frame: grounded but not yet settled.
	s.update(true, nil)
	s.settle(true, false)
	if !s.UsedPoleThisAirtime() {
		t.Fatalf("flag cleared on the landing frame")
	}

	s.update(true, nil)
	s.settle(true, true)
	if s.UsedPoleThisAirtime() {
		t.Fatalf("flag kept after a settled frame")
	}
}

func TestSlideStateJump(t *testing.T) {
	cases := []struct {
		name     string
		setup    func(*SlideState)
		grounded bool
		allowed  bool
	}{
		{"grounded", func(s *SlideState) { s.update(true, nil) }, true, true},
		{"sliding", func(s *SlideState) { s.update(false, &fakePole{valid: true}) }, false, true},
		{"free_fall", func(s *SlideState) { s.update(false, nil) }, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var s SlideState
			c.setup(&s)
			from := s.Phase()
			got, ok := s.jump(c.grounded)
			if ok != c.allowed || got != from {
				t.Fatalf("jump = (%v, %v), want (%v, %v)", got, ok, from, c.allowed)
			}
			if ok && (s.Phase() != PhaseAirborneFree || s.Latched() != nil) {
				t.Fatalf("after jump phase=%v latched=%v", s.Phase(), s.Latched())
			}
		})
	}
}
