package controller

import "math"

// StatusEffects holds the timed hurt slowdown and the spring shoes buff.
type StatusEffects struct {
	hurtRemaining   float64
	springActive    bool
	springRemaining float64
}

// ActivateSpring turns the spring shoes on. duration <= 0 never expires.
// Re-activation replaces the remaining time.
func (s *StatusEffects) ActivateSpring(duration float64) {
	s.springActive = true
	s.springRemaining = duration
}

func (s *StatusEffects) Hurt(duration float64) {
	s.hurtRemaining = math.Max(0, duration)
}

// Tick advances the timers by dt seconds.
func (s *StatusEffects) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	if s.hurtRemaining > 0 {
		s.hurtRemaining = math.Max(0, s.hurtRemaining-dt)
	}
	if s.springActive && s.springRemaining > 0 {
		s.springRemaining -= dt
		if s.springRemaining <= 0 {
			s.springActive = false
			s.springRemaining = 0
		}
	}
}

func (s *StatusEffects) Hurting() bool {
	return s.hurtRemaining > 0
}

func (s *StatusEffects) HurtRemaining() float64 {
	return s.hurtRemaining
}

func (s *StatusEffects) SpringActive() bool {
	return s.springActive
}

// SpringRemaining is the time left on the buff. Non-positive while active
// means the buff is permanent.
func (s *StatusEffects) SpringRemaining() float64 {
	return s.springRemaining
}

// SpeedMultiplier returns hurtMul while hurt, else 1.
func (s *StatusEffects) SpeedMultiplier(hurtMul float64) float64 {
	if s.Hurting() {
		return hurtMul
	}
	return 1
}

// JumpHeightMultiplier returns springMul while the spring shoes are on, else 1.
func (s *StatusEffects) JumpHeightMultiplier(springMul float64) float64 {
	if s.springActive {
		return springMul
	}
	return 1
}
