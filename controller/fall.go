package controller

import (
	"math"

	"github.com/milk9111/springpole/common"
)

// minHeightMultiplier floors the jump height multiplier inside the square root.
const minHeightMultiplier = 0.01

// LandingOutcome says why a landing did or did not hurt.
type LandingOutcome int

const (
	LandingSafe LandingOutcome = iota
	LandingSafePole
	LandingSafeSpring
	LandingHurt
)

func (o LandingOutcome) String() string {
	switch o {
	case LandingSafe:
		return "safe"
	case LandingSafePole:
		return "safe_pole"
	case LandingSafeSpring:
		return "safe_spring"
	case LandingHurt:
		return "hurt"
	default:
		return "unknown"
	}
}

// LandingReport describes one landing evaluation.
type LandingReport struct {
	PeakY          float64
	LandingY       float64
	FallDistance   float64
	SafeFallHeight float64
	Outcome        LandingOutcome
}

func (r LandingReport) Damaged() bool {
	return r.Outcome == LandingHurt
}

// JumpImpulse is the vertical impulse of a jump with the given height
// multiplier. Height scales with the square of launch speed, so the impulse
// scales with the square root of the multiplier.
func JumpImpulse(impulse, heightMul float64) float64 {
	return impulse * math.Sqrt(math.Max(minHeightMultiplier, heightMul))
}

// SafeFallHeight is the apex height of a jump launched with the current
// impulse: v0 = J/m, h = v0^2 / 2g.
func SafeFallHeight(impulse, heightMul, mass, gravityY, gravityScale float64) float64 {
	v0 := JumpImpulse(impulse, heightMul) / math.Max(common.Epsilon, mass)
	g := math.Max(common.Epsilon, math.Abs(gravityY)*math.Max(common.Epsilon, gravityScale))
	return v0 * v0 / (2 * g)
}

// fallParams is the state a landing evaluation reads.
type fallParams struct {
	peakY, landingY    float64
	usedPole           bool
	springActive       bool
	springImmunity     bool
	impulse, heightMul float64
	mass               float64
	gravityY           float64
	baseGravityScale   float64
}

func evaluateLanding(p fallParams) LandingReport {
	r := LandingReport{
		PeakY:          p.peakY,
		LandingY:       p.landingY,
		FallDistance:   p.peakY - p.landingY,
		SafeFallHeight: SafeFallHeight(p.impulse, p.heightMul, p.mass, p.gravityY, p.baseGravityScale),
	}
	switch {
	case p.usedPole:
		r.Outcome = LandingSafePole
	case p.springActive && p.springImmunity:
		r.Outcome = LandingSafeSpring
	case r.FallDistance > r.SafeFallHeight:
		r.Outcome = LandingHurt
	default:
		r.Outcome = LandingSafe
	}
	return r
}
