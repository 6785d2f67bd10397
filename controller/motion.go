package controller

import (
	"math"

	"github.com/milk9111/springpole/common"
)

// motionFrame is the decision phase output the integrator reads. It is
// frozen for every fixed step until the next Advance.
type motionFrame struct {
	moveX    float64
	speedMul float64
	sliding  bool
	latched  PoleHandle
	wind     WindField
}

// integrate composes movement, wind and the slide override for one fixed step.
func integrate(body Body, cfg Config, f motionFrame, dt float64) {
	_, vy := body.Velocity()

	mul := f.speedMul
	if f.sliding {
		mul *= cfg.SlideControlFactor
	}
	vx := f.moveX * cfg.MoveSpeed * mul

	if math.Abs(f.wind.ForceX) > cfg.WindForceEpsilon {
		body.ApplyForce(f.wind.ForceX, 0)
	}
	if f.wind.Drag > 0 {
		vx *= common.Clamp01(1 - f.wind.Drag)
	}

	pole := validPole(f.latched)
	if !f.sliding || pole == nil {
		body.SetVelocity(vx, vy)
		return
	}

	body.SetGravityScale(cfg.SlideGravityScale)

	x, y := body.Position()
	body.SetPosition(common.Lerp(x, pole.CenterX(), cfg.PoleSnapSpeed*dt), y)

	// Always keep sliding down so contact friction cannot pin the body.
	vy = math.Min(vy, -cfg.SlideMinDownSpeed)
	vy = math.Max(vy, -cfg.SlideMaxFallSpeed)
	body.SetVelocity(vx, vy)
}

// applyJump zeroes vertical velocity and applies the jump impulse upwards.
func applyJump(body Body, impulse float64) {
	vx, _ := body.Velocity()
	body.SetVelocity(vx, 0)
	body.ApplyImpulse(0, impulse)
}
