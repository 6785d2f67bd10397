package controller

import (
	"math"

	"github.com/milk9111/springpole/common"
)

// Inputs is everything the decision phase consumes for one frame.
type Inputs struct {
	Grounded bool
	// Pole is the pole currently overlapping the pole probe, or nil.
	Pole PoleHandle
	// MoveX is the raw horizontal axis in [-1, 1].
	MoveX float64
	// JumpPressed is true only on the frame the jump was requested.
	JumpPressed bool
}

// Hooks are optional notifications fired from inside Advance.
type Hooks struct {
	OnLanding func(LandingReport)
	OnPhase   func(from, to Phase)
	OnJump    func(impulse float64)
}

// State is a read-only snapshot of the controller.
type State struct {
	Phase               Phase
	Grounded            bool
	PeakY               float64
	HurtRemaining       float64
	SpringActive        bool
	SpringRemaining     float64
	UsedPoleThisAirtime bool
	FacingLeft          bool
	Wind                WindField
	GravityScale        float64
}

// Controller drives one body. Advance runs once per rendered frame and
// Integrate runs for every fixed physics step in between.
type Controller struct {
	cfg   Config
	body  Body
	hooks Hooks

	baseGravityScale float64

	grounded    bool
	wasGrounded bool
	pole        PoleHandle

	airborne AirborneTracker
	status   StatusEffects
	slide    SlideState
	wind     WindField

	moveX      float64
	facingLeft bool
}

// New creates a controller for body. The body's current gravity scale is
// kept as the baseline restored after sliding.
func New(cfg Config, body Body) *Controller {
	c := &Controller{cfg: cfg, body: body, baseGravityScale: 1}
	if body != nil {
		c.baseGravityScale = body.GravityScale()
		_, y := body.Position()
		c.airborne.Reset(y)
	}
	return c
}

func (c *Controller) SetHooks(h Hooks) {
	if c == nil {
		return
	}
	c.hooks = h
}

func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// SetConfig swaps the tuning. Running timers and the slide state are kept.
func (c *Controller) SetConfig(cfg Config) {
	if c == nil {
		return
	}
	c.cfg = cfg
}

func (c *Controller) Body() Body {
	if c == nil {
		return nil
	}
	return c.body
}

// Advance runs the decision phase for one frame.
func (c *Controller) Advance(frameDelta float64, in Inputs) {
	if c == nil || c.body == nil {
		return
	}

	c.wasGrounded = c.grounded
	c.grounded = in.Grounded
	c.pole = validPole(in.Pole)
	_, y := c.body.Position()

	c.airborne.Update(c.grounded, c.wasGrounded, y)
	c.status.Tick(frameDelta)

	if !c.wasGrounded && c.grounded {
		c.land(y)
	}

	res := c.slide.update(c.grounded, c.pole)
	if res.restoreGravity {
		c.body.SetGravityScale(c.baseGravityScale)
	}
	c.notifyPhase(res.from, res.to)

	if in.JumpPressed {
		c.jump()
	}

	c.moveX = common.Clamp(in.MoveX, -1, 1)
	c.updateFacing()

	c.slide.settle(c.grounded, c.wasGrounded)
}

// Integrate runs one fixed physics step of movement composition. It reads
// the last Advance output and never changes the slide state or timers.
func (c *Controller) Integrate(fixedDelta float64) {
	if c == nil || c.body == nil {
		return
	}
	integrate(c.body, c.cfg, motionFrame{
		moveX:    c.moveX,
		speedMul: c.status.SpeedMultiplier(c.cfg.HurtSpeedMultiplier),
		sliding:  c.slide.Sliding(),
		latched:  c.slide.Latched(),
		wind:     c.wind,
	}, fixedDelta)
}

// ActivateBuff turns the spring shoes on for durationSeconds. A
// non-positive duration never expires.
func (c *Controller) ActivateBuff(durationSeconds float64) {
	if c == nil {
		return
	}
	c.status.ActivateSpring(durationSeconds)
}

// SetWind replaces the active wind field. drag is clamped to [0, 1].
func (c *Controller) SetWind(forceX, drag float64) {
	if c == nil {
		return
	}
	c.wind.Set(forceX, drag)
}

func (c *Controller) ClearWind() {
	if c == nil {
		return
	}
	c.wind.Clear()
}

// SafeFallHeight is the current damage-free fall distance.
func (c *Controller) SafeFallHeight() float64 {
	if c == nil || c.body == nil {
		return 0
	}
	return SafeFallHeight(c.cfg.JumpImpulse, c.heightMultiplier(), c.body.Mass(), c.cfg.GravityY, c.baseGravityScale)
}

func (c *Controller) State() State {
	if c == nil {
		return State{}
	}
	s := State{
		Phase:               c.slide.Phase(),
		Grounded:            c.grounded,
		PeakY:               c.airborne.Peak(),
		HurtRemaining:       c.status.HurtRemaining(),
		SpringActive:        c.status.SpringActive(),
		SpringRemaining:     c.status.SpringRemaining(),
		UsedPoleThisAirtime: c.slide.UsedPoleThisAirtime(),
		FacingLeft:          c.facingLeft,
		Wind:                c.wind,
	}
	if c.body != nil {
		s.GravityScale = c.body.GravityScale()
	}
	return s
}

// LatchedPole returns the pole being slid on, or nil.
func (c *Controller) LatchedPole() PoleHandle {
	if c == nil {
		return nil
	}
	return c.slide.Latched()
}

func (c *Controller) heightMultiplier() float64 {
	return c.status.JumpHeightMultiplier(c.cfg.SpringJumpHeightMultiplier)
}

func (c *Controller) land(y float64) {
	report := evaluateLanding(fallParams{
		peakY:            c.airborne.Peak(),
		landingY:         y,
		usedPole:         c.slide.UsedPoleThisAirtime(),
		springActive:     c.status.SpringActive(),
		springImmunity:   c.cfg.SpringPreventsFallDamage,
		impulse:          c.cfg.JumpImpulse,
		heightMul:        c.heightMultiplier(),
		mass:             c.body.Mass(),
		gravityY:         c.cfg.GravityY,
		baseGravityScale: c.baseGravityScale,
	})
	if report.Damaged() {
		c.status.Hurt(c.cfg.HurtDuration)
	}
	if c.hooks.OnLanding != nil {
		c.hooks.OnLanding(report)
	}
}

func (c *Controller) jump() {
	from, ok := c.slide.jump(c.grounded)
	if !ok {
		return
	}
	c.body.SetGravityScale(c.baseGravityScale)
	c.notifyPhase(from, c.slide.Phase())

	impulse := JumpImpulse(c.cfg.JumpImpulse, c.heightMultiplier())
	applyJump(c.body, impulse)
	if c.hooks.OnJump != nil {
		c.hooks.OnJump(impulse)
	}
}

func (c *Controller) updateFacing() {
	vx, _ := c.body.Velocity()
	if math.Abs(vx) > c.cfg.FacingThreshold {
		c.facingLeft = vx < 0
	}
}

func (c *Controller) notifyPhase(from, to Phase) {
	if from == to || c.hooks.OnPhase == nil {
		return
	}
	c.hooks.OnPhase(from, to)
}
