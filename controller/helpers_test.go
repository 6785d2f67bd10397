package controller

import "math"

type fakeBody struct {
	x, y         float64
	vx, vy       float64
	mass         float64
	gravityScale float64
	forceX       float64
	forceY       float64
	impulses     int
}

func newFakeBody(x, y float64) *fakeBody {
	return &fakeBody{x: x, y: y, mass: 1, gravityScale: 1}
}

func (b *fakeBody) Position() (float64, float64) { return b.x, b.y }
func (b *fakeBody) SetPosition(x, y float64) { b.x, b.y = x, y }
func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) SetVelocity(x, y float64) { b.vx, b.vy = x, y }
func (b *fakeBody) Mass() float64 { return b.mass }
func (b *fakeBody) GravityScale() float64 { return b.gravityScale }
func (b *fakeBody) SetGravityScale(scale float64) { b.gravityScale = scale }
func (b *fakeBody) ApplyForce(x, y float64) { b.forceX += x; b.forceY += y }
func (b *fakeBody) ApplyImpulse(x, y float64) {
	m := math.Max(1e-4, b.mass)
	b.vx += x / m
	b.vy += y / m
	b.impulses++
}

type fakePole struct {
	x     float64
	valid bool
}

func (p *fakePole) Valid() bool { return p != nil && p.valid }
func (p *fakePole) CenterX() float64 { return p.x }

const frame = 1.0 / 60.0

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.JumpImpulse = 10
	cfg.GravityY = -20
	cfg.HurtDuration = 5
	return cfg
}

// recorder captures hook calls.
type recorder struct {
	landings []LandingReport
	phases   [][2]Phase
	jumps    []float64
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnLanding: func(rep LandingReport) { r.landings = append(r.landings, rep) },
		OnPhase:   func(from, to Phase) { r.phases = append(r.phases, [2]Phase{from, to}) },
		OnJump:    func(impulse float64) { r.jumps = append(r.jumps, impulse) },
	}
}

func (r *recorder) last() LandingReport {
	if len(r.landings) == 0 {
		return LandingReport{}
	}
	return r.landings[len(r.landings)-1]
}

// at places the body at y and advances one frame.
func at(c *Controller, b *fakeBody, y float64, in Inputs) {
	b.y = y
	c.Advance(frame, in)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
