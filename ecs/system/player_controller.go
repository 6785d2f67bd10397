package system

import (
	"log"
	"math"

	"github.com/milk9111/springpole/controller"
	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
)

// PlayerControllerSystem runs the decision phase of every controller once
// per frame: contact sampling, timers, landing, pole latch and jump.
type PlayerControllerSystem struct {
	physics *PhysicsSystem
	overlap *SpaceOverlapper
}

func NewPlayerControllerSystem(physics *PhysicsSystem) *PlayerControllerSystem {
	return &PlayerControllerSystem{physics: physics}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	if p.overlap == nil || p.overlap.world != w {
		p.overlap = NewSpaceOverlapper(w, p.physics.Space())
	}

	dt := w.Clock().FrameDelta
	ecs.ForEach2(w, component.ControllerComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, c *component.Controller, _ *component.PhysicsBody) {
		if c.Ctrl == nil && !p.attach(w, e, c) {
			return
		}

		in := controller.Inputs{}
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			in.MoveX = input.MoveX
			in.JumpPressed = input.JumpPressed
			input.JumpPressed = false
		}

		sensors := controller.ContactSensors{World: p.overlap, Ground: &c.Ground, Pole: &c.Pole}
		x, y := c.Ctrl.Body().Position()
		c.Ctrl.Advance(dt, sensors.Sample(x, y, in))

		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			scale := math.Abs(t.ScaleX)
			if scale == 0 {
				scale = 1
			}
			if c.Ctrl.State().FacingLeft {
				scale = -scale
			}
			t.ScaleX = scale
		}
	})
}

func (p *PlayerControllerSystem) attach(w *ecs.World, e ecs.Entity, c *component.Controller) bool {
	body, ok := p.physics.Body(w, e)
	if !ok {
		log.Printf("PlayerControllerSystem: entity %v has no dynamic body", e)
		return false
	}
	c.Ctrl = controller.New(c.Config, body)
	events := w.Events()
	c.Ctrl.SetHooks(controller.Hooks{
		OnLanding: func(r controller.LandingReport) {
			events.Push(ecs.Event{Type: ecs.EventLanding, Entity: e, Data: r})
		},
		OnPhase: func(from, to controller.Phase) {
			events.Push(ecs.Event{Type: ecs.EventPhase, Entity: e, Data: [2]controller.Phase{from, to}})
		},
		OnJump: func(impulse float64) {
			events.Push(ecs.Event{Type: ecs.EventJump, Entity: e, Data: impulse})
		},
	})
	return true
}

// MotionSystem runs the integration phase of every controller. It must run
// before the physics step of the same tick.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem { return &MotionSystem{} }

func (m *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Clock().FixedDelta
	ecs.ForEach(w, component.ControllerComponent.Kind(), func(e ecs.Entity, c *component.Controller) {
		c.Ctrl.Integrate(dt)
	})
}
