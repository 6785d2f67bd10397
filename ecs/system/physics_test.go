package system

import (
	"testing"

	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
)

func TestCPBodyGravityScale(t *testing.T) {
	cases := []struct {
		name  string
		scale float64
		want  float64
	}{
		{"normal", 1, -1.0},
		{"slide", 0.3, -0.3},
		{"none", 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ps := NewPhysicsSystem(-10, 0)
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
			mustAdd(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 1, Height: 1, Mass: 1, GravityScale: 1}))

			body, ok := ps.Body(w, e)
			if !ok {
				t.Fatalf("expected a dynamic body")
			}
			if body.GravityScale() != 1 {
				t.Fatalf("default gravity scale = %v, want 1", body.GravityScale())
			}
			body.SetGravityScale(c.scale)
			ps.Space().Step(0.1)

			if _, vy := body.Velocity(); !near(vy, c.want, 1e-9) {
				t.Fatalf("vy = %v, want %v", vy, c.want)
			}
		})
	}
}

func TestPhysicsBodyKeepsZeroGravityScale(t *testing.T) {
	ps := NewPhysicsSystem(-10, 0)
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Y: 5}))
	mustAdd(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 1, Height: 1, Mass: 1}))

	body, ok := ps.Body(w, e)
	if !ok {
		t.Fatalf("expected a dynamic body")
	}
	if body.GravityScale() != 0 {
		t.Fatalf("gravity scale = %v, want 0", body.GravityScale())
	}
	ps.Space().Step(0.1)
	if _, vy := body.Velocity(); vy != 0 {
		t.Fatalf("weightless body fell: vy = %v", vy)
	}
}

func TestCPBodyImpulseAndForce(t *testing.T) {
	ps := NewPhysicsSystem(0, 0)
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
	mustAdd(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 1, Height: 1, Mass: 2, GravityScale: 1}))
	body, _ := ps.Body(w, e)

	if body.Mass() != 2 {
		t.Fatalf("mass = %v, want 2", body.Mass())
	}

	body.ApplyImpulse(0, 4)
	if _, vy := body.Velocity(); !near(vy, 2, 1e-9) {
		t.Fatalf("impulse: vy = %v, want 2", vy)
	}

	body.ApplyForce(10, 0)
	ps.Space().Step(0.1)
	if vx, _ := body.Velocity(); !near(vx, 0.5, 1e-9) {
		t.Fatalf("force: vx = %v, want 0.5", vx)
	}

	// Forces do not carry over to the next step.
	ps.Space().Step(0.1)
	if vx, _ := body.Velocity(); !near(vx, 0.5, 1e-9) {
		t.Fatalf("second step: vx = %v, want 0.5", vx)
	}
}

func TestPhysicsSystemSyncsTransforms(t *testing.T) {
	w, ps := newTestWorld(t, true)
	e := addPlayer(t, w, 0, 3)

	for i := 0; i < 100; i++ {
		ps.Update(w)
	}

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	// Collider half height is 0.5 on a ground top at y=0, less the
	// solver's collision slop.
	if tr.Y < 0.35 || tr.Y > 0.55 {
		t.Fatalf("resting y = %v, want ~0.5", tr.Y)
	}
	if w.Clock().FixedSteps != 100 {
		t.Fatalf("fixed steps = %d, want 100", w.Clock().FixedSteps)
	}
}

func TestPhysicsSystemRemovesDestroyedShapes(t *testing.T) {
	w, ps := newTestWorld(t, false)
	trigger := addTrigger(t, w, 0, 0, 1, 1)
	ps.Sync(w)

	o := NewSpaceOverlapper(w, ps.Space())
	if got := o.OverlapTriggers(0, 0, 0.5, 0.5); len(got) != 1 || got[0] != trigger {
		t.Fatalf("expected trigger overlap, got %v", got)
	}

	ecs.DestroyEntity(w, trigger)
	if got := o.OverlapTriggers(0, 0, 0.5, 0.5); len(got) != 0 {
		t.Fatalf("destroyed trigger still reported before sync: %v", got)
	}
	ps.Sync(w)
	if len(ps.entities) != 0 {
		t.Fatalf("expected shape bookkeeping cleared, have %d", len(ps.entities))
	}
}
