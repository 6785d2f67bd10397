package system

import (
	"math"
	"testing"

	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
	"github.com/milk9111/springpole/ecs/entity"
	"github.com/milk9111/springpole/prefabs"
)

const (
	testFrame = 1.0 / 60.0
	testFixed = 1.0 / 50.0
	testGrav  = -9.81
)

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// newTestWorld returns a world with the default clock deltas and a physics
// system. Ground is a wide solid whose top is at y=0.
func newTestWorld(t *testing.T, withGround bool) (*ecs.World, *PhysicsSystem) {
	t.Helper()
	w := ecs.NewWorld()
	w.Clock().FrameDelta = testFrame
	w.Clock().FixedDelta = testFixed
	ps := NewPhysicsSystem(testGrav, 0)
	if withGround {
		addSolid(t, w, 0, -0.5, 100, 1)
	}
	return w, ps
}

func addSolid(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	mustAdd(t, ecs.Add(w, e, component.SolidComponent.Kind(), &component.Solid{Width: width, Height: height}))
	return e
}

func addPole(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	mustAdd(t, ecs.Add(w, e, component.PoleComponent.Kind(), &component.Pole{Width: width, Height: height, Active: true}))
	return e
}

func addTrigger(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	mustAdd(t, ecs.Add(w, e, component.TriggerVolumeComponent.Kind(), &component.TriggerVolume{Width: width, Height: height}))
	return e
}

func addPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	spec := prefabs.DefaultPlayerSpec()
	e, err := entity.BuildPlayer(w, &spec, x, y, testGrav)
	if err != nil {
		t.Fatalf("build player: %v", err)
	}
	return e
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func controllerOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Controller {
	t.Helper()
	c, ok := ecs.Get(w, e, component.ControllerComponent.Kind())
	if !ok || c.Ctrl == nil {
		t.Fatalf("entity %v has no attached controller", e)
	}
	return c
}
