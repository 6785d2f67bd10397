package entity

import (
	"fmt"

	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
	"github.com/milk9111/springpole/prefabs"
)

// BuildPlayer creates a controlled body at x, y. The controller itself is
// attached on the first frame, once the physics body exists.
func BuildPlayer(w *ecs.World, spec *prefabs.PlayerSpec, x, y, gravityY float64) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("entity: nil world")
	}
	if spec == nil {
		def := prefabs.DefaultPlayerSpec()
		spec = &def
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:        spec.Collider.Width,
		Height:       spec.Collider.Height,
		Mass:         spec.Body.Mass,
		Friction:     spec.Body.Friction,
		GravityScale: spec.Body.GravityScale,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ControllerComponent.Kind(), &component.Controller{
		Config: spec.ControllerConfig(gravityY),
		Ground: spec.GroundProbe(),
		Pole:   spec.PoleProbe(),
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.OccupancyComponent.Kind(), &component.Occupancy{Inside: map[uint64]bool{}}); err != nil {
		return 0, err
	}
	return e, nil
}
