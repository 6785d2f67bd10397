package entity

import (
	"fmt"

	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
	"github.com/milk9111/springpole/levels"
	"github.com/milk9111/springpole/prefabs"
)

// Defaults for props a level omits.
const (
	defaultWindForceX  = -20.0
	defaultWindDrag    = 0.08
	defaultTriggerSize = 1.0
)

type levelBuildFn func(w *ecs.World, e ecs.Entity, lvl *levels.Level, item levels.Entity) error

var levelRegistry = map[string]levelBuildFn{
	levels.TypeSolid:        addSolid,
	levels.TypePole:         addPole,
	levels.TypeSpringPickup: addSpringPickup,
	levels.TypeWindZone:     addWindZone,
	levels.TypeGoal:         addGoal,
}

// BuildLevel creates every level entity and the player at the spawn point.
// It returns the player entity.
func BuildLevel(w *ecs.World, lvl *levels.Level, player *prefabs.PlayerSpec, gravityY float64) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("entity: nil world")
	}
	if lvl == nil {
		return 0, fmt.Errorf("entity: nil level")
	}
	for i, item := range lvl.Entities {
		build, ok := levelRegistry[item.Type]
		if !ok {
			return 0, fmt.Errorf("entity: level %s entity %d: unknown type %q", lvl.Name, i, item.Type)
		}
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: item.X, Y: item.Y, ScaleX: 1, ScaleY: 1}); err != nil {
			return 0, err
		}
		if err := build(w, e, lvl, item); err != nil {
			return 0, fmt.Errorf("entity: level %s entity %d (%s): %w", lvl.Name, i, item.Type, err)
		}
	}
	return BuildPlayer(w, player, lvl.Spawn.X, lvl.Spawn.Y, gravityY)
}

func addSolid(w *ecs.World, e ecs.Entity, _ *levels.Level, item levels.Entity) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SolidComponentSpec](item.Props)
	if err != nil {
		return err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("solid needs a positive size, got %.2fx%.2f", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.SolidComponent.Kind(), &component.Solid{
		Width:    spec.Width,
		Height:   spec.Height,
		Friction: spec.Friction,
	})
}

func addPole(w *ecs.World, e ecs.Entity, _ *levels.Level, item levels.Entity) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PoleComponentSpec](item.Props)
	if err != nil {
		return err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("pole needs a positive size, got %.2fx%.2f", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.PoleComponent.Kind(), &component.Pole{
		Width:  spec.Width,
		Height: spec.Height,
		Active: spec.IsActive(),
	})
}

func addSpringPickup(w *ecs.World, e ecs.Entity, _ *levels.Level, item levels.Entity) error {
	spec := prefabs.SpringPickupComponentSpec{Width: defaultTriggerSize, Height: defaultTriggerSize}
	if err := prefabs.DecodeComponentSpecInto(item.Props, &spec); err != nil {
		return err
	}
	if err := addTrigger(w, e, spec.Width, spec.Height); err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpringPickupComponent.Kind(), &component.SpringPickup{Duration: spec.Duration})
}

func addWindZone(w *ecs.World, e ecs.Entity, _ *levels.Level, item levels.Entity) error {
	spec := prefabs.WindZoneComponentSpec{
		ForceX: defaultWindForceX,
		Drag:   defaultWindDrag,
		Width:  defaultTriggerSize,
		Height: defaultTriggerSize,
	}
	if err := prefabs.DecodeComponentSpecInto(item.Props, &spec); err != nil {
		return err
	}
	if err := addTrigger(w, e, spec.Width, spec.Height); err != nil {
		return err
	}
	return ecs.Add(w, e, component.WindZoneComponent.Kind(), &component.WindZone{ForceX: spec.ForceX, Drag: spec.Drag})
}

func addGoal(w *ecs.World, e ecs.Entity, lvl *levels.Level, item levels.Entity) error {
	spec := prefabs.GoalComponentSpec{Width: defaultTriggerSize, Height: defaultTriggerSize}
	if err := prefabs.DecodeComponentSpecInto(item.Props, &spec); err != nil {
		return err
	}
	if err := addTrigger(w, e, spec.Width, spec.Height); err != nil {
		return err
	}
	return ecs.Add(w, e, component.GoalComponent.Kind(), &component.Goal{Level: lvl.Name})
}

func addTrigger(w *ecs.World, e ecs.Entity, width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("trigger needs a positive size, got %.2fx%.2f", width, height)
	}
	return ecs.Add(w, e, component.TriggerVolumeComponent.Kind(), &component.TriggerVolume{Width: width, Height: height})
}
