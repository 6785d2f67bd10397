package entity

import (
	"strings"
	"testing"

	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
	"github.com/milk9111/springpole/levels"
)

func count[T any](w *ecs.World, kind component.ComponentKind[T]) int {
	n := 0
	ecs.ForEach(w, kind, func(ecs.Entity, *T) { n++ })
	return n
}

func TestBuildLevelCourse(t *testing.T) {
	lvl, err := levels.LoadLevelFromFS("course")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	w := ecs.NewWorld()
	player, err := BuildLevel(w, lvl, nil, -9.81)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok || tr.X != lvl.Spawn.X || tr.Y != lvl.Spawn.Y {
		t.Fatalf("player not at spawn: %+v", tr)
	}
	c, ok := ecs.Get(w, player, component.ControllerComponent.Kind())
	if !ok || c.Config.GravityY != -9.81 || c.Ctrl != nil {
		t.Fatalf("controller = %+v", c)
	}
	for _, has := range []bool{
		ecs.Has(w, player, component.PlayerTagComponent.Kind()),
		ecs.Has(w, player, component.InputComponent.Kind()),
		ecs.Has(w, player, component.PhysicsBodyComponent.Kind()),
		ecs.Has(w, player, component.OccupancyComponent.Kind()),
	} {
		if !has {
			t.Fatalf("player is missing a component")
		}
	}

	if got := count(w, component.SolidComponent.Kind()); got != 2 {
		t.Fatalf("solids = %d, want 2", got)
	}
	if got := count(w, component.PoleComponent.Kind()); got != 1 {
		t.Fatalf("poles = %d, want 1", got)
	}
	if got := count(w, component.TriggerVolumeComponent.Kind()); got != 3 {
		t.Fatalf("triggers = %d, want 3", got)
	}

	ecs.ForEach(w, component.WindZoneComponent.Kind(), func(_ ecs.Entity, z *component.WindZone) {
		if z.ForceX != -20 || z.Drag != 0.08 {
			t.Fatalf("wind zone = %+v", z)
		}
	})
	ecs.ForEach(w, component.GoalComponent.Kind(), func(_ ecs.Entity, g *component.Goal) {
		if g.Level != "course" {
			t.Fatalf("goal level = %q", g.Level)
		}
	})
}

func TestBuildLevelErrors(t *testing.T) {
	cases := []struct {
		name string
		ent  levels.Entity
		want string
	}{
		{"unknown_type", levels.Entity{Type: "lava"}, "unknown type"},
		{"empty_solid", levels.Entity{Type: levels.TypeSolid}, "positive size"},
		{"empty_pole", levels.Entity{Type: levels.TypePole, Props: map[string]interface{}{"width": 1}}, "positive size"},
		{"zero_trigger", levels.Entity{Type: levels.TypeGoal, Props: map[string]interface{}{"width": 0}}, "positive size"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := &levels.Level{Name: "bad", Entities: []levels.Entity{c.ent}}
			_, err := BuildLevel(ecs.NewWorld(), lvl, nil, -9.81)
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("err = %v, want containing %q", err, c.want)
			}
		})
	}

	if _, err := BuildLevel(ecs.NewWorld(), nil, nil, -9.81); err == nil {
		t.Fatalf("expected an error for a nil level")
	}
}

func TestSpringPickupDefaults(t *testing.T) {
	lvl := &levels.Level{Name: "p", Entities: []levels.Entity{{Type: levels.TypeSpringPickup, X: 1, Y: 1, Props: map[string]interface{}{"duration": 3}}}}
	w := ecs.NewWorld()
	if _, err := BuildLevel(w, lvl, nil, -9.81); err != nil {
		t.Fatalf("build: %v", err)
	}
	ecs.ForEach2(w, component.SpringPickupComponent.Kind(), component.TriggerVolumeComponent.Kind(), func(_ ecs.Entity, p *component.SpringPickup, v *component.TriggerVolume) {
		if p.Duration != 3 || v.Width != 1 || v.Height != 1 {
			t.Fatalf("pickup = %+v volume = %+v", p, v)
		}
	})
}

func TestPoleActiveProp(t *testing.T) {
	cases := []struct {
		name  string
		props map[string]interface{}
		want  bool
	}{
		{"default", map[string]interface{}{"width": 0.3, "height": 4}, true},
		{"inactive", map[string]interface{}{"width": 0.3, "height": 4, "active": false}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := &levels.Level{Name: "p", Entities: []levels.Entity{{Type: levels.TypePole, Props: c.props}}}
			w := ecs.NewWorld()
			if _, err := BuildLevel(w, lvl, nil, -9.81); err != nil {
				t.Fatalf("build: %v", err)
			}
			e, ok := ecs.First(w, component.PoleComponent.Kind())
			if !ok {
				t.Fatalf("no pole built")
			}
			p, _ := ecs.Get(w, e, component.PoleComponent.Kind())
			if p.Active != c.want {
				t.Fatalf("active = %v, want %v", p.Active, c.want)
			}
		})
	}
}
