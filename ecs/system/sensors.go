package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/springpole/controller"
	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
)

// SpaceOverlapper answers controller probe queries against the Chipmunk
// space. Ground probes only see solids, pole probes only see active poles.
type SpaceOverlapper struct {
	world *ecs.World
	space *cp.Space
}

var _ controller.Overlapper = (*SpaceOverlapper)(nil)

func NewSpaceOverlapper(w *ecs.World, space *cp.Space) *SpaceOverlapper {
	return &SpaceOverlapper{world: w, space: space}
}

func (o *SpaceOverlapper) OverlapGround(x, y, radius float64) bool {
	if o == nil || o.space == nil || radius <= 0 {
		return false
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categorySolid)
	info := o.space.PointQueryNearest(cp.Vector{X: x, Y: y}, radius, filter)
	if info == nil || info.Shape == nil {
		return false
	}
	if e, ok := info.Shape.UserData.(ecs.Entity); ok && !ecs.IsAlive(o.world, e) {
		return false
	}
	return true
}

// OverlapPole returns the active pole whose centre is closest to x, or nil.
func (o *SpaceOverlapper) OverlapPole(x, y, width, height float64) controller.PoleHandle {
	if o == nil || o.space == nil || width <= 0 || height <= 0 {
		return nil
	}
	var best *poleRef
	bestDist := math.Inf(1)
	bb := cp.BB{L: x - width/2, B: y - height/2, R: x + width/2, T: y + height/2}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categoryPole)
	o.space.BBQuery(bb, filter, func(shape *cp.Shape, data interface{}) {
		e, ok := shape.UserData.(ecs.Entity)
		if !ok {
			return
		}
		ref := &poleRef{world: o.world, entity: e}
		if !ref.Valid() {
			return
		}
		if d := math.Abs(ref.CenterX() - x); d < bestDist {
			best = ref
			bestDist = d
		}
	}, nil)
	if best == nil {
		return nil
	}
	return best
}

// OverlapTriggers lists the live trigger entities overlapping a box.
func (o *SpaceOverlapper) OverlapTriggers(x, y, width, height float64) []ecs.Entity {
	if o == nil || o.space == nil || width <= 0 || height <= 0 {
		return nil
	}
	var out []ecs.Entity
	bb := cp.BB{L: x - width/2, B: y - height/2, R: x + width/2, T: y + height/2}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categoryTrigger)
	o.space.BBQuery(bb, filter, func(shape *cp.Shape, data interface{}) {
		e, ok := shape.UserData.(ecs.Entity)
		if !ok || !ecs.IsAlive(o.world, e) {
			return
		}
		out = append(out, e)
	}, nil)
	return out
}

// poleRef is a weak handle to a pole entity. It goes invalid as soon as the
// entity is destroyed or its pole is deactivated.
type poleRef struct {
	world  *ecs.World
	entity ecs.Entity
}

func (p *poleRef) Valid() bool {
	if p == nil || !ecs.IsAlive(p.world, p.entity) {
		return false
	}
	pole, ok := ecs.Get(p.world, p.entity, component.PoleComponent.Kind())
	if !ok || !pole.Active {
		return false
	}
	return ecs.Has(p.world, p.entity, component.TransformComponent.Kind())
}

func (p *poleRef) CenterX() float64 {
	if p == nil {
		return 0
	}
	t, ok := ecs.Get(p.world, p.entity, component.TransformComponent.Kind())
	if !ok {
		return 0
	}
	return t.X
}

func (p *poleRef) String() string {
	if p == nil {
		return "none"
	}
	return "pole " + p.entity.String()
}
