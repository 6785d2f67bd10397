package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
)

const (
	collisionTypeBody cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypePole
	collisionTypeTrigger
)

// Shape categories used by overlap queries.
const (
	categorySolid uint = 1 << iota
	categoryPole
	categoryTrigger
	categoryBody
)

const (
	defaultIterations = 20
	defaultBodySize   = 1.0
)

type PhysicsSystem struct {
	space *cp.Space

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body      *cp.Body
	adapter   *CPBody
	mainShape *cp.Shape
	static    bool
}

// NewPhysicsSystem creates a space with gravity along Y. Iterations <= 0
// uses the default solver iteration count.
func NewPhysicsSystem(gravityY float64, iterations int) *PhysicsSystem {
	if iterations <= 0 {
		iterations = defaultIterations
	}
	space := cp.NewSpace()
	space.Iterations = uint(iterations)
	space.SetGravity(cp.Vector{X: 0, Y: gravityY})
	return &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetGravity replaces the space gravity, used on config reload.
func (ps *PhysicsSystem) SetGravity(gravityY float64) {
	if ps == nil || ps.space == nil {
		return
	}
	ps.space.SetGravity(cp.Vector{X: 0, Y: gravityY})
}

// Body returns the controller adapter for a dynamic entity, creating the
// Chipmunk body first if needed.
func (ps *PhysicsSystem) Body(w *ecs.World, e ecs.Entity) (*CPBody, bool) {
	if ps == nil || w == nil {
		return nil, false
	}
	if info := ps.entities[e]; info != nil && info.adapter != nil && ecs.IsAlive(w, e) {
		return info.adapter, true
	}
	ps.Sync(w)
	info := ps.entities[e]
	if info == nil || info.adapter == nil {
		return nil, false
	}
	return info.adapter, true
}

// Update steps the space once by the fixed delta and copies dynamic body
// positions back to their transforms.
func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = cp.NewSpace()
		ps.space.Iterations = defaultIterations
	}

	ps.Sync(w)

	dt := w.Clock().FixedDelta
	if dt <= 0 {
		return
	}
	ps.space.Step(dt)
	w.Clock().FixedSteps++

	ps.syncTransforms(w)
}

// Sync adds shapes for new entities and removes those of destroyed ones.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || ps.space == nil || w == nil {
		return
	}
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		info := ps.createBodyInfo(transform, bodyComp)
		if info == nil {
			return
		}
		info.mainShape.UserData = e
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.mainShape
	})

	ecs.ForEach2(w, component.SolidComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, solid *component.Solid, t *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		shape := ps.addStaticBox(e, t.X, t.Y, solid.Width, solid.Height, false, collisionTypeSolid, categorySolid)
		if shape == nil {
			return
		}
		shape.SetFriction(solid.Friction)
	})

	ecs.ForEach2(w, component.PoleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pole *component.Pole, t *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		ps.addStaticBox(e, t.X, t.Y, pole.Width, pole.Height, true, collisionTypePole, categoryPole)
	})

	ecs.ForEach2(w, component.TriggerVolumeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, vol *component.TriggerVolume, t *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		ps.addStaticBox(e, t.X, t.Y, vol.Width, vol.Height, true, collisionTypeTrigger, categoryTrigger)
	})
}

func (ps *PhysicsSystem) addStaticBox(e ecs.Entity, x, y, width, height float64, sensor bool, ct cp.CollisionType, category uint) *cp.Shape {
	if width <= 0 || height <= 0 {
		log.Printf("PhysicsSystem: entity %v has empty box %.2fx%.2f, skipped", e, width, height)
		return nil
	}
	bb := cp.BB{L: x - width/2, B: y - height/2, R: x + width/2, T: y + height/2}
	shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
	shape.SetSensor(sensor)
	shape.SetCollisionType(ct)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category, cp.ALL_CATEGORIES))
	shape.UserData = e
	ps.space.AddShape(shape)

	ps.entities[e] = &bodyInfo{body: ps.space.StaticBody, mainShape: shape, static: true}
	return shape
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	if ps.space == nil || transform == nil || bodyComp == nil {
		return nil
	}

	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width = defaultBodySize
		height = defaultBodySize
	}

	if bodyComp.Static {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: transform.X, Y: transform.Y})
		} else {
			bb := cp.BB{L: transform.X - width/2, B: transform.Y - height/2, R: transform.X + width/2, T: transform.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categorySolid, cp.ALL_CATEGORIES))
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, mainShape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	// Infinite moment keeps the body upright.
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeBody)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryBody, categorySolid))

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{
		body:      body,
		adapter:   NewCPBody(body, bodyComp.GravityScale),
		mainShape: shape,
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Static || bodyComp.Body == nil {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		if info := ps.entities[e]; info != nil && info.adapter != nil {
			bodyComp.GravityScale = info.adapter.GravityScale()
		}
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) ||
			ecs.Has(w, e, component.SolidComponent.Kind()) ||
			ecs.Has(w, e, component.PoleComponent.Kind()) ||
			ecs.Has(w, e, component.TriggerVolumeComponent.Kind())) {
			continue
		}
		if info.mainShape != nil {
			ps.space.RemoveShape(info.mainShape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
