package system

import (
	"log"
	"sort"

	"github.com/milk9111/springpole/controller"
	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
)

// TriggerSystem refreshes the Occupancy of every controlled body against
// trigger volumes and records this frame's enter and exit edges.
type TriggerSystem struct {
	physics *PhysicsSystem
	overlap *SpaceOverlapper
}

func NewTriggerSystem(physics *PhysicsSystem) *TriggerSystem {
	return &TriggerSystem{physics: physics}
}

func (s *TriggerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if s.overlap == nil || s.overlap.world != w {
		s.overlap = NewSpaceOverlapper(w, s.physics.Space())
	}

	ecs.ForEach2(w, component.ControllerComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.Controller, body *component.PhysicsBody) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		occ, ok := ecs.Get(w, e, component.OccupancyComponent.Kind())
		if !ok {
			occ = &component.Occupancy{}
			if err := ecs.Add(w, e, component.OccupancyComponent.Kind(), occ); err != nil {
				return
			}
		}
		if occ.Inside == nil {
			occ.Inside = make(map[uint64]bool)
		}

		width, height := body.Width, body.Height
		if body.Radius > 0 {
			width, height = body.Radius*2, body.Radius*2
		}

		current := make(map[uint64]bool)
		occ.Entered = occ.Entered[:0]
		occ.Exited = occ.Exited[:0]
		for _, trigger := range s.overlap.OverlapTriggers(t.X, t.Y, width, height) {
			id := uint64(trigger)
			current[id] = true
			if !occ.Inside[id] {
				occ.Entered = append(occ.Entered, id)
			}
		}
		for id := range occ.Inside {
			if !current[id] {
				occ.Exited = append(occ.Exited, id)
			}
		}
		// Sorted by handle; effects apply in this order, last write wins.
		sortIDs(occ.Entered)
		sortIDs(occ.Exited)
		occ.Inside = current
	})
}

func sortIDs(ids []uint64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// SpringPickupSystem grants spring shoes on entering a pickup and destroys
// the pickup.
type SpringPickupSystem struct{}

func NewSpringPickupSystem() *SpringPickupSystem { return &SpringPickupSystem{} }

func (s *SpringPickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.OccupancyComponent.Kind(), component.ControllerComponent.Kind(), func(e ecs.Entity, occ *component.Occupancy, c *component.Controller) {
		for _, id := range occ.Entered {
			pickupEnt := ecs.Entity(id)
			pickup, ok := ecs.Get(w, pickupEnt, component.SpringPickupComponent.Kind())
			if !ok {
				continue
			}
			c.Ctrl.ActivateBuff(pickup.Duration)
			w.Events().Push(ecs.Event{Type: ecs.EventBuff, Entity: e, Data: pickup.Duration})
			delete(occ.Inside, id)
			ecs.DestroyEntity(w, pickupEnt)
		}
	})
}

// WindZoneSystem applies a zone's wind on entry and clears it on exit.
// Exits are handled first so moving between zones keeps the new wind.
// Zones are remembered on entry so leaving a destroyed zone still clears.
type WindZoneSystem struct {
	zones map[uint64]bool
}

func NewWindZoneSystem() *WindZoneSystem {
	return &WindZoneSystem{zones: make(map[uint64]bool)}
}

func (s *WindZoneSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if s.zones == nil {
		s.zones = make(map[uint64]bool)
	}
	ecs.ForEach2(w, component.OccupancyComponent.Kind(), component.ControllerComponent.Kind(), func(e ecs.Entity, occ *component.Occupancy, c *component.Controller) {
		for _, id := range occ.Exited {
			if !s.zones[id] && !ecs.Has(w, ecs.Entity(id), component.WindZoneComponent.Kind()) {
				continue
			}
			c.Ctrl.ClearWind()
			w.Events().Push(ecs.Event{Type: ecs.EventWindExit, Entity: e, Data: ecs.Entity(id)})
		}
		for _, id := range occ.Entered {
			zone, ok := ecs.Get(w, ecs.Entity(id), component.WindZoneComponent.Kind())
			if !ok {
				continue
			}
			s.zones[id] = true
			c.Ctrl.SetWind(zone.ForceX, zone.Drag)
			w.Events().Push(ecs.Event{Type: ecs.EventWindEnter, Entity: e, Data: controller.WindField{ForceX: zone.ForceX, Drag: zone.Drag}})
		}
	})
}

// WinDisplay shows the win message.
type WinDisplay interface {
	ShowWin()
}

// GoalSystem fires once when a controlled body enters a goal: it shows the
// win message, pauses the clock and records the completion time.
type GoalSystem struct {
	display WinDisplay
	records *WinRecords
}

func NewGoalSystem(display WinDisplay, records *WinRecords) *GoalSystem {
	return &GoalSystem{display: display, records: records}
}

func (s *GoalSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.OccupancyComponent.Kind(), component.ControllerComponent.Kind(), func(e ecs.Entity, occ *component.Occupancy, c *component.Controller) {
		if c.Ctrl == nil {
			return
		}
		for _, id := range occ.Entered {
			goal, ok := ecs.Get(w, ecs.Entity(id), component.GoalComponent.Kind())
			if !ok || goal.Reached {
				continue
			}
			goal.Reached = true
			elapsed := w.Clock().Elapsed
			log.Printf("GoalSystem: YOU WIN! level=%s time=%.2fs", goal.Level, elapsed)

			if s.display != nil {
				s.display.ShowWin()
			}
			w.Clock().Pause()
			w.Events().Push(ecs.Event{Type: ecs.EventWin, Entity: e, Data: elapsed})

			if s.records == nil {
				continue
			}
			rec, best, err := s.records.Record(goal.Level, elapsed)
			if err != nil {
				log.Printf("GoalSystem: record win for %s: %v", goal.Level, err)
				continue
			}
			if best {
				log.Printf("GoalSystem: new best for %s: %.2fs (wins=%d)", goal.Level, rec.BestTime, rec.Wins)
			}
		}
	})
}
