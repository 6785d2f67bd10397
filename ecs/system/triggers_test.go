package system

import (
	"testing"

	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
)

type countingDisplay struct {
	shown int
}

func (d *countingDisplay) ShowWin() { d.shown++ }

func TestTriggerPipeline(t *testing.T) {
	w, ps := newTestWorld(t, true)
	player := addPlayer(t, w, 0, 0.5)

	pickup := addTrigger(t, w, 0.5, 0.5, 1, 1)
	mustAdd(t, ecs.Add(w, pickup, component.SpringPickupComponent.Kind(), &component.SpringPickup{Duration: 0}))

	zone := addTrigger(t, w, 5, 1, 2, 2)
	mustAdd(t, ecs.Add(w, zone, component.WindZoneComponent.Kind(), &component.WindZone{ForceX: -20, Drag: 0.08}))

	goal := addTrigger(t, w, 10, 1, 1, 2)
	mustAdd(t, ecs.Add(w, goal, component.GoalComponent.Kind(), &component.Goal{Level: "test"}))

	display := &countingDisplay{}
	store := &memoryStore{}
	log := NewEventLogSystem(false)
	frame := ecs.NewScheduler(
		NewStaticInputSystem(1),
		NewPlayerControllerSystem(ps),
		NewTriggerSystem(ps),
		NewSpringPickupSystem(),
		NewWindZoneSystem(),
		NewGoalSystem(display, NewWinRecords(store)),
		log,
	)
	fixed := ecs.NewScheduler(NewMotionSystem(), ps)

	sawWind := false
	for i := 0; i < 600 && !w.Clock().Paused; i++ {
		w.Clock().Elapsed += testFrame
		frame.Update(w)
		if c, ok := ecs.Get(w, player, component.ControllerComponent.Kind()); ok && c.Ctrl != nil {
			if c.Ctrl.State().Wind.ForceX == -20 {
				sawWind = true
			}
		}
		fixed.Update(w)
	}

	if ecs.IsAlive(w, pickup) {
		t.Fatalf("pickup must be destroyed once collected")
	}
	c := controllerOf(t, w, player)
	st := c.Ctrl.State()
	if !st.SpringActive || st.SpringRemaining > 0 {
		t.Fatalf("expected an infinite spring buff, got %+v", st)
	}
	if !sawWind {
		t.Fatalf("wind never applied inside the zone")
	}
	if st.Wind.ForceX != 0 || st.Wind.Drag != 0 {
		t.Fatalf("wind must clear after leaving the zone, got %+v", st.Wind)
	}
	if !w.Clock().Paused {
		t.Fatalf("goal must pause the clock")
	}
	if display.shown != 1 {
		t.Fatalf("win shown %d times, want 1", display.shown)
	}
	if log.Stats.Buffs != 1 || log.Stats.WindChanges != 2 || !log.Stats.Won {
		t.Fatalf("stats = %+v", log.Stats)
	}
	if _, ok := store.items[recordKey("test")]; !ok {
		t.Fatalf("expected a saved win record")
	}
}

func TestGoalIgnoresUncontrolledBodies(t *testing.T) {
	w, _ := newTestWorld(t, false)
	goal := addTrigger(t, w, 0, 0, 1, 1)
	mustAdd(t, ecs.Add(w, goal, component.GoalComponent.Kind(), &component.Goal{}))

	// An occupant without a controller never triggers the win.
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, component.OccupancyComponent.Kind(), &component.Occupancy{Entered: []uint64{uint64(goal)}}))

	display := &countingDisplay{}
	NewGoalSystem(display, nil).Update(w)
	if display.shown != 0 || w.Clock().Paused {
		t.Fatalf("goal fired for an entity without a controller")
	}
}

func windFrame(ps *PhysicsSystem) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewPlayerControllerSystem(ps),
		NewTriggerSystem(ps),
		NewWindZoneSystem(),
	)
}

func TestOverlappingWindZonesResolveInEntityOrder(t *testing.T) {
	results := make(map[float64]int)
	for i := 0; i < 50; i++ {
		w, ps := newTestWorld(t, true)
		player := addPlayer(t, w, 0, 0.5)

		first := addTrigger(t, w, 0, 1, 4, 4)
		mustAdd(t, ecs.Add(w, first, component.WindZoneComponent.Kind(), &component.WindZone{ForceX: -20}))
		second := addTrigger(t, w, 0.5, 1, 4, 4)
		mustAdd(t, ecs.Add(w, second, component.WindZoneComponent.Kind(), &component.WindZone{ForceX: 30}))

		windFrame(ps).Update(w)
		results[controllerOf(t, w, player).Ctrl.State().Wind.ForceX]++
	}
	if len(results) != 1 || results[30] != 50 {
		t.Fatalf("wind after entering both zones = %v, want the later zone every run", results)
	}
}

func TestTriggerEdgesAreSorted(t *testing.T) {
	w, ps := newTestWorld(t, true)
	player := addPlayer(t, w, 0, 0.5)
	for i := 0; i < 6; i++ {
		addTrigger(t, w, float64(i)*0.1, 0.5, 3, 3)
	}
	frame := windFrame(ps)
	frame.Update(w)

	occ, _ := ecs.Get(w, player, component.OccupancyComponent.Kind())
	if len(occ.Entered) != 6 {
		t.Fatalf("entered = %v, want 6 triggers", occ.Entered)
	}
	for i := 1; i < len(occ.Entered); i++ {
		if occ.Entered[i-1] >= occ.Entered[i] {
			t.Fatalf("entered not ordered: %v", occ.Entered)
		}
	}

	var triggers []ecs.Entity
	ecs.ForEach(w, component.TriggerVolumeComponent.Kind(), func(e ecs.Entity, _ *component.TriggerVolume) {
		triggers = append(triggers, e)
	})
	for _, e := range triggers {
		ecs.DestroyEntity(w, e)
	}
	frame.Update(w)
	if len(occ.Exited) != 6 {
		t.Fatalf("exited = %v, want 6 triggers", occ.Exited)
	}
	for i := 1; i < len(occ.Exited); i++ {
		if occ.Exited[i-1] >= occ.Exited[i] {
			t.Fatalf("exited not ordered: %v", occ.Exited)
		}
	}
}

func TestWindClearsWhenZoneDestroyedWhileInside(t *testing.T) {
	w, ps := newTestWorld(t, true)
	player := addPlayer(t, w, 0, 0.5)
	zone := addTrigger(t, w, 0, 1, 4, 4)
	mustAdd(t, ecs.Add(w, zone, component.WindZoneComponent.Kind(), &component.WindZone{ForceX: -20, Drag: 0.1}))

	frame := windFrame(ps)
	frame.Update(w)
	c := controllerOf(t, w, player)
	if c.Ctrl.State().Wind.ForceX != -20 {
		t.Fatalf("wind not applied inside the zone: %+v", c.Ctrl.State().Wind)
	}
	w.Events().Drain()

	ecs.DestroyEntity(w, zone)
	frame.Update(w)
	if wind := c.Ctrl.State().Wind; wind.ForceX != 0 || wind.Drag != 0 {
		t.Fatalf("wind kept after its zone was destroyed: %+v", wind)
	}
	exits := 0
	for _, evt := range w.Events().Drain() {
		if evt.Type == ecs.EventWindExit {
			exits++
		}
	}
	if exits != 1 {
		t.Fatalf("wind exit events = %d, want 1", exits)
	}
}
