package system

import (
	"log"

	"github.com/milk9111/springpole/controller"
	"github.com/milk9111/springpole/ecs"
)

// RunStats counts what happened over a run.
type RunStats struct {
	Jumps       int
	Landings    int
	Damaged     int
	PhaseFlips  int
	Buffs       int
	WindChanges int
	Won         bool
	WinTime     float64
}

// EventLogSystem drains the world event queue once per frame, keeps run
// stats and logs each event when Debug is set.
type EventLogSystem struct {
	Debug bool
	Stats RunStats
}

func NewEventLogSystem(debug bool) *EventLogSystem {
	return &EventLogSystem{Debug: debug}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		s.record(evt)
		if s.Debug {
			logEvent(evt)
		}
	}
}

func (s *EventLogSystem) record(evt ecs.Event) {
	switch evt.Type {
	case ecs.EventJump:
		s.Stats.Jumps++
	case ecs.EventLanding:
		s.Stats.Landings++
		if r, ok := evt.Data.(controller.LandingReport); ok && r.Damaged() {
			s.Stats.Damaged++
		}
	case ecs.EventPhase:
		s.Stats.PhaseFlips++
	case ecs.EventBuff:
		s.Stats.Buffs++
	case ecs.EventWindEnter, ecs.EventWindExit:
		s.Stats.WindChanges++
	case ecs.EventWin:
		s.Stats.Won = true
		if t, ok := evt.Data.(float64); ok {
			s.Stats.WinTime = t
		}
	}
}

func logEvent(evt ecs.Event) {
	switch data := evt.Data.(type) {
	case controller.LandingReport:
		log.Printf("landing: entity=%v peak=%.3f land=%.3f fall=%.3f safe=%.3f outcome=%s",
			evt.Entity, data.PeakY, data.LandingY, data.FallDistance, data.SafeFallHeight, data.Outcome)
	case [2]controller.Phase:
		log.Printf("phase: entity=%v %s -> %s", evt.Entity, data[0], data[1])
	default:
		log.Printf("%s: entity=%v data=%v", evt.Type, evt.Entity, data)
	}
}
