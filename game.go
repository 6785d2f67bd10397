package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/springpole/controller"
	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
	"github.com/milk9111/springpole/ecs/entity"
	"github.com/milk9111/springpole/ecs/system"
	"github.com/milk9111/springpole/levels"
	"github.com/milk9111/springpole/prefabs"
)

type GameOptions struct {
	Level string
	// Script is a tengo input script under prefabs/scripts. Empty holds
	// MoveX for the whole run.
	Script  string
	MoveX   float64
	Debug   bool
	Display system.WinDisplay
	Records *system.WinRecords
}

type Game struct {
	world   *ecs.World
	physics *system.PhysicsSystem
	frame   *ecs.Scheduler
	fixed   *ecs.Scheduler
	events  *system.EventLogSystem
	script  *system.ScriptedInputSystem

	player     ecs.Entity
	level      *levels.Level
	worldSpec  prefabs.WorldSpec
	scriptName string
	debug      bool

	accumulator float64
	watcher     *prefabs.Watcher
}

func NewGame(opts GameOptions) (*Game, error) {
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	lvl, err := levels.Load(opts.Level)
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:      ecs.NewWorld(),
		physics:    system.NewPhysicsSystem(worldSpec.GravityY, worldSpec.Iterations),
		events:     system.NewEventLogSystem(opts.Debug),
		level:      lvl,
		worldSpec:  *worldSpec,
		scriptName: opts.Script,
		debug:      opts.Debug,
	}

	clock := g.world.Clock()
	clock.FixedDelta = worldSpec.FixedStep
	clock.TimeScale = worldSpec.TimeScale

	g.player, err = entity.BuildLevel(g.world, lvl, playerSpec, worldSpec.GravityY)
	if err != nil {
		return nil, err
	}

	var input ecs.System = system.NewStaticInputSystem(opts.MoveX)
	if opts.Script != "" {
		src, err := prefabs.LoadScript(opts.Script)
		if err != nil {
			return nil, err
		}
		g.script, err = system.NewScriptedInputSystem(opts.Script, src)
		if err != nil {
			return nil, err
		}
		input = g.script
	}

	g.frame = ecs.NewScheduler(
		input,
		system.NewPlayerControllerSystem(g.physics),
		system.NewTriggerSystem(g.physics),
		system.NewSpringPickupSystem(),
		system.NewWindZoneSystem(),
		system.NewGoalSystem(opts.Display, opts.Records),
		g.events,
	)
	g.fixed = ecs.NewScheduler(
		system.NewMotionSystem(),
		g.physics,
	)

	g.physics.Sync(g.world)
	return g, nil
}

// Watch applies tuning and script changes reported by w between frames.
func (g *Game) Watch(w *prefabs.Watcher) {
	g.watcher = w
}

// Update advances one rendered frame of realDelta seconds: the decision
// phase once, then as many fixed integration steps as the accumulated time
// allows, capped at the configured maximum.
func (g *Game) Update(realDelta float64) {
	if g == nil {
		return
	}
	g.applyReloads()

	clock := g.world.Clock()
	dt := clock.Scale(realDelta)
	if dt <= 0 {
		return
	}
	clock.FrameDelta = dt
	clock.Elapsed += dt
	clock.Frames++

	g.frame.Update(g.world)
	if clock.Paused {
		g.accumulator = 0
		return
	}

	g.accumulator += dt
	steps := 0
	for g.accumulator >= clock.FixedDelta && steps < g.worldSpec.MaxFixedSteps {
		g.fixed.Update(g.world)
		g.accumulator -= clock.FixedDelta
		steps++
	}
	if g.accumulator >= clock.FixedDelta {
		if g.debug {
			log.Printf("game: dropped %.3fs of simulation after %d steps", g.accumulator, steps)
		}
		g.accumulator = 0
	}
}

// Paused reports whether the simulation clock is stopped, e.g. after a win.
func (g *Game) Paused() bool {
	return g != nil && g.world.Clock().Paused
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
drainErrors:
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if !ok {
				break drainErrors
			}
			log.Printf("game: watcher error: %v", err)
		default:
			break drainErrors
		}
	}
	for _, path := range g.watcher.Pending() {
		if err := g.reload(path); err != nil {
			log.Printf("game: reload %s: %v", path, err)
			continue
		}
		g.world.Events().Push(ecs.Event{Type: ecs.EventConfigReload, Data: path})
		if g.debug {
			log.Printf("game: reloaded %s", path)
		}
	}
}

func (g *Game) reload(path string) error {
	switch {
	case prefabs.IsWorldSpec(path):
		spec, err := prefabs.LoadWorldSpec()
		if err != nil {
			return err
		}
		g.worldSpec = *spec
		g.physics.SetGravity(spec.GravityY)
		clock := g.world.Clock()
		clock.FixedDelta = spec.FixedStep
		clock.TimeScale = spec.TimeScale
		ecs.ForEach(g.world, component.ControllerComponent.Kind(), func(_ ecs.Entity, c *component.Controller) {
			c.Config.GravityY = spec.GravityY
			c.Ctrl.SetConfig(c.Config)
		})
		return nil
	case prefabs.IsPlayerSpec(path):
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			return err
		}
		ecs.ForEach(g.world, component.ControllerComponent.Kind(), func(_ ecs.Entity, c *component.Controller) {
			c.Config = spec.ControllerConfig(g.worldSpec.GravityY)
			c.Ground = spec.GroundProbe()
			c.Pole = spec.PoleProbe()
			c.Ctrl.SetConfig(c.Config)
		})
		return nil
	case g.script != nil && isScript(path, g.scriptName):
		src, err := prefabs.LoadScript(g.scriptName)
		if err != nil {
			return err
		}
		return g.script.Reload(src)
	}
	return nil
}

func isScript(path, name string) bool {
	return filepath.Base(path) == filepath.Base(strings.TrimSuffix(name, ".tengo")+".tengo")
}

// Summary is the end-of-run report.
type Summary struct {
	Level    string
	Frames   uint64
	Steps    uint64
	Elapsed  float64
	X, Y     float64
	State    controller.State
	SafeFall float64
	Stats    system.RunStats
}

func (g *Game) Summary() Summary {
	clock := g.world.Clock()
	s := Summary{
		Level:   g.level.Name,
		Frames:  clock.Frames,
		Steps:   clock.FixedSteps,
		Elapsed: clock.Elapsed,
		Stats:   g.events.Stats,
	}
	if t, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind()); ok {
		s.X, s.Y = t.X, t.Y
	}
	if c, ok := ecs.Get(g.world, g.player, component.ControllerComponent.Kind()); ok {
		s.State = c.Ctrl.State()
		s.SafeFall = c.Ctrl.SafeFallHeight()
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"level=%s frames=%d steps=%d time=%.2fs pos=(%.2f, %.2f) phase=%s hurt=%.2fs spring=%t safe_fall=%.2f jumps=%d landings=%d damaged=%d won=%t",
		s.Level, s.Frames, s.Steps, s.Elapsed, s.X, s.Y, s.State.Phase, s.State.HurtRemaining,
		s.State.SpringActive, s.SafeFall, s.Stats.Jumps, s.Stats.Landings, s.Stats.Damaged, s.Stats.Won,
	)
}
