package system

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/springpole/common"
	"github.com/milk9111/springpole/ecs"
	"github.com/milk9111/springpole/ecs/component"
)

// StaticInputSystem holds a constant horizontal axis and never jumps.
type StaticInputSystem struct {
	MoveX float64
}

func NewStaticInputSystem(moveX float64) *StaticInputSystem {
	return &StaticInputSystem{MoveX: moveX}
}

func (i *StaticInputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = common.Clamp(i.MoveX, -1, 1)
		input.Jump = false
		input.JumpPressed = false
	})
}

// inputDispatchScript is appended to every input script. Scripts define
// `input := func(engine, state) { ... }` returning a map with `move_x` and
// `jump`.
const inputDispatchScript = `
__result = input(__engine, __state)
`

// ScriptedInputSystem drives Input components from a tengo script. The jump
// edge is derived from the script's held `jump` value.
type ScriptedInputSystem struct {
	name      string
	compiled  *tengo.Compiled
	stateData *tengo.Map
	jumpHeld  map[ecs.Entity]bool
	failed    bool
}

// NewScriptedInputSystem compiles src. name is used in log messages.
func NewScriptedInputSystem(name string, src []byte) (*ScriptedInputSystem, error) {
	s := &ScriptedInputSystem{name: name, jumpHeld: map[ecs.Entity]bool{}}
	if err := s.Reload(src); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload recompiles the script. Script state is kept.
func (s *ScriptedInputSystem) Reload(src []byte) error {
	if s == nil {
		return fmt.Errorf("input: nil script system")
	}
	script := tengo.NewScript([]byte(string(src) + "\n" + inputDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__result", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("input: compile %s: %w", s.name, err)
	}
	s.compiled = compiled
	if s.stateData == nil {
		s.stateData = &tengo.Map{Value: map[string]tengo.Object{}}
	}
	s.failed = false
	return nil
}

func (s *ScriptedInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.compiled == nil || s.failed {
		return
	}
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		if s.failed {
			return
		}
		moveX, jump, err := s.run(w, e)
		if err != nil {
			// Stop after the first error rather than log every frame.
			log.Printf("input: script %s entity=%v error: %v", s.name, e, err)
			s.failed = true
			return
		}
		input.MoveX = moveX
		input.JumpPressed = jump && !s.jumpHeld[e]
		input.Jump = jump
		s.jumpHeld[e] = jump
	})
}

func (s *ScriptedInputSystem) run(w *ecs.World, e ecs.Entity) (float64, bool, error) {
	if err := s.compiled.Set("__engine", buildInputEngine(w, e)); err != nil {
		return 0, false, err
	}
	if err := s.compiled.Set("__state", s.stateData); err != nil {
		return 0, false, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, false, err
	}

	result := s.compiled.Get("__result").Map()
	moveX := 0.0
	switch v := result["move_x"].(type) {
	case float64:
		moveX = v
	case int64:
		moveX = float64(v)
	}
	if math.IsNaN(moveX) {
		moveX = 0
	}
	jump, _ := result["jump"].(bool)
	return common.Clamp(moveX, -1, 1), jump, nil
}

func buildInputEngine(w *ecs.World, e ecs.Entity) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}
	clock := w.Clock()

	values["frame"] = &tengo.UserFunction{Name: "frame", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(clock.Frames)}, nil
	}}

	values["time"] = &tengo.UserFunction{Name: "time", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: clock.Elapsed}, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, y := 0.0, 0.0
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			x, y = t.X, t.Y
		}
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}}}, nil
	}}

	c, _ := ecs.Get(w, e, component.ControllerComponent.Kind())
	state := func() controllerView { return viewController(c) }

	values["phase"] = &tengo.UserFunction{Name: "phase", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: state().phase}, nil
	}}

	values["grounded"] = &tengo.UserFunction{Name: "grounded", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(state().grounded), nil
	}}

	values["hurt"] = &tengo.UserFunction{Name: "hurt", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: state().hurt}, nil
	}}

	values["spring"] = &tengo.UserFunction{Name: "spring", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(state().spring), nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

type controllerView struct {
	phase    string
	grounded bool
	hurt     float64
	spring   bool
}

func viewController(c *component.Controller) controllerView {
	if c == nil || c.Ctrl == nil {
		return controllerView{phase: "grounded"}
	}
	st := c.Ctrl.State()
	return controllerView{
		phase:    st.Phase.String(),
		grounded: st.Grounded,
		hurt:     st.HurtRemaining,
		spring:   st.SpringActive,
	}
}
