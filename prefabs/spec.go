package prefabs

import (
	"fmt"

	"github.com/milk9111/springpole/controller"
	"gopkg.in/yaml.v3"
)

// LoadSpecInto decodes filename over spec, so keys missing from the file keep
// the values spec already holds.
func LoadSpecInto[T any](filename string, spec *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	Collider  ColliderSpec  `yaml:"collider"`
	Body      BodySpec      `yaml:"body"`
	Movement  MovementSpec  `yaml:"movement"`
	Ground    GroundSpec    `yaml:"ground_check"`
	PoleCheck PoleCheckSpec `yaml:"pole_check"`
	Hurt      HurtSpec      `yaml:"hurt"`
	Spring    SpringSpec    `yaml:"spring_shoes"`
	Slide     SlideSpec     `yaml:"pole_slide"`
	Wind      WindSpec      `yaml:"wind"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BodySpec struct {
	Mass         float64 `yaml:"mass"`
	GravityScale float64 `yaml:"gravity_scale"`
	Friction     float64 `yaml:"friction"`
}

type MovementSpec struct {
	MoveSpeed       float64 `yaml:"move_speed"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
	FacingThreshold float64 `yaml:"facing_threshold"`
}

type GroundSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Radius  float64 `yaml:"radius"`
}

type PoleCheckSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type HurtSpec struct {
	Duration        float64 `yaml:"duration"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

type SpringSpec struct {
	JumpHeightMultiplier float64 `yaml:"jump_height_multiplier"`
	PreventsFallDamage   bool    `yaml:"prevents_fall_damage"`
}

type SlideSpec struct {
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	MinDownSpeed  float64 `yaml:"min_down_speed"`
	GravityScale  float64 `yaml:"gravity_scale"`
	ControlFactor float64 `yaml:"control_factor"`
	SnapSpeed     float64 `yaml:"snap_speed"`
}

type WindSpec struct {
	ForceEpsilon float64 `yaml:"force_epsilon"`
}

// DefaultPlayerSpec mirrors controller.DefaultConfig plus the default body
// and probe geometry.
func DefaultPlayerSpec() PlayerSpec {
	cfg := controller.DefaultConfig()
	return PlayerSpec{
		Name:     "player",
		Collider: ColliderSpec{Width: 0.8, Height: 1},
		Body:     BodySpec{Mass: 1, GravityScale: 1},
		Movement: MovementSpec{
			MoveSpeed:       cfg.MoveSpeed,
			JumpImpulse:     cfg.JumpImpulse,
			FacingThreshold: cfg.FacingThreshold,
		},
		Ground:    GroundSpec{OffsetY: -0.5, Radius: 0.25},
		PoleCheck: PoleCheckSpec{Width: 0.2, Height: 0.9},
		Hurt: HurtSpec{
			Duration:        cfg.HurtDuration,
			SpeedMultiplier: cfg.HurtSpeedMultiplier,
		},
		Spring: SpringSpec{
			JumpHeightMultiplier: cfg.SpringJumpHeightMultiplier,
			PreventsFallDamage:   cfg.SpringPreventsFallDamage,
		},
		Slide: SlideSpec{
			MaxFallSpeed:  cfg.SlideMaxFallSpeed,
			MinDownSpeed:  cfg.SlideMinDownSpeed,
			GravityScale:  cfg.SlideGravityScale,
			ControlFactor: cfg.SlideControlFactor,
			SnapSpeed:     cfg.PoleSnapSpeed,
		},
		Wind: WindSpec{ForceEpsilon: cfg.WindForceEpsilon},
	}
}

// LoadPlayerSpec reads player.yaml over the defaults.
func LoadPlayerSpec() (*PlayerSpec, error) {
	spec := DefaultPlayerSpec()
	if err := LoadSpecInto("player.yaml", &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ControllerConfig builds the controller tuning for a world gravity.
func (s PlayerSpec) ControllerConfig(gravityY float64) controller.Config {
	return controller.Config{
		MoveSpeed:                  s.Movement.MoveSpeed,
		JumpImpulse:                s.Movement.JumpImpulse,
		GravityY:                   gravityY,
		HurtDuration:               s.Hurt.Duration,
		HurtSpeedMultiplier:        s.Hurt.SpeedMultiplier,
		SpringJumpHeightMultiplier: s.Spring.JumpHeightMultiplier,
		SpringPreventsFallDamage:   s.Spring.PreventsFallDamage,
		SlideMaxFallSpeed:          s.Slide.MaxFallSpeed,
		SlideMinDownSpeed:          s.Slide.MinDownSpeed,
		SlideGravityScale:          s.Slide.GravityScale,
		SlideControlFactor:         s.Slide.ControlFactor,
		PoleSnapSpeed:              s.Slide.SnapSpeed,
		FacingThreshold:            s.Movement.FacingThreshold,
		WindForceEpsilon:           s.Wind.ForceEpsilon,
	}
}

func (s PlayerSpec) GroundProbe() controller.GroundProbe {
	return controller.GroundProbe{OffsetX: s.Ground.OffsetX, OffsetY: s.Ground.OffsetY, Radius: s.Ground.Radius}
}

func (s PlayerSpec) PoleProbe() controller.PoleProbe {
	return controller.PoleProbe{OffsetX: s.PoleCheck.OffsetX, OffsetY: s.PoleCheck.OffsetY, Width: s.PoleCheck.Width, Height: s.PoleCheck.Height}
}

type WorldSpec struct {
	GravityY      float64 `yaml:"gravity_y"`
	FixedStep     float64 `yaml:"fixed_step"`
	Iterations    int     `yaml:"iterations"`
	MaxFixedSteps int     `yaml:"max_fixed_steps"`
	TimeScale     float64 `yaml:"time_scale"`
}

func DefaultWorldSpec() WorldSpec {
	return WorldSpec{
		GravityY:      -9.81,
		FixedStep:     0.02,
		Iterations:    20,
		MaxFixedSteps: 8,
		TimeScale:     1,
	}
}

// LoadWorldSpec reads world.yaml over the defaults. Non-positive step and
// scale values fall back to the defaults.
func LoadWorldSpec() (*WorldSpec, error) {
	spec := DefaultWorldSpec()
	if err := LoadSpecInto("world.yaml", &spec); err != nil {
		return nil, err
	}
	def := DefaultWorldSpec()
	if spec.FixedStep <= 0 {
		spec.FixedStep = def.FixedStep
	}
	if spec.MaxFixedSteps <= 0 {
		spec.MaxFixedSteps = def.MaxFixedSteps
	}
	if spec.TimeScale < 0 {
		spec.TimeScale = def.TimeScale
	}
	return &spec, nil
}
