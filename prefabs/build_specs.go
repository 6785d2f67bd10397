package prefabs

import "gopkg.in/yaml.v3"

// DecodeComponentSpec converts a loosely typed props map, as found in level
// files, into a typed spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var out T
	if err := DecodeComponentSpecInto(raw, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// DecodeComponentSpecInto decodes raw over out, keeping fields raw omits.
func DecodeComponentSpecInto[T any](raw any, out *T) error {
	if raw == nil {
		return nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

type SolidComponentSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Friction float64 `yaml:"friction"`
}

type PoleComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Active defaults to true when omitted.
	Active *bool `yaml:"active"`
}

func (s PoleComponentSpec) IsActive() bool {
	return s.Active == nil || *s.Active
}

type SpringPickupComponentSpec struct {
	Duration float64 `yaml:"duration"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

type WindZoneComponentSpec struct {
	ForceX float64 `yaml:"force_x"`
	Drag   float64 `yaml:"drag"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type GoalComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}
