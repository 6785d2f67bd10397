package component

// Transform is the world-space placement of an entity. Y grows upwards.
// ScaleX is negated while the entity faces left.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
