package component

// Solid is static level geometry centred on its Transform.
type Solid struct {
	Width    float64
	Height   float64
	Friction float64
}

var SolidComponent = NewComponent[Solid]()
