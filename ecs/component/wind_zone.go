package component

// WindZone pushes bodies inside its trigger volume. Positive ForceX pushes
// right. Drag damps horizontal velocity and is clamped to [0, 1].
type WindZone struct {
	ForceX float64
	Drag   float64
}

var WindZoneComponent = NewComponent[WindZone]()
