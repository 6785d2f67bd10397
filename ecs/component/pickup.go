package component

// SpringPickup grants spring shoes once. Duration <= 0 never expires.
type SpringPickup struct {
	Duration float64
}

var SpringPickupComponent = NewComponent[SpringPickup]()
