package component

// Goal ends the level when a controlled body enters its trigger volume.
type Goal struct {
	Level   string
	Reached bool
}

var GoalComponent = NewComponent[Goal]()
