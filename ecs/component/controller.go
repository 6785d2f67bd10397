package component

import "github.com/milk9111/springpole/controller"

// Controller attaches a movement controller and its contact probes to a
// body entity. Ctrl is created on first update from Config.
type Controller struct {
	Ctrl   *controller.Controller
	Config controller.Config
	Ground controller.GroundProbe
	Pole   controller.PoleProbe
}

var ControllerComponent = NewComponent[Controller]()
