package controller

import "github.com/milk9111/springpole/common"

// WindField is the single external horizontal force acting on the body.
type WindField struct {
	ForceX float64
	Drag   float64
}

func (w *WindField) Set(forceX, drag float64) {
	w.ForceX = forceX
	w.Drag = common.Clamp01(drag)
}

func (w *WindField) Clear() {
	w.ForceX = 0
	w.Drag = 0
}

func (w WindField) Active() bool {
	return w.ForceX != 0 || w.Drag > 0
}
