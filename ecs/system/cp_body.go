package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/springpole/controller"
)

// CPBody adapts a Chipmunk body to controller.Body. Gravity scale is applied
// by a velocity update func that scales the space gravity for this body only.
type CPBody struct {
	body         *cp.Body
	gravityScale float64
}

var _ controller.Body = (*CPBody)(nil)

func NewCPBody(body *cp.Body, gravityScale float64) *CPBody {
	b := &CPBody{body: body, gravityScale: gravityScale}
	if body != nil {
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
		})
	}
	return b
}

func (b *CPBody) Position() (float64, float64) {
	if b == nil || b.body == nil {
		return 0, 0
	}
	p := b.body.Position()
	return p.X, p.Y
}

func (b *CPBody) SetPosition(x, y float64) {
	if b == nil || b.body == nil {
		return
	}
	b.body.SetPosition(cp.Vector{X: x, Y: y})
}

func (b *CPBody) Velocity() (float64, float64) {
	if b == nil || b.body == nil {
		return 0, 0
	}
	v := b.body.Velocity()
	return v.X, v.Y
}

func (b *CPBody) SetVelocity(x, y float64) {
	if b == nil || b.body == nil {
		return
	}
	b.body.SetVelocity(x, y)
}

func (b *CPBody) Mass() float64 {
	if b == nil || b.body == nil {
		return 0
	}
	return b.body.Mass()
}

func (b *CPBody) GravityScale() float64 {
	if b == nil {
		return 0
	}
	return b.gravityScale
}

func (b *CPBody) SetGravityScale(scale float64) {
	if b == nil {
		return
	}
	b.gravityScale = scale
}

func (b *CPBody) ApplyImpulse(x, y float64) {
	if b == nil || b.body == nil {
		return
	}
	b.body.ApplyImpulseAtLocalPoint(cp.Vector{X: x, Y: y}, cp.Vector{})
}

// ApplyForce accumulates until the next space step, which resets it.
func (b *CPBody) ApplyForce(x, y float64) {
	if b == nil || b.body == nil {
		return
	}
	b.body.ApplyForceAtLocalPoint(cp.Vector{X: x, Y: y}, cp.Vector{})
}
