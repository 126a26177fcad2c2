package game

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Bumper is a static circular obstacle. Immutable after table setup; it
// only reacts by kicking the ball away on contact.
type Bumper struct {
	// Pos is the bumper center in playfield coordinates
	Pos mgl64.Vec2

	// Color used by the renderer
	Color color.NRGBA

	// Value is the score awarded per hit
	Value int
}

// Collide tests the ball against the bumper circle and resolves the
// contact: reflect the velocity about the outward normal, add a damped
// impulse along it, and park the ball just outside the contact radius so
// residual overlap cannot retrigger on the next tick. Returns whether
// contact happened; the caller scores the hit.
func (bp *Bumper) Collide(ball *Ball) bool {
	offset := ball.Pos.Sub(bp.Pos)
	if offset.Len() > bumperRadius+ballRadius {
		return false
	}
	normal := offset.Normalize()
	impulse := normal.Mul(bumperForce)
	ball.Vel = reflect(ball.Vel, normal).Add(impulse.Mul(bumperDamping))
	ball.Pos = bp.Pos.Add(normal.Mul(bumperRadius + ballRadius + bumperClearance))
	return true
}
