package game

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Flipper is a pivoting paddle. The pivot and side are fixed at table
// setup; each tick the angle chases the rest or activated target
// depending on the Activated flag set from input.
type Flipper struct {
	// Pivot is the fixed rotation point in playfield coordinates
	Pivot mgl64.Vec2

	// IsLeft mirrors the paddle geometry for the left side
	IsLeft bool

	// Color used by the renderer
	Color color.NRGBA

	// Angle in radians, always within [rest, activated]
	Angle float64

	// Activated selects the actuation target for the current tick
	Activated bool
}

// NewFlipper creates a flipper at the rest angle
func NewFlipper(pivot mgl64.Vec2, isLeft bool, clr color.NRGBA) *Flipper {
	return &Flipper{
		Pivot:  pivot,
		IsLeft: isLeft,
		Color:  clr,
		Angle:  flipperRestAngle,
	}
}

// Toggle sets the actuation target for the current tick
func (f *Flipper) Toggle(active bool) {
	f.Activated = active
}

// Update moves the angle toward the selected target at the bounded
// angular rate. The angle is clamped at the target so it never
// overshoots, and snapped once within tolerance so it settles exactly
// instead of jittering around equality.
func (f *Flipper) Update(dt float64) {
	target := flipperRestAngle
	if f.Activated {
		target = flipperFlipAngle
	}
	if math.Abs(f.Angle-target) <= flipperSnapTol {
		f.Angle = target
		return
	}
	direction := 1.0
	if target < f.Angle {
		direction = -1.0
	}
	f.Angle += direction * flipperSpeed * dt
	if (direction > 0 && f.Angle > target) || (direction < 0 && f.Angle < target) {
		f.Angle = target
	}
}

// Tip returns the free end of the paddle. The right flipper mirrors the
// vertical component so the pair sweeps symmetrically.
func (f *Flipper) Tip() mgl64.Vec2 {
	direction := mgl64.Vec2{math.Cos(f.Angle), math.Sin(f.Angle)}
	if !f.IsLeft {
		direction[1] = -direction[1]
	}
	return f.Pivot.Add(direction.Mul(flipperLength))
}

// Collide tests the ball against the paddle capsule (the pivot-to-tip
// segment thickened by half the paddle width) and resolves the contact:
// reflect the velocity about the contact normal, add an outward impulse,
// and push the ball clear of the paddle. The left flipper adds an extra
// upward kick; the asymmetry is an intentional gameplay quirk. Returns
// whether contact happened.
func (f *Flipper) Collide(ball *Ball) bool {
	closest := closestPointOnSegment(f.Pivot, f.Tip(), ball.Pos)
	offset := ball.Pos.Sub(closest)
	if offset.Len() > ballRadius+flipperThickness/2 {
		return false
	}
	normal := offset.Normalize()
	ball.Vel = reflect(ball.Vel, normal).Add(normal.Mul(flipperImpulse))
	ball.Pos = ball.Pos.Add(normal.Mul(flipperPushOut))
	if f.IsLeft {
		ball.Vel[1] -= leftFlipperKick
	}
	return true
}
