package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ball is the free body rolling around the playfield. The table owns at
// most one at a time and drops it when it drains through the bottom.
type Ball struct {
	// Position in playfield coordinates
	Pos mgl64.Vec2

	// Velocity in pixels per second
	Vel mgl64.Vec2
}

// NewBall creates a ball with the given position and velocity
func NewBall(pos, vel mgl64.Vec2) *Ball {
	return &Ball{Pos: pos, Vel: vel}
}

// Update integrates one tick of gravity and motion, then resolves the
// side and top walls. Velocity is updated before position (semi-implicit
// Euler) so the new velocity drives this tick's movement.
func (b *Ball) Update(dt float64, field mgl64.Vec2) {
	b.Vel[1] += gravity * dt
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
	b.handleWalls(field)
}

// handleWalls clamps the ball inside the left, right, and top borders and
// reflects the crossed velocity component with energy loss. The bottom
// edge has no wall; that is the drain.
func (b *Ball) handleWalls(field mgl64.Vec2) {
	if b.Pos[0]-ballRadius < wallInset {
		b.Pos[0] = wallInset + ballRadius
		b.Vel[0] = math.Abs(b.Vel[0]) * wallRestitution
	}
	if b.Pos[0]+ballRadius > field[0]-wallInset {
		b.Pos[0] = field[0] - wallInset - ballRadius
		b.Vel[0] = -math.Abs(b.Vel[0]) * wallRestitution
	}
	if b.Pos[1]-ballRadius < wallInset {
		b.Pos[1] = wallInset + ballRadius
		b.Vel[1] = math.Abs(b.Vel[1]) * wallRestitution
	}
}
