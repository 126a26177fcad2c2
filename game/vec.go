package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// reflect mirrors v about the unit normal n.
func reflect(v, n mgl64.Vec2) mgl64.Vec2 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// closestPointOnSegment returns the point on segment ab nearest to p.
func closestPointOnSegment(a, b, p mgl64.Vec2) mgl64.Vec2 {
	ab := b.Sub(a)
	t := p.Sub(a).Dot(ab) / ab.Dot(ab)
	t = math.Max(0, math.Min(1, t))
	return a.Add(ab.Mul(t))
}
