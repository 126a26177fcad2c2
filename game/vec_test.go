package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestReflectAboutNormal(t *testing.T) {
	v := mgl64.Vec2{1, -1}
	n := mgl64.Vec2{0, 1}

	got := reflect(v, n)

	if math.Abs(got[0]-1) > 1e-9 || math.Abs(got[1]-1) > 1e-9 {
		t.Errorf("reflect = (%f, %f), want (1, 1)", got[0], got[1])
	}
}

func TestReflectPreservesTangentialComponent(t *testing.T) {
	v := mgl64.Vec2{3, -4}
	n := mgl64.Vec2{0, 1}

	got := reflect(v, n)

	if math.Abs(got[0]-3) > 1e-9 {
		t.Errorf("tangential component = %f, want 3", got[0])
	}
	if math.Abs(got.Len()-v.Len()) > 1e-9 {
		t.Errorf("reflected length = %f, want %f", got.Len(), v.Len())
	}
}

func TestClosestPointOnSegmentInterior(t *testing.T) {
	a := mgl64.Vec2{0, 0}
	b := mgl64.Vec2{10, 0}

	got := closestPointOnSegment(a, b, mgl64.Vec2{4, 7})

	if math.Abs(got[0]-4) > 1e-9 || math.Abs(got[1]) > 1e-9 {
		t.Errorf("closest = (%f, %f), want (4, 0)", got[0], got[1])
	}
}

func TestClosestPointOnSegmentClampsToEnds(t *testing.T) {
	a := mgl64.Vec2{0, 0}
	b := mgl64.Vec2{10, 0}

	past := closestPointOnSegment(a, b, mgl64.Vec2{20, 5})
	if math.Abs(past[0]-10) > 1e-9 || math.Abs(past[1]) > 1e-9 {
		t.Errorf("closest past end = (%f, %f), want (10, 0)", past[0], past[1])
	}

	before := closestPointOnSegment(a, b, mgl64.Vec2{-5, 3})
	if math.Abs(before[0]) > 1e-9 || math.Abs(before[1]) > 1e-9 {
		t.Errorf("closest before start = (%f, %f), want (0, 0)", before[0], before[1])
	}
}
