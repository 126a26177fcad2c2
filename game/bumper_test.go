package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBumperHitReversesDownwardBall(t *testing.T) {
	bumper := &Bumper{Pos: mgl64.Vec2{100, 100}, Color: colorBumperBlue, Value: 150}
	ball := NewBall(mgl64.Vec2{100, 70}, mgl64.Vec2{0, 200})

	if !bumper.Collide(ball) {
		t.Fatal("expected contact at distance 30")
	}

	// Reflected (0,200) about (0,-1) is (0,-200); plus the damped
	// impulse 650*0.4 along the normal.
	wantVY := -200.0 - bumperForce*bumperDamping
	if math.Abs(ball.Vel[1]-wantVY) > 1e-9 {
		t.Errorf("Vel.y = %f, want %f", ball.Vel[1], wantVY)
	}
	if ball.Vel[1] >= 0 {
		t.Error("Vel.y should flip upward after a hit from above")
	}
}

func TestBumperHitRelocatesBallToClearance(t *testing.T) {
	bumper := &Bumper{Pos: mgl64.Vec2{100, 100}, Color: colorBumperBlue, Value: 150}
	ball := NewBall(mgl64.Vec2{100, 70}, mgl64.Vec2{0, 200})

	bumper.Collide(ball)

	wantDist := bumperRadius + ballRadius + bumperClearance
	gotDist := ball.Pos.Sub(bumper.Pos).Len()
	if math.Abs(gotDist-wantDist) > 1e-9 {
		t.Errorf("distance after hit = %f, want exactly %f", gotDist, wantDist)
	}
	if math.Abs(ball.Pos[0]-100) > 1e-9 || math.Abs(ball.Pos[1]-(100-wantDist)) > 1e-9 {
		t.Errorf("Pos = (%f, %f), want (100, %f)", ball.Pos[0], ball.Pos[1], 100-wantDist)
	}
}

func TestBumperRelocationPreventsRetrigger(t *testing.T) {
	bumper := &Bumper{Pos: mgl64.Vec2{100, 100}, Color: colorBumperBlue, Value: 150}
	ball := NewBall(mgl64.Vec2{100, 70}, mgl64.Vec2{0, 200})

	bumper.Collide(ball)

	if bumper.Collide(ball) {
		t.Error("second collide on the relocated ball should miss")
	}
}

func TestBumperMissLeavesBallAlone(t *testing.T) {
	bumper := &Bumper{Pos: mgl64.Vec2{100, 100}, Color: colorBumperBlue, Value: 150}
	ball := NewBall(mgl64.Vec2{100, 50}, mgl64.Vec2{5, 7})

	if bumper.Collide(ball) {
		t.Fatal("unexpected contact at distance 50")
	}
	if ball.Pos[0] != 100 || ball.Pos[1] != 50 {
		t.Errorf("Pos = (%f, %f), want unchanged", ball.Pos[0], ball.Pos[1])
	}
	if ball.Vel[0] != 5 || ball.Vel[1] != 7 {
		t.Errorf("Vel = (%f, %f), want unchanged", ball.Vel[0], ball.Vel[1])
	}
}
