package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Table owns the playfield: two flippers, the fixed bumper set, the live
// ball if any, and the running score. Score only ever goes up; it is
// never reset during a session.
type Table struct {
	config Config
	rng    *rand.Rand

	// Left and Right are the flipper pair
	Left  *Flipper
	Right *Flipper

	// Bumpers in fixed enumeration order
	Bumpers []*Bumper

	// Ball is the live ball, or nil between drain and launch
	Ball *Ball

	// Score accumulated this session
	Score int

	// Bumper indices hit during the last Advance
	hits []int
}

// NewTable builds the table layout. The rng drives launch jitter and the
// bumper color picks; seed it for deterministic behavior.
func NewTable(config Config, rng *rand.Rand) *Table {
	t := &Table{
		config: config,
		rng:    rng,
		Left:   NewFlipper(mgl64.Vec2{270, 820}, true, colorFlipper),
		Right:  NewFlipper(mgl64.Vec2{530, 820}, false, colorFlipper),
		hits:   make([]int, 0, 4),
	}
	t.Bumpers = t.buildBumpers()
	return t
}

// buildBumpers lays out the fixed three-row grid plus the center bumper
func (t *Table) buildBumpers() []*Bumper {
	bumpers := make([]*Bumper, 0, 13)
	for _, y := range []float64{260, 360, 460} {
		for _, x := range []float64{220, 320, 480, 580} {
			clr := colorBumperBlue
			if t.rng.Intn(2) == 1 {
				clr = colorBumperRed
			}
			bumpers = append(bumpers, &Bumper{
				Pos:   mgl64.Vec2{x, y},
				Color: clr,
				Value: 150,
			})
		}
	}
	bumpers = append(bumpers, &Bumper{
		Pos:   mgl64.Vec2{t.config.FieldWidth / 2, 560},
		Color: colorBumperBlue,
		Value: 250,
	})
	return bumpers
}

// Launch puts a fresh ball in the chute with a strong upward shove and a
// small random horizontal spread. A live ball makes this a no-op.
func (t *Table) Launch() {
	if t.Ball != nil {
		return
	}
	spawn := mgl64.Vec2{t.config.FieldWidth - 70, t.config.FieldHeight - 80}
	vel := mgl64.Vec2{t.rng.Float64()*2*launchJitter - launchJitter, -launchSpeed}
	t.Ball = NewBall(spawn, vel)
}

// Advance runs one simulation tick: actuation targets from the input
// snapshot, flipper angles, launch, then ball integration and collision
// resolution in a fixed order (left flipper, right flipper, bumpers in
// slice order), and finally the drain check.
func (t *Table) Advance(in Input, dt float64) {
	t.hits = t.hits[:0]

	t.Left.Toggle(in.FlipLeft)
	t.Right.Toggle(in.FlipRight)
	t.Left.Update(dt)
	t.Right.Update(dt)

	if in.Launch {
		t.Launch()
	}
	if t.Ball == nil {
		return
	}

	field := mgl64.Vec2{t.config.FieldWidth, t.config.FieldHeight}
	t.Ball.Update(dt, field)

	t.Left.Collide(t.Ball)
	t.Right.Collide(t.Ball)
	for i, bumper := range t.Bumpers {
		if bumper.Collide(t.Ball) {
			t.Score += bumper.Value
			t.hits = append(t.hits, i)
		}
	}

	if t.Ball.Pos[1]-ballRadius > t.config.FieldHeight+drainMargin {
		t.Ball = nil
	}
}

// Hits reports which bumpers were struck during the last Advance, for
// render effects and future sound hooks.
func (t *Table) Hits() []int {
	return t.hits
}
