package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-tick snapshot of logical actions the table consumes.
// FlipLeft and FlipRight are level-triggered and re-evaluated every tick;
// Launch and Quit fire once per key press.
type Input struct {
	FlipLeft  bool
	FlipRight bool
	Launch    bool
	Quit      bool
}

// InputSource produces one Input snapshot per tick
type InputSource interface {
	Poll() Input
}

// KeyboardInput reads the keyboard through ebiten. Arrows or A/D drive
// the flippers, Space launches, Esc or Q quits.
type KeyboardInput struct{}

// NewKeyboardInput creates a keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll builds the input snapshot for the current tick
func (k *KeyboardInput) Poll() Input {
	return Input{
		FlipLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		FlipRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Launch:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:      inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}
