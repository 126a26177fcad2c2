package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game wires the keyboard, the table, and the renderer into the ebiten
// loop. Each Update is one simulation tick; Draw only reads the
// resulting state.
type Game struct {
	table    *Table
	input    InputSource
	renderer *Renderer
	config   Config

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a new game instance
func NewGame(config Config, rng *rand.Rand) *Game {
	return &Game{
		table:          NewTable(config, rng),
		input:          NewKeyboardInput(),
		renderer:       NewRenderer(config),
		config:         config,
		lastUpdateTime: time.Now(),
	}
}

// Update runs one tick of the simulation
func (g *Game) Update() error {
	// Calculate delta time
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps after a stall
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}

	g.handleWindowInput()

	in := g.input.Poll()
	if in.Quit {
		return ebiten.Termination
	}

	g.table.Advance(in, deltaTime)
	g.renderer.Update(g.table, deltaTime)
	return nil
}

// handleWindowInput toggles fullscreen on Alt+Enter
func (g *Game) handleWindowInput() {
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyAltLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyAltRight)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.table)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
