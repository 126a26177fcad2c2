package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// bumperFlash eases a just-hit bumper back to its rest color
type bumperFlash struct {
	tween *gween.Tween
	level float32
}

// Renderer draws the table. It holds only cosmetic state (hit flashes);
// all simulation state is read from the table each frame.
type Renderer struct {
	config  Config
	flashes map[int]*bumperFlash
}

// NewRenderer creates a new renderer
func NewRenderer(config Config) *Renderer {
	return &Renderer{
		config:  config,
		flashes: make(map[int]*bumperFlash),
	}
}

// Update advances flash animations and starts new ones for bumpers hit
// during the last tick.
func (r *Renderer) Update(table *Table, dt float64) {
	for _, i := range table.Hits() {
		r.flashes[i] = &bumperFlash{tween: gween.New(1, 0, flashDuration, ease.OutQuad)}
	}
	for i, flash := range r.flashes {
		level, done := flash.tween.Update(float32(dt))
		flash.level = level
		if done {
			delete(r.flashes, i)
		}
	}
}

// Draw renders the whole frame from the table's current state
func (r *Renderer) Draw(screen *ebiten.Image, table *Table) {
	screen.Fill(colorBackground)
	r.drawWalls(screen)
	for i, bumper := range table.Bumpers {
		r.drawBumper(screen, i, bumper)
	}
	r.drawFlipper(screen, table.Left)
	r.drawFlipper(screen, table.Right)
	if table.Ball != nil {
		r.drawBall(screen, table.Ball)
	}
	r.drawHUD(screen, table)
}

// drawWalls draws the playfield frame and the launcher chute decoration
func (r *Renderer) drawWalls(screen *ebiten.Image) {
	w := float32(r.config.FieldWidth)
	h := float32(r.config.FieldHeight)
	vector.StrokeRect(screen, 10, 10, w-20, h-20, 16, colorWallFrame, true)
	vector.DrawFilledRect(screen, w-120, h-170, 90, 160, colorChute, true)
	vector.StrokeCircle(screen, w-75, h-190, 50, 8, colorLauncherRim, true)
}

func (r *Renderer) drawBumper(screen *ebiten.Image, index int, bumper *Bumper) {
	cx := float32(bumper.Pos[0])
	cy := float32(bumper.Pos[1])
	clr := bumper.Color
	if flash, ok := r.flashes[index]; ok {
		clr = flashColor(clr, flash.level)
	}
	vector.DrawFilledCircle(screen, cx+4, cy+6, bumperRadius+3, colorShadow, true)
	vector.DrawFilledCircle(screen, cx, cy, bumperRadius, clr, true)
	vector.DrawFilledCircle(screen, cx, cy, 8, colorWhite, true)
}

func (r *Renderer) drawFlipper(screen *ebiten.Image, flipper *Flipper) {
	tip := flipper.Tip()
	px := float32(flipper.Pivot[0])
	py := float32(flipper.Pivot[1])
	tx := float32(tip[0])
	ty := float32(tip[1])
	vector.StrokeLine(screen, px+3, py+3, tx+3, ty+3, flipperThickness, colorShadow, true)
	vector.StrokeLine(screen, px, py, tx, ty, flipperThickness, flipper.Color, true)
	vector.DrawFilledCircle(screen, px, py, flipperThickness/2, flipper.Color, true)
}

func (r *Renderer) drawBall(screen *ebiten.Image, ball *Ball) {
	cx := float32(ball.Pos[0])
	cy := float32(ball.Pos[1])
	vector.DrawFilledCircle(screen, cx+3, cy+5, ballRadius, colorShadow, true)
	vector.DrawFilledCircle(screen, cx, cy, ballRadius, colorBall, true)
}

// flashColor blends the bumper color toward white by the flash level
func flashColor(base color.NRGBA, level float32) color.NRGBA {
	mix := func(c uint8) uint8 {
		return uint8(float32(c) + (255-float32(c))*level)
	}
	return color.NRGBA{R: mix(base.R), G: mix(base.G), B: mix(base.B), A: base.A}
}
