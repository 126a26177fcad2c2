package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var hudFace = basicfont.Face7x13

// drawHUD draws the score, the control help line, and a centered launch
// prompt while no ball is live
func (r *Renderer) drawHUD(screen *ebiten.Image, table *Table) {
	text.Draw(screen, fmt.Sprintf("Score: %d", table.Score), hudFace, 24, 34, colorWhite)
	text.Draw(screen, "Space to launch, Arrow/A-D to flip", hudFace, 24, 60, colorWhite)

	if table.Ball == nil {
		prompt := "Press SPACE to launch a ball"
		bounds := text.BoundString(hudFace, prompt)
		x := (int(r.config.FieldWidth) - bounds.Dx()) / 2
		y := int(r.config.FieldHeight) - 70
		text.Draw(screen, prompt, hudFace, x, y, colorWhite)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()),
		24, int(r.config.FieldHeight)-40)
}
