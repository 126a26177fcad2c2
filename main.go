package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"pinball/game"
)

func main() {
	config := game.DefaultConfig()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.NewGame(config, rng)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Pinball Arcade")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
