package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"pinball/game"
)

func main() {
	seed := flag.Int64("seed", 1, "random seed for launch jitter and bumper colors")
	seconds := flag.Float64("seconds", 60, "simulated time to run")
	tickRate := flag.Float64("tick-rate", 60, "simulation ticks per second")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatal("tick-rate must be positive")
	}
	if *seconds <= 0 {
		log.Fatal("seconds must be positive")
	}

	config := game.DefaultConfig()
	table := game.NewTable(config, rand.New(rand.NewSource(*seed)))

	dt := 1.0 / *tickRate
	ticks := int(*seconds * *tickRate)
	hits := 0
	drains := 0

	log.Printf("running %d ticks at %.0f Hz (seed %d)\n", ticks, *tickRate, *seed)

	for i := 0; i < ticks; i++ {
		// Hold both flippers and relaunch whenever the ball drains.
		in := game.Input{
			FlipLeft:  true,
			FlipRight: true,
			Launch:    table.Ball == nil,
		}
		hadBall := table.Ball != nil
		table.Advance(in, dt)
		hits += len(table.Hits())
		if hadBall && table.Ball == nil {
			drains++
		}
	}

	fmt.Printf("simulated %.1fs: score %d, bumper hits %d, drains %d\n",
		*seconds, table.Score, hits, drains)
}
