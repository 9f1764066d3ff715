package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"wildfire-ca/internal/sims/fire"
	"wildfire-ca/internal/tty"
)

func main() {
	size := flag.Int("size", 48, "grid size")
	wind := flag.Float64("wind", 5, "wind speed (m/s)")
	direction := flag.Float64("dir", 45, "wind direction in degrees")
	humidity := flag.Float64("humidity", 30, "relative humidity percentage")
	steps := flag.Int("steps", 50, "maximum simulation steps")
	seed := flag.Int64("seed", 1337, "random seed")
	sps := flag.Int("sps", 6, "playback frames per second")
	ignite := flag.Int("ignite", 3, "random ignition points")
	flag.Parse()

	cfg := fire.DefaultConfig()
	cfg.Params.GridSize = *size
	cfg.Params.WindSpeed = *wind
	cfg.Params.WindDirection = *direction
	cfg.Params.Humidity = *humidity
	cfg.Params.TimeSteps = *steps
	cfg.Seed = *seed

	world, err := fire.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	world.IgniteRandom(*ignite)
	res := world.Run(0)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	tty.NewPlayer(screen, res.History, *sps).Run()
	screen.Fini()

	fmt.Printf("%d steps, %.1f%% of the area affected\n", res.Steps, res.Final.AffectedPct)
}
