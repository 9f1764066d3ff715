//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wildfire-ca/internal/app"
	"wildfire-ca/internal/core"
	_ "wildfire-ca/internal/sims/fire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}

	sim := factory(cfg.SimParams())
	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("wildfire-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
