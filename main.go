package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/justin-david-todd/phoenix-clone/prefabs"
)

func main() {
	seed := flag.Uint64("seed", 0, "random seed (0 keeps game.yaml's seed, which may draw from the clock)")
	watch := flag.Bool("watch", false, "reload prefabs/ tables and scripts when they change on disk")
	debug := flag.Bool("debug", false, "draw collision mask outlines")
	spawnEvery := flag.Int("spawn", 90, "frames between enemy spawns (0 disables spawning)")
	flag.Parse()

	cfg, err := prefabs.LoadGameConfig()
	if err != nil {
		log.Printf("config: %v, using defaults", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	game, err := NewGame(cfg, Options{Debug: *debug, SpawnEvery: *spawnEvery})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if *watch {
		if err := game.Watch(); err != nil {
			log.Printf("watch: %v", err)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("phoenix")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
