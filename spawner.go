package main

import (
	"log"

	"github.com/justin-david-todd/phoenix-clone/ecs"
)

const (
	// spawnY starts enemies just above the top edge.
	spawnY = -32
	// spawnMargin keeps spawns from hugging the right edge.
	spawnMargin = 64
)

// Spawner drops a random species in at a random column every few frames.
type Spawner struct {
	species   []string
	every     int
	countdown int
}

// NewSpawner spawns from species every `every` frames. every <= 0 disables it.
func NewSpawner(species []string, every int) *Spawner {
	return &Spawner{species: species, every: every, countdown: every}
}

// SetSpecies swaps the spawn pool, e.g. after species.yaml is reloaded.
func (s *Spawner) SetSpecies(species []string) {
	if s == nil {
		return
	}
	s.species = species
}

func (s *Spawner) Update(w *ecs.World) {
	if s == nil || w == nil || s.every <= 0 || len(s.species) == 0 {
		return
	}
	if _, err := w.RequirePlayer(); err != nil {
		return
	}
	s.countdown--
	if s.countdown > 0 {
		return
	}
	s.countdown = s.every

	rng := w.Rand()
	id := s.species[rng.IntN(len(s.species))]
	span := w.Window().Width - spawnMargin
	if span < 1 {
		span = 1
	}
	x := float64(rng.IntN(span))
	if _, err := w.Spawn(id, x, spawnY); err != nil {
		log.Printf("spawner: %v", err)
	}
}
