package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/justin-david-todd/phoenix-clone/combat"
	"github.com/justin-david-todd/phoenix-clone/movement"
	"github.com/justin-david-todd/phoenix-clone/prefabs"
)

var errNoPrefabDir = errors.New("no prefabs directory on disk")

// Watch reloads species, projectiles and movement scripts from the on-disk
// prefabs directory whenever they change.
func (g *Game) Watch() error {
	var dirs []string
	for _, dir := range []string{prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return fmt.Errorf("reload: %w", errNoPrefabDir)
	}

	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	g.watcher = w
	log.Printf("reload: watching %v", dirs)
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("reload: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	if change.Kind == prefabs.ChangeScript {
		g.scripts.Invalidate()
		g.warmScripts(g.world.Factory().Species)
		log.Printf("reload: %s (applies to new spawns)", change.Name())
		return
	}

	factory := g.world.Factory()
	switch change.Name() {
	case "species.yaml":
		species, err := combat.LoadSpeciesTable()
		if err != nil {
			log.Printf("reload: %s: %v", change.Name(), err)
			return
		}
		factory.Species = species
		g.warmScripts(species)
		g.spawner.SetSpecies(species.IDs())
	case "projectiles.yaml":
		armory, err := combat.LoadArmory(g.catalog, g.cfg.HitDamage)
		if err != nil {
			log.Printf("reload: %s: %v", change.Name(), err)
			return
		}
		factory.Armory = armory
	default:
		log.Printf("reload: %s changed, restart to apply", change.Name())
		return
	}
	log.Printf("reload: %s", change.Name())
}

// warmScripts compiles the scripts the species table refers to, so a broken
// script is reported when it is loaded rather than at the first spawn.
func (g *Game) warmScripts(species combat.SpeciesTable) {
	for _, name := range movement.ScriptNames(species.Kinds()) {
		if _, err := g.scripts.Resolve(movement.ScriptKind(name)); err != nil {
			log.Printf("reload: script %s: %v", name, err)
		}
	}
}
