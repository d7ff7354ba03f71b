package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/justin-david-todd/phoenix-clone/assets"
	"github.com/justin-david-todd/phoenix-clone/combat"
	"github.com/justin-david-todd/phoenix-clone/common"
	"github.com/justin-david-todd/phoenix-clone/ecs"
	"github.com/justin-david-todd/phoenix-clone/ecs/system"
	"github.com/justin-david-todd/phoenix-clone/movement"
	"github.com/justin-david-todd/phoenix-clone/prefabs"
)

// healthBarRoom keeps the player high enough for its health bar to show.
const healthBarRoom = 24

// Options are the demo's command-line switches.
type Options struct {
	Debug      bool
	SpawnEvery int
}

type Game struct {
	cfg     prefabs.GameConfig
	opts    Options
	catalog *assets.Catalog
	scripts *movement.Scripts
	images  *imageCache

	world   *ecs.World
	spawner *Spawner
	watcher *prefabs.Watcher

	pauseUI *ebitenui.UI
	title   *widget.Text
	paused  bool
	over    bool

	frames int
	score  int
}

func NewGame(cfg prefabs.GameConfig, opts Options) (*Game, error) {
	catalog, err := assets.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		opts:    opts,
		catalog: catalog,
		scripts: movement.NewScripts(prefabs.LoadScript),
		images:  newImageCache(),
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	g.pauseUI, g.title = NewPauseUI(g)
	return g, nil
}

// reset starts a fresh round with a new world and a full-health player.
func (g *Game) reset() error {
	armory, err := combat.LoadArmory(g.catalog, g.cfg.HitDamage)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	species, err := combat.LoadSpeciesTable()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	g.warmScripts(species)

	registry := combat.NewRegistry()
	factory := &combat.Factory{Species: species, Armory: armory, Patterns: g.scripts}
	world := ecs.NewWorld(g.cfg, factory, registry)
	system.Install(world)

	player, err := combat.NewPlayer(0, 0, g.cfg.PlayerHealth, armory, registry)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	win := world.Window()
	player.SetPosition(
		float64(win.Width-player.Width())/2,
		float64(win.Height-player.Height()-healthBarRoom),
	)
	world.SetPlayer(player)

	g.world = world
	g.spawner = NewSpawner(species.IDs(), g.opts.SpawnEvery)
	g.score = 0
	g.over = false
	g.paused = false
	return nil
}

func (g *Game) restart() {
	if err := g.reset(); err != nil {
		log.Printf("game: restart: %v", err)
		return
	}
	g.title.Label = "Paused"
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	if !g.over && (inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)) {
		g.paused = !g.paused
	}
	if g.paused || g.over {
		g.pauseUI.Update()
		return nil
	}

	g.steer()
	g.spawner.Update(g.world)
	for _, evt := range g.world.Update() {
		g.handle(evt)
	}
	return nil
}

// steer moves the player from the keyboard and keeps it on screen.
func (g *Game) steer() {
	p := g.world.Player()
	if p == nil {
		return
	}

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= p.Speed()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += p.Speed()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= p.Speed()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += p.Speed()
	}
	p.MoveBy(dx, dy)

	win := g.world.Window()
	p.SetPosition(
		common.Clamp(p.X(), 0, float64(win.Width-p.Width())),
		common.Clamp(p.Y(), 0, float64(win.Height-p.Height()-healthBarRoom)),
	)

	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.world.RequestFire()
	}
}

func (g *Game) handle(evt ecs.Event) {
	switch data := evt.Data.(type) {
	case ecs.EnemyDestroyed:
		g.score += data.Points
	case ecs.PlayerDestroyed:
		g.over = true
		g.title.Label = "Game Over"
		log.Printf("game: player destroyed at frame %d with score %d", g.frames, g.score)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.world.EachEnemy(func(_ ecs.Entity, e *combat.Enemy) {
		g.drawShip(screen, e.Core())
	})
	g.world.Registry().Each(func(p *combat.Projectile) {
		g.images.draw(screen, p.Sprite(), p.X(), p.Y())
		if g.opts.Debug {
			g.images.drawOutline(screen, p.Sprite(), p.X(), p.Y())
		}
	})
	if p := g.world.Player(); p != nil {
		g.drawShip(screen, p.Core())
		drawHealthBar(screen, p.HealthBar())
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Score: %d    Enemies: %d    Shots: %d    FPS: %.0f",
		g.score, g.world.EnemyCount(), g.world.Registry().Len(), ebiten.ActualFPS()))

	if g.paused || g.over {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawShip(screen *ebiten.Image, s *combat.Ship) {
	g.images.draw(screen, s.Sprite(), s.X(), s.Y())
	if g.opts.Debug {
		g.images.drawOutline(screen, s.Sprite(), s.X(), s.Y())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	win := g.world.Window()
	return win.Width, win.Height
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
