package ecs

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/justin-david-todd/phoenix-clone/combat"
	"github.com/justin-david-todd/phoenix-clone/prefabs"
)

var ErrNoPlayer = errors.New("ecs: world has no player")

// Hit is a collision found this frame, applied by the damage phase.
type Hit struct {
	// Enemy is the enemy involved. Zero for projectile hits on the player.
	Enemy Entity
	// Player is set when the player is the one taking damage.
	Player bool
	// Projectile is nil for a hull collision between an enemy and the player.
	Projectile *combat.Projectile
}

// World owns every entity of a running game and the order systems run in.
type World struct {
	entities  entityStore
	enemies   SparseSet[*combat.Enemy]
	player    *combat.Player
	playerOut bool

	factory  *combat.Factory
	registry *combat.Registry
	config   prefabs.GameConfig
	window   combat.Window
	rng      *rand.Rand

	scheduler *Scheduler
	hits      []Hit
	events    EventQueue
	fire      bool
	frame     uint64
}

// NewWorld creates a world around the factory and the projectile registry
// its ships fire into. A zero seed draws one from the clock.
func NewWorld(cfg prefabs.GameConfig, factory *combat.Factory, registry *combat.Registry) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if registry == nil {
		registry = combat.NewRegistry()
	}
	if factory == nil {
		factory = &combat.Factory{}
	}

	w := &World{
		factory:   factory,
		registry:  registry,
		config:    cfg,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		scheduler: NewScheduler(),
	}
	if factory.Rand == nil {
		factory.Rand = w.rng
	}
	w.SetWindow(cfg.Window.Width, cfg.Window.Height)
	return w
}

// AddSystem appends a system to the frame order.
func (w *World) AddSystem(s System) {
	w.scheduler.Add(s)
}

func (w *World) Systems() []System {
	return w.scheduler.Systems()
}

// Update runs one frame and returns the events it produced.
func (w *World) Update() []Event {
	if w == nil {
		return nil
	}
	w.scheduler.Update(w)
	w.frame++
	w.fire = false
	w.hits = w.hits[:0]
	return w.events.Drain()
}

func (w *World) Frame() uint64 { return w.frame }

func (w *World) Config() prefabs.GameConfig { return w.config }

func (w *World) Registry() *combat.Registry { return w.registry }

func (w *World) Factory() *combat.Factory { return w.factory }

func (w *World) Rand() *rand.Rand { return w.rng }

func (w *World) Window() combat.Window { return w.window }

// SetWindow resizes the screen for the world and every ship in it.
func (w *World) SetWindow(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = combat.DefaultWindow.Width, combat.DefaultWindow.Height
	}
	w.window = combat.Window{Width: width, Height: height}
	w.factory.Window = w.window
	if w.player != nil {
		w.player.SetWindow(width, height)
	}
	for _, e := range w.enemies.Values() {
		e.SetWindow(width, height)
	}
}

func (w *World) SetPlayer(p *combat.Player) {
	w.player = p
	w.playerOut = false
	if p != nil {
		p.SetWindow(w.window.Width, w.window.Height)
	}
}

// Player returns the player, or nil once it has been destroyed.
func (w *World) Player() *combat.Player {
	if w.playerOut {
		return nil
	}
	return w.player
}

// RequirePlayer returns the player or ErrNoPlayer.
func (w *World) RequirePlayer() (*combat.Player, error) {
	if p := w.Player(); p != nil {
		return p, nil
	}
	return nil, ErrNoPlayer
}

// MarkPlayerDestroyed takes the player out of play. It reports false if the
// player was already out.
func (w *World) MarkPlayerDestroyed() bool {
	if w.player == nil || w.playerOut {
		return false
	}
	w.playerOut = true
	return true
}

// RequestFire asks for the player to fire during the next frame.
func (w *World) RequestFire() { w.fire = true }

func (w *World) FireRequested() bool { return w.fire }

// Spawn creates an enemy of the given species at (x, y).
func (w *World) Spawn(species string, x, y float64) (Entity, error) {
	enemy, err := w.factory.CreateEnemy(species, x, y, w.registry)
	if err != nil {
		return 0, fmt.Errorf("ecs: spawn: %w", err)
	}
	e := w.entities.create()
	w.enemies.Set(e, enemy)
	return e, nil
}

// Despawn removes an enemy. Stale handles are ignored.
func (w *World) Despawn(e Entity) bool {
	if !w.enemies.Remove(e) {
		return false
	}
	return w.entities.destroy(e)
}

func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e) && w.enemies.Has(e)
}

func (w *World) Enemy(e Entity) (*combat.Enemy, bool) {
	return w.enemies.Get(e)
}

// Enemies returns a snapshot of the live enemy handles.
func (w *World) Enemies() []Entity {
	return append([]Entity(nil), w.enemies.Entities()...)
}

func (w *World) EnemyCount() int { return w.enemies.Len() }

// EachEnemy calls fn for every live enemy. fn must not spawn or despawn.
func (w *World) EachEnemy(fn func(e Entity, enemy *combat.Enemy)) {
	ents, vals := w.enemies.Entities(), w.enemies.Values()
	for i := range ents {
		fn(ents[i], vals[i])
	}
}

func (w *World) AddHit(h Hit) {
	w.hits = append(w.hits, h)
}

// Hits returns the collisions recorded so far this frame.
func (w *World) Hits() []Hit { return w.hits }

func (w *World) Emit(t EventType, data any) {
	w.events.Push(Event{Type: t, Data: data})
}

func (w *World) Events() *EventQueue { return &w.events }
