package system

import (
	"testing"

	"github.com/justin-david-todd/phoenix-clone/assets"
	"github.com/justin-david-todd/phoenix-clone/combat"
	"github.com/justin-david-todd/phoenix-clone/ecs"
	"github.com/justin-david-todd/phoenix-clone/movement"
	"github.com/justin-david-todd/phoenix-clone/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	world    *ecs.World
	armory   *combat.Armory
	registry *combat.Registry
}

func newFixture(t *testing.T, cfg prefabs.GameConfig) *fixture {
	t.Helper()
	catalog := assets.NewCatalog(map[string]prefabs.SpriteSpec{
		"main_ship": {Width: 64, Height: 64, Shape: assets.ShapeRect},
		"squid":     {Width: 32, Height: 32, Shape: assets.ShapeRect},
		"laser":     {Width: 16, Height: 32, Shape: assets.ShapeRect},
		"boom":      {Width: 128, Height: 128, Shape: assets.ShapeRing},
		"blank":     {Width: 16, Height: 16, Shape: assets.ShapeBlank},
	})
	armory := combat.NewArmory(map[string]combat.ProjectileProfile{
		"player_green":   {Type: "player_green", Sprite: "laser", Speed: 8, Cooldown: 15, Damaging: true},
		"blueShot":       {Type: "blueShot", Sprite: "laser", Speed: 4, Cooldown: 40, Damaging: true},
		"blank":          {Type: "blank", Sprite: "blank", Speed: 4, Cooldown: 60},
		"explosion":      {Type: "explosion", Sprite: "boom", TTL: 20},
		"explosion_zero": {Type: "explosion_zero", Sprite: "boom", TTL: 30},
	}, catalog, cfg.HitDamage)
	registry := combat.NewRegistry()
	factory := &combat.Factory{
		Species: combat.SpeciesTable{
			"Squid": {Speed: 1, Pattern: movement.MoveDown, Sprite: "squid", Projectile: "blueShot", Health: 10, Points: 10},
			"Block": {Speed: 1, Pattern: movement.MoveDown, Sprite: "squid", Projectile: "blank", Health: 20, Points: 10},
			"Tank":  {Speed: 0, Pattern: movement.MoveDown, Sprite: "squid", Projectile: "blueShot", Health: 30, Points: 50},
		},
		Armory: armory,
	}

	w := ecs.NewWorld(cfg, factory, registry)
	Install(w)
	return &fixture{world: w, armory: armory, registry: registry}
}

func (f *fixture) player(t *testing.T, x, y float64, health int) *combat.Player {
	t.Helper()
	p, err := combat.NewPlayer(x, y, health, f.armory, f.registry)
	require.NoError(t, err)
	f.world.SetPlayer(p)
	return p
}

func (f *fixture) spawn(t *testing.T, species string, x, y float64) ecs.Entity {
	t.Helper()
	e, err := f.world.Spawn(species, x, y)
	require.NoError(t, err)
	return e
}

func (f *fixture) run(frames int) []ecs.Event {
	var all []ecs.Event
	for i := 0; i < frames; i++ {
		all = append(all, f.world.Update()...)
	}
	return all
}

func testConfig() prefabs.GameConfig {
	cfg := prefabs.DefaultGameConfig()
	cfg.EnemyFireChance = 0
	cfg.Seed = 7
	return cfg
}

func ofType(events []ecs.Event, t ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, e := range events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func TestFrameOrder(t *testing.T) {
	systems := Frame()
	require.Len(t, systems, 6)
	assert.IsType(t, &CooldownSystem{}, systems[0])
	assert.IsType(t, &FireSystem{}, systems[1])
	assert.IsType(t, &MovementSystem{}, systems[2])
	assert.IsType(t, &ProjectileSystem{}, systems[3])
	assert.IsType(t, &CollisionSystem{}, systems[4])
	assert.IsType(t, &DamageSystem{}, systems[5])
}

func TestPlayerShotDestroysEnemy(t *testing.T) {
	f := newFixture(t, testConfig())
	p := f.player(t, 100, 300, 100)
	e := f.spawn(t, "Squid", 116, 200)

	f.world.RequestFire()
	events := f.run(6)
	assert.Empty(t, ofType(events, ecs.EventEnemyDestroyed))
	assert.True(t, f.world.IsAlive(e))

	events = f.world.Update()
	destroyed := ofType(events, ecs.EventEnemyDestroyed)
	require.Len(t, destroyed, 1)
	got := destroyed[0].Data.(ecs.EnemyDestroyed)
	assert.Equal(t, e, got.Entity)
	assert.Equal(t, "Squid", got.Species)
	assert.Equal(t, 10, got.Points)
	assert.False(t, got.Rammed)

	removed := ofType(events, ecs.EventProjectileExpired)
	require.Len(t, removed, 1)
	assert.Equal(t, ecs.ProjectileExpired{Type: "player_green", Reason: ecs.RemovedSpent}, removed[0].Data)

	assert.False(t, f.world.IsAlive(e))
	assert.Zero(t, f.world.EnemyCount())
	assert.Equal(t, 100, p.Health())

	require.Equal(t, 1, f.registry.Len(), "only the explosion remains")
	assert.Equal(t, combat.ProjectileExplosion, f.registry.All()[0].Type())
}

func TestOneShotOneTarget(t *testing.T) {
	f := newFixture(t, testConfig())
	f.player(t, 100, 300, 100)
	// two stacked tanks in the shot's path; only the first found is hit
	f.spawn(t, "Tank", 116, 200)
	f.spawn(t, "Tank", 116, 200)

	f.world.RequestFire()
	f.run(20)

	total := 0
	f.world.EachEnemy(func(_ ecs.Entity, e *combat.Enemy) {
		total += e.Health()
	})
	assert.Equal(t, 50, total)
}

func TestEnemyShotHitsPlayer(t *testing.T) {
	cfg := testConfig()
	cfg.EnemyFireChance = 1
	f := newFixture(t, cfg)
	p := f.player(t, 84, 300, 100)
	f.spawn(t, "Squid", 100, 100)

	events := f.run(60)
	hits := ofType(events, ecs.EventPlayerHit)
	require.NotEmpty(t, hits)
	assert.Equal(t, ecs.PlayerHit{Damage: 10, Health: 90}, hits[0].Data)
	assert.Empty(t, ofType(events, ecs.EventEnemyDestroyed))
	assert.Equal(t, 100-10*len(hits), p.Health())
}

func TestBlankShotsNeverDamage(t *testing.T) {
	cfg := testConfig()
	cfg.EnemyFireChance = 1
	f := newFixture(t, cfg)
	p := f.player(t, 84, 300, 100)
	f.spawn(t, "Block", 100, 100)

	events := f.run(100)
	assert.Empty(t, ofType(events, ecs.EventPlayerHit))
	assert.Equal(t, 100, p.Health())
}

func TestHullCollisionRamsEnemy(t *testing.T) {
	f := newFixture(t, testConfig())
	p := f.player(t, 100, 100, 100)
	e := f.spawn(t, "Tank", 110, 110)

	events := f.world.Update()
	destroyed := ofType(events, ecs.EventEnemyDestroyed)
	require.Len(t, destroyed, 1)
	got := destroyed[0].Data.(ecs.EnemyDestroyed)
	assert.Equal(t, e, got.Entity)
	assert.True(t, got.Rammed)
	assert.Equal(t, 90, p.Health())
	assert.Equal(t, []ecs.Event{{Type: ecs.EventPlayerHit, Data: ecs.PlayerHit{Damage: 10, Health: 90}}}, ofType(events, ecs.EventPlayerHit))
}

func TestEnemyEscapes(t *testing.T) {
	cfg := testConfig()
	cfg.Window = prefabs.WindowSpec{Width: 400, Height: 100}
	f := newFixture(t, cfg)
	p := f.player(t, 300, 0, 100)
	e := f.spawn(t, "Squid", 0, 99)

	assert.Empty(t, ofType(f.world.Update(), ecs.EventEnemyEscaped))
	events := f.world.Update()
	escaped := ofType(events, ecs.EventEnemyEscaped)
	require.Len(t, escaped, 1)
	assert.Equal(t, ecs.EnemyEscaped{Entity: e, Species: "Squid"}, escaped[0].Data)
	assert.Equal(t, 90, p.Health())
	assert.False(t, f.world.IsAlive(e))
}

func TestPlayerDestroyedOnce(t *testing.T) {
	f := newFixture(t, testConfig())
	p := f.player(t, 100, 100, 10)
	f.spawn(t, "Tank", 110, 110)
	f.spawn(t, "Tank", 400, 400)

	events := f.world.Update()
	require.Len(t, ofType(events, ecs.EventPlayerDestroyed), 1)
	assert.True(t, p.Dead())
	assert.Nil(t, f.world.Player())
	_, err := f.world.RequirePlayer()
	assert.ErrorIs(t, err, ecs.ErrNoPlayer)

	f.world.RequestFire()
	events = f.run(30)
	assert.Empty(t, ofType(events, ecs.EventPlayerDestroyed))
	assert.Empty(t, ofType(events, ecs.EventPlayerHit))
}

func TestProjectileCleanup(t *testing.T) {
	f := newFixture(t, testConfig())
	p := f.player(t, 100, 20, 100)

	f.world.RequestFire()
	events := f.run(5)
	assert.Empty(t, ofType(events, ecs.EventProjectileExpired))
	assert.Equal(t, 1, f.registry.Len())

	events = f.world.Update()
	removed := ofType(events, ecs.EventProjectileExpired)
	require.Len(t, removed, 1)
	assert.Equal(t, ecs.RemovedOffScreen, removed[0].Data.(ecs.ProjectileExpired).Reason)
	assert.Zero(t, f.registry.Len())

	boom := p.Explode()
	require.NotNil(t, boom)
	events = f.run(29)
	assert.Empty(t, ofType(events, ecs.EventProjectileExpired))
	events = f.world.Update()
	assert.Equal(t, []ecs.Event{{
		Type: ecs.EventProjectileExpired,
		Data: ecs.ProjectileExpired{Type: combat.ProjectileExplosionZero, Reason: ecs.RemovedExpired},
	}}, events)
}

func TestFireOnlyWhenRequested(t *testing.T) {
	f := newFixture(t, testConfig())
	f.player(t, 400, 700, 100)

	f.run(3)
	assert.Zero(t, f.registry.Len())

	f.world.RequestFire()
	f.world.Update()
	assert.Equal(t, 1, f.registry.Len())
	assert.False(t, f.world.FireRequested(), "requests last one frame")

	f.world.RequestFire()
	f.world.Update()
	assert.Equal(t, 1, f.registry.Len(), "cooldown still running")
}
