package combat

import (
	"github.com/justin-david-todd/phoenix-clone/assets"
	"github.com/justin-david-todd/phoenix-clone/component"
	"github.com/justin-david-todd/phoenix-clone/movement"
)

// explosionOffset places an explosion sprite over the ship that spawned it.
const explosionOffset = 64

// Combatant is the behavior Player and Enemy specialize.
type Combatant interface {
	Masked
	Core() *Ship
	// TryFire fires into the shared registry and returns the projectile, or
	// nil while the cooldown runs.
	TryFire() *Projectile
	// Explode adds a visual explosion to the registry and returns it.
	Explode() *Projectile
}

// Ship is the state shared by the player and every enemy.
type Ship struct {
	motion     movement.State
	health     component.Health
	cooldown   component.Cooldown
	projectile string
	side       component.Side
	sprite     *assets.Sprite
	window     Window
	armory     *Armory
	registry   *Registry
}

func newShip(x, y, speed float64, health int, side component.Side, sprite *assets.Sprite, armory *Armory, registry *Registry) Ship {
	return Ship{
		motion:   movement.State{X: x, Y: y, Speed: speed},
		health:   component.NewHealth(health),
		side:     side,
		sprite:   sprite,
		window:   DefaultWindow,
		armory:   armory,
		registry: registry,
	}
}

func (s *Ship) Core() *Ship { return s }

func (s *Ship) Position() (float64, float64) { return s.motion.X, s.motion.Y }
func (s *Ship) X() float64 { return s.motion.X }
func (s *Ship) Y() float64 { return s.motion.Y }
func (s *Ship) Speed() float64 { return s.motion.Speed }
func (s *Ship) Health() int { return s.health.Current }
func (s *Ship) MaxHealth() int { return s.health.Max }
func (s *Ship) Dead() bool { return s.health.Dead() }
func (s *Ship) CooldownFrames() int { return s.cooldown.Frames }
func (s *Ship) ProjectileType() string { return s.projectile }
func (s *Ship) Side() component.Side { return s.side }
func (s *Ship) Window() Window { return s.window }
func (s *Ship) Registry() *Registry { return s.registry }
func (s *Ship) Motion() movement.State { return s.motion }
func (s *Ship) Sprite() *assets.Sprite { return s.sprite }
func (s *Ship) Width() int { return s.sprite.Width() }
func (s *Ship) Height() int { return s.sprite.Height() }

func (s *Ship) Mask() *component.Mask {
	if s.sprite == nil {
		return nil
	}
	return s.sprite.Mask
}

func (s *Ship) SpriteID() string {
	if s.sprite == nil {
		return ""
	}
	return s.sprite.ID
}

func (s *Ship) SetPosition(x, y float64) {
	s.motion.X, s.motion.Y = x, y
}

// MoveBy shifts the ship without any bounds checks.
func (s *Ship) MoveBy(dx, dy float64) {
	s.motion.X += dx
	s.motion.Y += dy
}

func (s *Ship) TakeDamage(amount int) { s.health.TakeDamage(amount) }
func (s *Ship) Heal(amount int) { s.health.Heal(amount) }

// SetHealth ignores values above the maximum.
func (s *Ship) SetHealth(amount int) { s.health.Set(amount) }

func (s *Ship) SetProjectileType(kind string) { s.projectile = kind }

func (s *Ship) TickCooldown() { s.cooldown.Tick() }

func (s *Ship) SetWindow(width, height int) {
	s.window = Window{Width: width, Height: height}
}

// SetSprite swaps the ship's sprite; the collision mask comes with it.
func (s *Ship) SetSprite(sprite *assets.Sprite) {
	if sprite == nil {
		return
	}
	s.sprite = sprite
}

func (s *Ship) IsCollidingWith(other Masked) bool {
	return Collide(s, other)
}

// launch builds a shot of the ship's projectile type, lets place position
// it, registers it and starts the cooldown.
func (s *Ship) launch(place func(p *Projectile)) *Projectile {
	if s.armory == nil {
		return nil
	}
	p := s.armory.Build(s.projectile, s.side)
	place(p)
	s.registry.Add(p)
	s.cooldown.Start(p.Cooldown())
	return p
}

func (s *Ship) explode(kind string) *Projectile {
	if s.armory == nil {
		return nil
	}
	p := s.armory.Build(kind, component.SideNeutral)
	p.SetPosition(s.motion.X-explosionOffset+float64(s.Width())/2, s.motion.Y-explosionOffset)
	s.registry.Add(p)
	return p
}
