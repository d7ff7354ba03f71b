package combat

import (
	"fmt"

	"github.com/justin-david-todd/phoenix-clone/common"
	"github.com/justin-david-todd/phoenix-clone/component"
)

// Player defaults.
const (
	PlayerSpeed      = 5
	PlayerProjectile = "player_green"
	PlayerSprite     = "main_ship"
	// playerMuzzle is how far left of center the player's shot spawns.
	playerMuzzle = 8
	// muzzleLift is how far above the ship's top edge shots spawn.
	muzzleLift = 10
	// healthBarGap and healthBarHeight place the bar under the ship.
	healthBarGap    = 10
	healthBarHeight = 10
)

// Player is the ship the user flies.
type Player struct {
	Ship
}

// NewPlayer builds the player ship at (x, y) with the given starting and
// maximum health.
func NewPlayer(x, y float64, health int, armory *Armory, registry *Registry) (*Player, error) {
	if armory == nil || armory.Sprites() == nil {
		return nil, fmt.Errorf("combat: player: %w", ErrNoSprites)
	}
	sprite, err := armory.Sprites().Sprite(PlayerSprite)
	if err != nil {
		return nil, err
	}
	p := &Player{Ship: newShip(x, y, PlayerSpeed, health, component.SidePlayer, sprite, armory, registry)}
	p.projectile = PlayerProjectile
	return p, nil
}

// SetImage swaps the player's sprite by identifier.
func (p *Player) SetImage(id string) error {
	sprite, err := p.armory.Sprites().Sprite(id)
	if err != nil {
		return err
	}
	p.SetSprite(sprite)
	return nil
}

// TryFire shoots from just left of the nose. Only the cooldown gates it.
func (p *Player) TryFire() *Projectile {
	if !p.cooldown.Ready() {
		return nil
	}
	return p.launch(func(shot *Projectile) {
		shot.SetPosition(p.motion.X+float64(p.Width())/2-playerMuzzle, p.motion.Y-muzzleLift)
	})
}

func (p *Player) Explode() *Projectile {
	return p.explode(ProjectileExplosionZero)
}

// HealthRatio is current over maximum health, in [0, 1].
func (p *Player) HealthRatio() float64 {
	return p.health.Ratio()
}

// HealthBar is the render hint for the player's health: the full-width
// background and the fill proportional to the remaining health.
type HealthBar struct {
	Background common.Rect
	Fill       common.Rect
}

func (p *Player) HealthBar() HealthBar {
	bg := common.Rect{
		X:      p.motion.X,
		Y:      p.motion.Y + float64(p.Height()) + healthBarGap,
		Width:  float64(p.Width()),
		Height: healthBarHeight,
	}
	fill := bg
	fill.Width = bg.Width * p.HealthRatio()
	return HealthBar{Background: bg, Fill: fill}
}
