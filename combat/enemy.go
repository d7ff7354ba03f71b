package combat

import (
	"github.com/justin-david-todd/phoenix-clone/movement"
)

// Enemy is a ship built from a species row and driven by a movement pattern.
type Enemy struct {
	Ship
	species string
	points  int
	kind    movement.Kind
	pattern movement.Pattern
	rand    movement.Rand
}

func (e *Enemy) Species() string { return e.species }

// PointValue is the score awarded for destroying the enemy.
func (e *Enemy) PointValue() int { return e.points }

func (e *Enemy) PatternKind() movement.Kind { return e.kind }

// Move runs one frame of the enemy's movement pattern.
func (e *Enemy) Move() {
	if e.pattern == nil {
		return
	}
	e.motion = e.pattern.Step(e.motion, movement.Env{
		ScreenWidth:  e.window.Width,
		ScreenHeight: e.window.Height,
		ShipWidth:    float64(e.Width()),
		Rand:         e.rand,
	})
}

// TryFire shoots from the front center, centering the shot on the nose.
func (e *Enemy) TryFire() *Projectile {
	if e.cooldown.Frames > 0 {
		return nil
	}
	return e.launch(func(shot *Projectile) {
		x := e.motion.X + float64(e.Width())/2 - float64(shot.Width()/2)
		shot.SetPosition(x, e.motion.Y-muzzleLift)
	})
}

func (e *Enemy) Explode() *Projectile {
	return e.explode(ProjectileExplosion)
}

// Escaped reports whether the enemy has passed the bottom of the screen.
func (e *Enemy) Escaped() bool {
	return e.motion.Y > float64(e.window.Height)
}
