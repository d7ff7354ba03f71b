package system

import (
	"github.com/justin-david-todd/phoenix-clone/combat"
	"github.com/justin-david-todd/phoenix-clone/ecs"
)

// FireSystem fires the player's gun when the caller asked for it and gives
// each enemy a 1 in EnemyFireChance chance to fire.
type FireSystem struct{}

func NewFireSystem() *FireSystem { return &FireSystem{} }

func (s *FireSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if p := w.Player(); p != nil && w.FireRequested() {
		p.TryFire()
	}

	chance := w.Config().EnemyFireChance
	if chance <= 0 {
		return
	}
	rng := w.Rand()
	w.EachEnemy(func(_ ecs.Entity, e *combat.Enemy) {
		if rng.IntN(chance) == 0 {
			e.TryFire()
		}
	})
}
