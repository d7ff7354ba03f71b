package system

import (
	"github.com/justin-david-todd/phoenix-clone/combat"
	"github.com/justin-david-todd/phoenix-clone/ecs"
)

// CooldownSystem counts every ship's fire cooldown down by one frame.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if p := w.Player(); p != nil {
		p.TickCooldown()
	}
	w.EachEnemy(func(_ ecs.Entity, e *combat.Enemy) {
		e.TickCooldown()
	})
}
