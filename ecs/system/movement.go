package system

import (
	"github.com/justin-david-todd/phoenix-clone/combat"
	"github.com/justin-david-todd/phoenix-clone/ecs"
)

// MovementSystem steps every enemy's movement pattern.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem { return &MovementSystem{} }

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.EachEnemy(func(_ ecs.Entity, e *combat.Enemy) {
		e.Move()
	})
}
