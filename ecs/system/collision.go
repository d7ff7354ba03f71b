package system

import (
	"github.com/justin-david-todd/phoenix-clone/combat"
	"github.com/justin-david-todd/phoenix-clone/component"
	"github.com/justin-david-todd/phoenix-clone/ecs"
)

// CollisionSystem records hits without applying them. Player shots are tested
// against enemies, enemy shots against the player, and enemy hulls against
// the player. A shot hits at most one target.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem { return &CollisionSystem{} }

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player := w.Player()

	w.Registry().Each(func(p *combat.Projectile) {
		if !p.Damaging() {
			return
		}
		switch {
		case p.Side().Hostile(component.SideEnemy):
			if e, ok := firstEnemyHit(w, p); ok {
				w.AddHit(ecs.Hit{Enemy: e, Projectile: p})
			}
		case p.Side().Hostile(component.SidePlayer):
			if player != nil && p.IsCollidingWith(player) {
				w.AddHit(ecs.Hit{Player: true, Projectile: p})
			}
		}
	})

	if player == nil {
		return
	}
	w.EachEnemy(func(e ecs.Entity, enemy *combat.Enemy) {
		if enemy.IsCollidingWith(player) {
			w.AddHit(ecs.Hit{Enemy: e, Player: true})
		}
	})
}

func firstEnemyHit(w *ecs.World, p *combat.Projectile) (ecs.Entity, bool) {
	var (
		hit   ecs.Entity
		found bool
	)
	w.EachEnemy(func(e ecs.Entity, enemy *combat.Enemy) {
		if !found && p.IsCollidingWith(enemy) {
			hit, found = e, true
		}
	})
	return hit, found
}
