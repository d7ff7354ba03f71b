package system

import (
	"github.com/justin-david-todd/phoenix-clone/combat"
	"github.com/justin-david-todd/phoenix-clone/ecs"
)

// DamageSystem applies the frame's hits, removes dead and escaped enemies,
// and compacts the projectile registry. It is the only phase that removes
// anything.
type DamageSystem struct{}

func NewDamageSystem() *DamageSystem { return &DamageSystem{} }

func (s *DamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cfg := w.Config()
	player := w.Player()
	rammed := map[ecs.Entity]bool{}

	for _, h := range w.Hits() {
		enemy, _ := w.Enemy(h.Enemy)

		if h.Projectile != nil {
			// an earlier hit this frame may have spent it already
			amount := h.Projectile.Damage()
			if amount == 0 {
				continue
			}
			h.Projectile.Spend()
			if h.Player {
				hurtPlayer(w, player, amount)
			} else if enemy != nil {
				enemy.TakeDamage(amount)
			}
			continue
		}

		if enemy == nil || enemy.Dead() {
			continue
		}
		hurtPlayer(w, player, cfg.HitDamage)
		enemy.SetHealth(0)
		rammed[h.Enemy] = true
	}

	for _, e := range w.Enemies() {
		enemy, ok := w.Enemy(e)
		if !ok {
			continue
		}
		switch {
		case enemy.Dead():
			enemy.Explode()
			w.Despawn(e)
			w.Emit(ecs.EventEnemyDestroyed, ecs.EnemyDestroyed{
				Entity:  e,
				Species: enemy.Species(),
				Points:  enemy.PointValue(),
				X:       enemy.X(),
				Y:       enemy.Y(),
				Rammed:  rammed[e],
			})
		case enemy.Escaped():
			w.Despawn(e)
			w.Emit(ecs.EventEnemyEscaped, ecs.EnemyEscaped{Entity: e, Species: enemy.Species()})
			if cfg.EscapeDamage > 0 {
				hurtPlayer(w, player, cfg.EscapeDamage)
			}
		}
	}

	if player != nil && player.Dead() && w.MarkPlayerDestroyed() {
		player.Explode()
		w.Emit(ecs.EventPlayerDestroyed, ecs.PlayerDestroyed{X: player.X(), Y: player.Y()})
	}

	window := w.Window()
	removed := w.Registry().Compact(func(p *combat.Projectile) bool {
		return !p.Spent() && !p.Expired() && !p.OffScreen(window)
	})
	for _, p := range removed {
		w.Emit(ecs.EventProjectileExpired, ecs.ProjectileExpired{Type: p.Type(), Reason: removalReason(p)})
	}
}

func hurtPlayer(w *ecs.World, player *combat.Player, amount int) {
	if player == nil || player.Dead() || amount <= 0 {
		return
	}
	player.TakeDamage(amount)
	w.Emit(ecs.EventPlayerHit, ecs.PlayerHit{Damage: amount, Health: player.Health()})
}

func removalReason(p *combat.Projectile) ecs.RemovalReason {
	switch {
	case p.Spent():
		return ecs.RemovedSpent
	case p.Expired():
		return ecs.RemovedExpired
	default:
		return ecs.RemovedOffScreen
	}
}
