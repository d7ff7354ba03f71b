package system

import (
	"github.com/justin-david-todd/phoenix-clone/combat"
	"github.com/justin-david-todd/phoenix-clone/ecs"
)

// ProjectileSystem advances every projectile and counts down lifetimes.
// Expired projectiles stay in the registry until the damage phase compacts it.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem { return &ProjectileSystem{} }

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Registry().Each(func(p *combat.Projectile) {
		p.Advance()
	})
}
