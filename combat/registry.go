package combat

// Registry is the projectile collection every ship fires into. Add is used
// while firing; Compact is used once per frame during cleanup. Nothing else
// mutates it.
type Registry struct {
	items []*Projectile
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Add(p *Projectile) {
	if r == nil || p == nil {
		return
	}
	r.items = append(r.items, p)
}

// Compact keeps the projectiles for which keep returns true, preserving
// order, and returns the ones it dropped.
func (r *Registry) Compact(keep func(p *Projectile) bool) []*Projectile {
	if r == nil {
		return nil
	}
	var dropped []*Projectile
	n := 0
	for _, p := range r.items {
		if keep(p) {
			r.items[n] = p
			n++
			continue
		}
		dropped = append(dropped, p)
	}
	clear(r.items[n:])
	r.items = r.items[:n]
	return dropped
}

// Each calls fn for every live projectile. fn must not add to the registry.
func (r *Registry) Each(fn func(p *Projectile)) {
	if r == nil {
		return
	}
	for _, p := range r.items {
		fn(p)
	}
}

// All returns a snapshot of the live projectiles.
func (r *Registry) All() []*Projectile {
	if r == nil {
		return nil
	}
	return append([]*Projectile(nil), r.items...)
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.items)
}
