package system

import "github.com/justin-david-todd/phoenix-clone/ecs"

// Frame returns the systems of one frame in the order they must run.
func Frame() []ecs.System {
	return []ecs.System{
		NewCooldownSystem(),
		NewFireSystem(),
		NewMovementSystem(),
		NewProjectileSystem(),
		NewCollisionSystem(),
		NewDamageSystem(),
	}
}

// Install appends the frame systems to w.
func Install(w *ecs.World) {
	for _, s := range Frame() {
		w.AddSystem(s)
	}
}
