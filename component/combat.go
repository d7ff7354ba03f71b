package component

// Side identifies who fired a projectile for friendly-fire checks.
type Side int

const (
	SideNeutral Side = iota
	SidePlayer
	SideEnemy
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "neutral"
	}
}

// Hostile reports whether a projectile fired by s can damage a ship on target.
func (s Side) Hostile(target Side) bool {
	return s != SideNeutral && target != SideNeutral && s != target
}
