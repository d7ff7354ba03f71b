package combat

import (
	"log"

	"github.com/justin-david-todd/phoenix-clone/assets"
	"github.com/justin-david-todd/phoenix-clone/component"
	"github.com/justin-david-todd/phoenix-clone/prefabs"
)

// Projectile types the core refers to by name.
const (
	ProjectileBlank         = "blank"
	ProjectileExplosion     = "explosion"
	ProjectileExplosionZero = "explosion_zero"
)

// DefaultHitDamage is the health removed by one hit of a damaging projectile.
const DefaultHitDamage = 10

// ProjectileProfile is the per-type behavior of a projectile.
type ProjectileProfile struct {
	Type     string
	Sprite   string
	Speed    float64
	Cooldown int
	Damaging bool
	// TTL is the lifetime in frames; 0 lives until it leaves the screen.
	TTL int
}

// inertProfile stands in for projectile types missing from the table. It
// deals no damage and disappears on the next cleanup.
func inertProfile(kind string) ProjectileProfile {
	return ProjectileProfile{Type: kind, Sprite: ProjectileBlank, TTL: 1}
}

// Projectile is a moving shot or a purely visual effect.
type Projectile struct {
	x, y    float64
	profile ProjectileProfile
	sprite  *assets.Sprite
	side    component.Side
	heading float64
	ttl     int
	damage  int
	spent   bool
}

func (p *Projectile) Position() (float64, float64) { return p.x, p.y }
func (p *Projectile) X() float64 { return p.x }
func (p *Projectile) Y() float64 { return p.y }
func (p *Projectile) Type() string { return p.profile.Type }
func (p *Projectile) Profile() ProjectileProfile { return p.profile }
func (p *Projectile) Side() component.Side { return p.side }
func (p *Projectile) Heading() float64 { return p.heading }
func (p *Projectile) TTL() int { return p.ttl }
func (p *Projectile) Cooldown() int { return p.profile.Cooldown }
func (p *Projectile) Sprite() *assets.Sprite { return p.sprite }
func (p *Projectile) Width() int { return p.sprite.Width() }
func (p *Projectile) Height() int { return p.sprite.Height() }

func (p *Projectile) Mask() *component.Mask {
	if p.sprite == nil {
		return nil
	}
	return p.sprite.Mask
}

func (p *Projectile) SetPosition(x, y float64) {
	p.x, p.y = x, y
}

// Advance moves the projectile one frame along its heading and counts down
// its lifetime.
func (p *Projectile) Advance() {
	p.y += p.heading * p.profile.Speed
	if p.profile.TTL > 0 && p.ttl > 0 {
		p.ttl--
	}
}

// Damaging reports whether a hit by p should cost health.
func (p *Projectile) Damaging() bool {
	return p.profile.Damaging && !p.spent
}

// Damage is the health a hit removes, 0 for visual effects.
func (p *Projectile) Damage() int {
	if !p.Damaging() {
		return 0
	}
	return p.damage
}

// Spend marks the projectile as having hit something.
func (p *Projectile) Spend() { p.spent = true }

func (p *Projectile) Spent() bool { return p.spent }

func (p *Projectile) Expired() bool {
	return p.profile.TTL > 0 && p.ttl <= 0
}

// OffScreen reports whether p lies entirely outside w.
func (p *Projectile) OffScreen(w Window) bool {
	return p.y+float64(p.Height()) < 0 ||
		p.y > float64(w.Height) ||
		p.x+float64(p.Width()) < 0 ||
		p.x > float64(w.Width)
}

func (p *Projectile) IsCollidingWith(other Masked) bool {
	return Collide(p, other)
}

// Armory builds projectiles from the profile table.
type Armory struct {
	profiles  map[string]ProjectileProfile
	sprites   assets.Provider
	hitDamage int
	warned    map[string]bool
}

func NewArmory(profiles map[string]ProjectileProfile, sprites assets.Provider, hitDamage int) *Armory {
	if profiles == nil {
		profiles = map[string]ProjectileProfile{}
	}
	return &Armory{
		profiles:  profiles,
		sprites:   sprites,
		hitDamage: hitDamage,
		warned:    map[string]bool{},
	}
}

// ProfilesFromSpecs converts the projectile table rows.
func ProfilesFromSpecs(specs map[string]prefabs.ProjectileSpec) map[string]ProjectileProfile {
	out := make(map[string]ProjectileProfile, len(specs))
	for id, s := range specs {
		out[id] = ProjectileProfile{
			Type:     id,
			Sprite:   s.Sprite,
			Speed:    s.Speed,
			Cooldown: s.Cooldown,
			Damaging: s.Damaging,
			TTL:      s.TTL,
		}
	}
	return out
}

// LoadArmory reads projectiles.yaml.
func LoadArmory(sprites assets.Provider, hitDamage int) (*Armory, error) {
	specs, err := prefabs.LoadProjectiles()
	if err != nil {
		return nil, err
	}
	return NewArmory(ProfilesFromSpecs(specs), sprites, hitDamage), nil
}

func (a *Armory) Sprites() assets.Provider { return a.sprites }

func (a *Armory) HitDamage() int { return a.hitDamage }

// Profile returns the profile for kind, or an inert one for unknown kinds.
// Unknown kinds are logged the first time they are seen.
func (a *Armory) Profile(kind string) ProjectileProfile {
	if p, ok := a.profiles[kind]; ok {
		return p
	}
	if !a.warned[kind] {
		a.warned[kind] = true
		log.Printf("combat: unknown projectile type %q, firing blanks", kind)
	}
	return inertProfile(kind)
}

// Build creates an unplaced projectile of the given kind. Player shots travel
// up, enemy shots down, and neutral effects stay where they are put.
func (a *Armory) Build(kind string, side component.Side) *Projectile {
	profile := a.Profile(kind)
	p := &Projectile{
		profile: profile,
		side:    side,
		heading: headingFor(side),
		ttl:     profile.TTL,
		damage:  a.hitDamage,
		sprite:  a.sprite(profile.Sprite),
	}
	return p
}

func (a *Armory) sprite(id string) *assets.Sprite {
	if a.sprites != nil {
		s, err := a.sprites.Sprite(id)
		if err == nil {
			return s
		}
		if !a.warned["sprite:"+id] {
			a.warned["sprite:"+id] = true
			log.Printf("combat: projectile sprite: %v", err)
		}
	}
	return &assets.Sprite{ID: id, Mask: component.NewMask(0, 0)}
}

func headingFor(side component.Side) float64 {
	switch side {
	case component.SidePlayer:
		return -1
	case component.SideEnemy:
		return 1
	default:
		return 0
	}
}
