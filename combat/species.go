package combat

import (
	"errors"
	"fmt"
	"sort"

	"github.com/justin-david-todd/phoenix-clone/component"
	"github.com/justin-david-todd/phoenix-clone/movement"
	"github.com/justin-david-todd/phoenix-clone/prefabs"
)

var (
	ErrUnknownSpecies = errors.New("combat: unknown species")
	ErrNoSprites      = errors.New("combat: no sprite provider")
)

// Species is one row of the enemy archetype table.
type Species struct {
	Speed      float64
	Pattern    movement.Kind
	Sprite     string
	Projectile string
	Health     int
	Points     int
}

// SpeciesTable maps species identifiers to their rows. It is read-only once
// loaded.
type SpeciesTable map[string]Species

func SpeciesFromSpecs(specs map[string]prefabs.SpeciesSpec) SpeciesTable {
	t := make(SpeciesTable, len(specs))
	for id, s := range specs {
		t[id] = Species{
			Speed:      s.Speed,
			Pattern:    movement.Kind(s.Pattern),
			Sprite:     s.Sprite,
			Projectile: s.Projectile,
			Health:     s.Health,
			Points:     s.Points,
		}
	}
	return t
}

// LoadSpeciesTable reads species.yaml.
func LoadSpeciesTable() (SpeciesTable, error) {
	specs, err := prefabs.LoadSpecies()
	if err != nil {
		return nil, err
	}
	return SpeciesFromSpecs(specs), nil
}

func (t SpeciesTable) Lookup(id string) (Species, error) {
	s, ok := t[id]
	if !ok {
		return Species{}, fmt.Errorf("%w: %q", ErrUnknownSpecies, id)
	}
	return s, nil
}

// IDs lists the species identifiers in sorted order.
func (t SpeciesTable) IDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Kinds lists the distinct movement kinds the table uses.
func (t SpeciesTable) Kinds() []movement.Kind {
	seen := map[movement.Kind]bool{}
	var kinds []movement.Kind
	for _, id := range t.IDs() {
		k := t[id].Pattern
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// PatternResolver turns a movement kind into a Pattern. *movement.Scripts
// satisfies it.
type PatternResolver interface {
	Resolve(k movement.Kind) (movement.Pattern, error)
}

type builtinResolver struct{}

func (builtinResolver) Resolve(k movement.Kind) (movement.Pattern, error) {
	return movement.Resolve(k)
}

// Factory builds enemies from the species table.
type Factory struct {
	Species  SpeciesTable
	Armory   *Armory
	Patterns PatternResolver
	Rand     movement.Rand
	Window   Window
}

// CreateEnemy builds the species id at (x, y), firing into registry.
func (f *Factory) CreateEnemy(id string, x, y float64, registry *Registry) (*Enemy, error) {
	s, err := f.Species.Lookup(id)
	if err != nil {
		return nil, err
	}

	resolver := f.Patterns
	if resolver == nil {
		resolver = builtinResolver{}
	}
	pattern, err := resolver.Resolve(s.Pattern)
	if err != nil {
		return nil, fmt.Errorf("combat: species %s: %w", id, err)
	}

	if f.Armory == nil || f.Armory.Sprites() == nil {
		return nil, fmt.Errorf("combat: species %s: %w", id, ErrNoSprites)
	}
	sprite, err := f.Armory.Sprites().Sprite(s.Sprite)
	if err != nil {
		return nil, fmt.Errorf("combat: species %s: %w", id, err)
	}

	window := f.Window
	if window.Width <= 0 || window.Height <= 0 {
		window = DefaultWindow
	}

	e := &Enemy{
		Ship:    newShip(x, y, s.Speed, s.Health, component.SideEnemy, sprite, f.Armory, registry),
		species: id,
		points:  s.Points,
		kind:    s.Pattern,
		pattern: pattern,
		rand:    f.Rand,
	}
	e.projectile = s.Projectile
	e.window = window
	return e, nil
}
