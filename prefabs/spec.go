package prefabs

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	GameFile        = "game.yaml"
	SpeciesFile     = "species.yaml"
	ProjectilesFile = "projectiles.yaml"
	SpritesFile     = "sprites.yaml"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type WindowSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameConfig holds the tunables the frame systems read.
type GameConfig struct {
	Window          WindowSpec `yaml:"window"`
	HitDamage       int        `yaml:"hit_damage"`
	EnemyFireChance int        `yaml:"enemy_fire_chance"`
	PlayerHealth    int        `yaml:"player_health"`
	EscapeDamage    int        `yaml:"escape_damage"`
	Seed            uint64     `yaml:"seed"`
}

// DefaultGameConfig mirrors the embedded game.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Window:          WindowSpec{Width: 800, Height: 800},
		HitDamage:       10,
		EnemyFireChance: 120,
		PlayerHealth:    100,
		EscapeDamage:    10,
	}
}

// LoadGameConfig reads game.yaml over the defaults. Missing keys keep their
// default values.
func LoadGameConfig() (GameConfig, error) {
	cfg := DefaultGameConfig()
	data, err := Load(GameFile)
	if err != nil {
		return cfg, fmt.Errorf("prefabs: load %s: %w", GameFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultGameConfig(), fmt.Errorf("prefabs: unmarshal %s: %w", GameFile, err)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return DefaultGameConfig(), fmt.Errorf("%w: %s: window %dx%d", ErrInvalidSpec, GameFile, cfg.Window.Width, cfg.Window.Height)
	}
	return cfg, nil
}

// SpeciesSpec is one row of the enemy species table.
type SpeciesSpec struct {
	Speed      float64 `yaml:"speed"`
	Pattern    string  `yaml:"pattern"`
	Sprite     string  `yaml:"sprite"`
	Projectile string  `yaml:"projectile"`
	Health     int     `yaml:"health"`
	Points     int     `yaml:"points"`
}

type speciesDoc struct {
	Species map[string]SpeciesSpec `yaml:"species"`
}

func LoadSpecies() (map[string]SpeciesSpec, error) {
	doc, err := LoadSpec[speciesDoc](SpeciesFile)
	if err != nil {
		return nil, err
	}
	for _, id := range sortedKeys(doc.Species) {
		s := doc.Species[id]
		switch {
		case s.Pattern == "":
			return nil, fmt.Errorf("%w: species %s: missing pattern", ErrInvalidSpec, id)
		case s.Sprite == "":
			return nil, fmt.Errorf("%w: species %s: missing sprite", ErrInvalidSpec, id)
		case s.Health <= 0:
			return nil, fmt.Errorf("%w: species %s: health %d", ErrInvalidSpec, id, s.Health)
		case s.Speed < 0:
			return nil, fmt.Errorf("%w: species %s: speed %v", ErrInvalidSpec, id, s.Speed)
		}
	}
	return doc.Species, nil
}

// ProjectileSpec is one row of the projectile profile table.
type ProjectileSpec struct {
	Sprite   string  `yaml:"sprite"`
	Speed    float64 `yaml:"speed"`
	Cooldown int     `yaml:"cooldown"`
	Damaging bool    `yaml:"damaging"`
	TTL      int     `yaml:"ttl"`
}

type projectilesDoc struct {
	Projectiles map[string]ProjectileSpec `yaml:"projectiles"`
}

func LoadProjectiles() (map[string]ProjectileSpec, error) {
	doc, err := LoadSpec[projectilesDoc](ProjectilesFile)
	if err != nil {
		return nil, err
	}
	for _, id := range sortedKeys(doc.Projectiles) {
		p := doc.Projectiles[id]
		if p.Sprite == "" || p.Cooldown < 0 || p.TTL < 0 {
			return nil, fmt.Errorf("%w: projectile %s", ErrInvalidSpec, id)
		}
	}
	return doc.Projectiles, nil
}

// SpriteSpec describes a placeholder sprite. When File is set and the file
// exists under the assets directory it replaces the generated shape.
type SpriteSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Shape  string `yaml:"shape"`
	Color  string `yaml:"color"`
	File   string `yaml:"file"`
}

type spritesDoc struct {
	Sprites map[string]SpriteSpec `yaml:"sprites"`
}

func LoadSprites() (map[string]SpriteSpec, error) {
	doc, err := LoadSpec[spritesDoc](SpritesFile)
	if err != nil {
		return nil, err
	}
	for _, id := range sortedKeys(doc.Sprites) {
		s := doc.Sprites[id]
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("%w: sprite %s: size %dx%d", ErrInvalidSpec, id, s.Width, s.Height)
		}
	}
	return doc.Sprites, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
