package movement

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script globals. A script reads and reassigns these each frame.
var scriptGlobals = []string{
	"x", "y", "speed", "move_counter", "direction",
	"screen_width", "screen_height", "ship_width",
}

// Scripts compiles tengo movement scripts on demand and resolves any Kind,
// built-in or scripted, to a Pattern.
type Scripts struct {
	load     func(name string) ([]byte, error)
	compiled map[string]*tengo.Compiled
}

// NewScripts creates a library that reads script sources through load.
func NewScripts(load func(name string) ([]byte, error)) *Scripts {
	return &Scripts{
		load:     load,
		compiled: map[string]*tengo.Compiled{},
	}
}

// Resolve returns the Pattern for k. Each call for a script kind returns a
// fresh instance so ships never share script state.
func (l *Scripts) Resolve(k Kind) (Pattern, error) {
	name, ok := k.IsScript()
	if !ok {
		return Resolve(k)
	}
	if l == nil || l.load == nil {
		return nil, fmt.Errorf("%w: %q (no script loader)", ErrUnknownPattern, k)
	}

	c, err := l.compile(name)
	if err != nil {
		return nil, err
	}
	return &ScriptPattern{name: name, compiled: c.Clone()}, nil
}

// Invalidate drops cached compilations so edited scripts are picked up.
func (l *Scripts) Invalidate() {
	if l == nil {
		return
	}
	l.compiled = map[string]*tengo.Compiled{}
}

func (l *Scripts) compile(name string) (*tengo.Compiled, error) {
	if c, ok := l.compiled[name]; ok {
		return c, nil
	}

	src, err := l.load(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownPattern, ScriptKind(name), err)
	}

	script := tengo.NewScript(src)
	for _, g := range scriptGlobals {
		if err := script.Add(g, 0); err != nil {
			return nil, fmt.Errorf("movement: script %s: add %s: %w", name, g, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("movement: compile script %s: %w", name, err)
	}
	l.compiled[name] = compiled
	return compiled, nil
}

// ScriptPattern runs a compiled tengo script once per frame. A script that
// fails at runtime is disabled and leaves the ship where it is.
type ScriptPattern struct {
	name     string
	compiled *tengo.Compiled
	failed   bool
}

func (p *ScriptPattern) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

func (p *ScriptPattern) Step(s State, env Env) State {
	if p == nil || p.compiled == nil || p.failed {
		return s
	}

	next, err := p.run(s, env)
	if err != nil {
		p.failed = true
		log.Printf("movement: script %s disabled: %v", p.name, err)
		return s
	}
	return next
}

func (p *ScriptPattern) run(s State, env Env) (State, error) {
	c := p.compiled
	in := map[string]any{
		"x":             s.X,
		"y":             s.Y,
		"speed":         s.Speed,
		"move_counter":  s.MoveCounter,
		"direction":     s.Direction,
		"screen_width":  env.ScreenWidth,
		"screen_height": env.ScreenHeight,
		"ship_width":    env.ShipWidth,
	}
	for k, v := range in {
		if err := c.Set(k, v); err != nil {
			return s, fmt.Errorf("set %s: %w", k, err)
		}
	}
	if err := c.Run(); err != nil {
		return s, err
	}

	out := s
	out.X = c.Get("x").Float()
	out.Y = c.Get("y").Float()
	out.MoveCounter = c.Get("move_counter").Int()
	out.Direction = c.Get("direction").Int()
	return out, nil
}

// ScriptNames extracts the script names referenced by kinds.
func ScriptNames(kinds []Kind) []string {
	var names []string
	seen := map[string]bool{}
	for _, k := range kinds {
		name, ok := k.IsScript()
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, strings.TrimSpace(name))
	}
	return names
}
