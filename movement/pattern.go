// Package movement implements the per-frame enemy movement patterns. Every
// pattern is a state transition over State; the only input besides the state
// is the screen geometry and, for crawl_drop, a random source.
package movement

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPattern = errors.New("movement: unknown pattern")

// Kind names a movement pattern. Script patterns use the "script:" prefix
// followed by the script name under prefabs/scripts.
type Kind string

const (
	MoveDown    Kind = "move_down"
	SneakSprint Kind = "sneak_sprint"
	Zig         Kind = "zig"
	Zag         Kind = "zag"
	CrawlLeft   Kind = "crawl_left"
	CrawlRight  Kind = "crawl_right"
	CrawlDrop   Kind = "crawl_drop"

	scriptPrefix = "script:"
)

// Tuning shared by the patterns.
const (
	ZigHalfCycle   = 60
	ZigCycle       = 120
	CrawlTurn      = 70
	CrawlDescent   = 2
	SprintFactor   = 3
	DropWaitFrames = 250
)

// State is the mutable part of a ship the patterns read and write.
type State struct {
	X, Y        float64
	Speed       float64
	MoveCounter int
	Direction   int
	// Dropped is set once crawl_drop has spent its burst descent.
	Dropped bool
}

// Rand is the random source crawl_drop draws from.
type Rand interface {
	IntN(n int) int
}

// Env carries the per-call context of a pattern.
type Env struct {
	ScreenWidth  int
	ScreenHeight int
	ShipWidth    float64
	Rand         Rand
}

// Pattern advances a State by one frame.
type Pattern interface {
	Step(s State, env Env) State
}

// PatternFunc adapts a plain function to Pattern.
type PatternFunc func(s State, env Env) State

func (f PatternFunc) Step(s State, env Env) State {
	return f(s, env)
}

var builtins = map[Kind]Pattern{
	MoveDown:    PatternFunc(moveDown),
	SneakSprint: PatternFunc(sneakSprint),
	Zig:         PatternFunc(zig),
	Zag:         PatternFunc(zag),
	CrawlLeft:   PatternFunc(crawlLeft),
	CrawlRight:  PatternFunc(crawlRight),
	CrawlDrop:   PatternFunc(crawlDrop),
}

// Kinds lists the built-in pattern kinds in a stable order.
func Kinds() []Kind {
	return []Kind{MoveDown, SneakSprint, Zig, Zag, CrawlLeft, CrawlRight, CrawlDrop}
}

// ScriptKind returns the Kind that selects the named script pattern.
func ScriptKind(name string) Kind {
	return Kind(scriptPrefix + name)
}

// IsScript reports whether k names a script pattern, and returns its name.
func (k Kind) IsScript() (string, bool) {
	name, ok := strings.CutPrefix(string(k), scriptPrefix)
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

// Step runs one frame of the built-in pattern k. Unknown kinds leave the
// state untouched.
func Step(k Kind, s State, env Env) State {
	p, ok := builtins[k]
	if !ok {
		return s
	}
	return p.Step(s, env)
}

// Resolve returns the Pattern for a built-in kind. Script kinds are resolved
// through a Scripts library.
func Resolve(k Kind) (Pattern, error) {
	if p, ok := builtins[k]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, k)
}
