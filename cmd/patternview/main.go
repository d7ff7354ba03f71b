package main

import (
	"flag"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/justin-david-todd/phoenix-clone/combat"
	"github.com/justin-david-todd/phoenix-clone/common"
	"github.com/justin-david-todd/phoenix-clone/movement"
	"github.com/justin-david-todd/phoenix-clone/prefabs"
)

const (
	screenWidth  = 800
	screenHeight = 800
	shipSize     = 32
	trailLength  = 240
)

// lane traces one movement kind from the top of its column.
type lane struct {
	kind    movement.Kind
	pattern movement.Pattern
	start   float64
	state   movement.State
	trail   []movement.State
}

func (l *lane) reset(speed float64) {
	l.state = movement.State{X: l.start, Y: 0, Speed: speed, Direction: 1}
	l.trail = l.trail[:0]
}

type tracer struct {
	lanes  []*lane
	rng    *rand.Rand
	speed  float64
	paused bool
}

func newTracer(kinds []movement.Kind, scripts *movement.Scripts, speed float64, seed uint64) *tracer {
	t := &tracer{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		speed: speed,
	}
	col := float64(screenWidth) / float64(max(len(kinds), 1))
	for i, k := range kinds {
		p, err := scripts.Resolve(k)
		if err != nil {
			log.Printf("patternview: %v", err)
			continue
		}
		l := &lane{kind: k, pattern: p, start: col*float64(i) + (col-shipSize)/2}
		l.reset(speed)
		t.lanes = append(t.lanes, l)
	}
	return t
}

func (t *tracer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		t.paused = !t.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		for _, l := range t.lanes {
			l.reset(t.speed)
		}
	}
	if t.paused {
		return nil
	}

	env := movement.Env{ScreenWidth: screenWidth, ScreenHeight: screenHeight, ShipWidth: shipSize, Rand: t.rng}
	for _, l := range t.lanes {
		l.state = l.pattern.Step(l.state, env)
		l.trail = append(l.trail, l.state)
		if len(l.trail) > trailLength {
			l.trail = l.trail[1:]
		}
		if l.state.Y > screenHeight {
			l.reset(t.speed)
		}
	}
	return nil
}

func (t *tracer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, l := range t.lanes {
		n := len(l.trail)
		for i, s := range l.trail {
			fade := common.Lerp(0.1, 1, float32(i+1)/float32(n))
			clr := color.NRGBA{R: 0x40, G: 0xa0, B: 0xff, A: uint8(255 * fade)}
			vector.FillRect(screen, float32(s.X)+shipSize/2-1, float32(s.Y)+shipSize/2-1, 2, 2, clr, false)
		}
		vector.StrokeRect(screen, float32(l.state.X), float32(l.state.Y), shipSize, shipSize, 1, color.White, false)
		ebitenutil.DebugPrintAt(screen, string(l.kind), int(l.start), screenHeight-16)
	}
	ebitenutil.DebugPrint(screen, "space pause  R restart")
}

func (t *tracer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	speed := flag.Float64("speed", 1, "ship speed for every lane")
	seed := flag.Uint64("seed", 1, "random seed for crawl_drop")
	flag.Parse()

	kinds := movement.Kinds()
	if species, err := combat.LoadSpeciesTable(); err != nil {
		log.Printf("patternview: %v", err)
	} else {
		for _, k := range species.Kinds() {
			if _, ok := k.IsScript(); ok {
				kinds = append(kinds, k)
			}
		}
	}

	t := newTracer(kinds, movement.NewScripts(prefabs.LoadScript), *speed, *seed)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Pattern Viewer")
	if err := ebiten.RunGame(t); err != nil {
		log.Fatal(err)
	}
}
