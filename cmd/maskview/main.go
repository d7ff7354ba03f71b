package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/justin-david-todd/phoenix-clone/assets"
	"github.com/justin-david-todd/phoenix-clone/component"
)

const (
	screenWidth  = 512
	screenHeight = 512
)

var outlineColor = color.NRGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}

// viewer shows one catalog sprite at a time with its collision outline.
type viewer struct {
	catalog   *assets.Catalog
	ids       []string
	current   int
	thickness int
	scale     float64
	showImage bool

	sprite  *ebiten.Image
	outline *ebiten.Image
	mask    *component.Mask
}

func newViewer(catalog *assets.Catalog, scale float64) *viewer {
	v := &viewer{
		catalog:   catalog,
		ids:       catalog.IDs(),
		thickness: 1,
		scale:     scale,
		showImage: true,
	}
	v.load()
	return v
}

func (v *viewer) load() {
	v.sprite, v.outline, v.mask = nil, nil, nil
	if len(v.ids) == 0 {
		return
	}
	s, err := v.catalog.Sprite(v.ids[v.current])
	if err != nil {
		log.Printf("maskview: %v", err)
		return
	}
	v.mask = s.Mask
	if s.Width() == 0 || s.Height() == 0 {
		return
	}
	v.sprite = ebiten.NewImageFromImage(s.Image)
	v.outline = ebiten.NewImageFromImage(assets.MaskImage(s.Mask.Outline(v.thickness), outlineColor))
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.current = (v.current + 1) % max(len(v.ids), 1)
		v.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.current = (v.current - 1 + len(v.ids)) % max(len(v.ids), 1)
		v.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		v.thickness = min(v.thickness+1, 8)
		v.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		v.thickness = max(v.thickness-1, 1)
		v.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		v.showImage = !v.showImage
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff})
	if len(v.ids) == 0 {
		ebitenutil.DebugPrint(screen, "no sprites in catalog")
		return
	}

	w, h := float64(v.mask.Width())*v.scale, float64(v.mask.Height())*v.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.scale, v.scale)
	op.GeoM.Translate((screenWidth-w)/2, (screenHeight-h)/2)
	op.Filter = ebiten.FilterNearest
	if v.showImage && v.sprite != nil {
		screen.DrawImage(v.sprite, op)
	}
	if v.outline != nil {
		screen.DrawImage(v.outline, op)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s (%d/%d)  %dx%d  opaque %d  outline %dpx\n<-/-> sprite  up/down outline  I toggle image",
		v.ids[v.current], v.current+1, len(v.ids),
		v.mask.Width(), v.mask.Height(), v.mask.Count(), v.thickness,
	))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	scale := flag.Float64("scale", 3, "zoom factor")
	flag.Parse()

	catalog, err := assets.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Mask Viewer")
	if err := ebiten.RunGame(newViewer(catalog, *scale)); err != nil {
		log.Fatal(err)
	}
}
