package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/justin-david-todd/phoenix-clone/assets"
	"github.com/justin-david-todd/phoenix-clone/combat"
)

var (
	outlineColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	healthBarBack  = color.NRGBA{R: 0xc0, G: 0x20, B: 0x20, A: 0xff}
	healthBarFront = color.NRGBA{R: 0x20, G: 0xc0, B: 0x40, A: 0xff}
)

// imageCache uploads each sprite to the GPU once.
type imageCache struct {
	images   map[*assets.Sprite]*ebiten.Image
	outlines map[*assets.Sprite]*ebiten.Image
}

func newImageCache() *imageCache {
	return &imageCache{
		images:   map[*assets.Sprite]*ebiten.Image{},
		outlines: map[*assets.Sprite]*ebiten.Image{},
	}
}

func (c *imageCache) image(s *assets.Sprite) *ebiten.Image {
	if s == nil || s.Image == nil || s.Width() == 0 || s.Height() == 0 {
		return nil
	}
	if img, ok := c.images[s]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(s.Image)
	c.images[s] = img
	return img
}

func (c *imageCache) outline(s *assets.Sprite) *ebiten.Image {
	if s == nil || s.Mask == nil || s.Mask.Width() == 0 || s.Mask.Height() == 0 {
		return nil
	}
	if img, ok := c.outlines[s]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(assets.MaskImage(s.Mask.Outline(1), outlineColor))
	c.outlines[s] = img
	return img
}

func (c *imageCache) draw(screen *ebiten.Image, s *assets.Sprite, x, y float64) {
	drawAt(screen, c.image(s), x, y)
}

func (c *imageCache) drawOutline(screen *ebiten.Image, s *assets.Sprite, x, y float64) {
	drawAt(screen, c.outline(s), x, y)
}

func drawAt(screen, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func drawHealthBar(screen *ebiten.Image, bar combat.HealthBar) {
	bg, fill := bar.Background, bar.Fill
	vector.FillRect(screen, float32(bg.X), float32(bg.Y), float32(bg.Width), float32(bg.Height), healthBarBack, false)
	if fill.Empty() {
		return
	}
	vector.FillRect(screen, float32(fill.X), float32(fill.Y), float32(fill.Width), float32(fill.Height), healthBarFront, false)
}
