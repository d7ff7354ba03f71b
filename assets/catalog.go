// Package assets provides sprites to the combat core. The core only needs a
// sprite's size and its collision mask; the image itself is kept for renderers.
package assets

import (
	"errors"
	"fmt"
	"image"
	"log"
	"sort"

	"github.com/justin-david-todd/phoenix-clone/component"
	"github.com/justin-david-todd/phoenix-clone/prefabs"
	"golang.org/x/image/draw"
)

var ErrUnknownSprite = errors.New("assets: unknown sprite")

// Sprite is a drawable image plus the mask derived from it.
type Sprite struct {
	ID    string
	Image image.Image
	Mask  *component.Mask
}

func (s *Sprite) Width() int {
	if s == nil || s.Mask == nil {
		return 0
	}
	return s.Mask.Width()
}

func (s *Sprite) Height() int {
	if s == nil || s.Mask == nil {
		return 0
	}
	return s.Mask.Height()
}

// Provider resolves sprite identifiers.
type Provider interface {
	Sprite(id string) (*Sprite, error)
}

// Catalog builds sprites from the sprite table: a PNG asset when the table
// names one that exists, otherwise a generated placeholder. Sprites are built
// once and shared.
type Catalog struct {
	specs map[string]prefabs.SpriteSpec
	cache map[string]*Sprite
}

func NewCatalog(specs map[string]prefabs.SpriteSpec) *Catalog {
	return &Catalog{
		specs: specs,
		cache: map[string]*Sprite{},
	}
}

// LoadCatalog reads sprites.yaml.
func LoadCatalog() (*Catalog, error) {
	specs, err := prefabs.LoadSprites()
	if err != nil {
		return nil, err
	}
	return NewCatalog(specs), nil
}

func (c *Catalog) Sprite(id string) (*Sprite, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSprite, id)
	}
	if s, ok := c.cache[id]; ok {
		return s, nil
	}
	spec, ok := c.specs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSprite, id)
	}

	img := c.build(id, spec)
	s := &Sprite{ID: id, Image: img, Mask: component.MaskFromImage(img)}
	c.cache[id] = s
	return s, nil
}

// IDs lists the catalog's sprite identifiers in sorted order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.specs))
	for id := range c.specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Catalog) build(id string, spec prefabs.SpriteSpec) image.Image {
	if spec.File != "" {
		img, err := LoadImage(spec.File)
		if err == nil {
			return fit(img, spec.Width, spec.Height)
		}
		log.Printf("assets: sprite %s: %v, using placeholder", id, err)
	}
	return placeholder(spec.Width, spec.Height, spec.Shape, parseColor(spec.Color))
}

// fit scales img to width x height when the file does not match the table.
func fit(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
