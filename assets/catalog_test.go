package assets

import (
	"errors"
	"image"
	"testing"

	"github.com/justin-david-todd/phoenix-clone/component"
	"github.com/justin-david-todd/phoenix-clone/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogEmbeddedTable(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	ship, err := c.Sprite("main_ship")
	require.NoError(t, err)
	assert.Equal(t, 64, ship.Width())
	assert.Equal(t, 64, ship.Height())
	assert.Positive(t, ship.Mask.Count())
	assert.Less(t, ship.Mask.Count(), 64*64, "ship art has transparent corners")

	again, err := c.Sprite("main_ship")
	require.NoError(t, err)
	assert.Same(t, ship, again)

	_, err = c.Sprite("nope")
	assert.True(t, errors.Is(err, ErrUnknownSprite))
	assert.Contains(t, c.IDs(), "BlueSquid")
}

func TestPlaceholderShapes(t *testing.T) {
	cases := []struct {
		shape    string
		opaque   []image.Point
		clear    []image.Point
		allClear bool
	}{
		{shape: ShapeRect, opaque: []image.Point{{0, 0}, {31, 31}}},
		{shape: ShapeEllipse, opaque: []image.Point{{16, 16}}, clear: []image.Point{{0, 0}, {31, 0}}},
		{shape: ShapeDiamond, opaque: []image.Point{{16, 1}}, clear: []image.Point{{0, 0}, {2, 30}}},
		{shape: ShapeTriangleUp, opaque: []image.Point{{0, 31}, {16, 1}}, clear: []image.Point{{0, 0}}},
		{shape: ShapeTriangleDown, opaque: []image.Point{{0, 0}, {16, 30}}, clear: []image.Point{{0, 31}}},
		{shape: ShapeRing, opaque: []image.Point{{16, 1}}, clear: []image.Point{{16, 16}}},
		{shape: ShapeBlank, allClear: true},
	}

	for _, c := range cases {
		t.Run(c.shape, func(t *testing.T) {
			cat := NewCatalog(map[string]prefabs.SpriteSpec{
				"s": {Width: 32, Height: 32, Shape: c.shape, Color: "red"},
			})
			s, err := cat.Sprite("s")
			require.NoError(t, err)
			for _, p := range c.opaque {
				assert.True(t, s.Mask.Get(p.X, p.Y), "opaque at %v", p)
			}
			for _, p := range c.clear {
				assert.False(t, s.Mask.Get(p.X, p.Y), "clear at %v", p)
			}
			if c.allClear {
				assert.Zero(t, s.Mask.Count())
			}
		})
	}
}

func TestMissingFileFallsBackToPlaceholder(t *testing.T) {
	cat := NewCatalog(map[string]prefabs.SpriteSpec{
		"ghost": {Width: 8, Height: 8, Shape: ShapeRect, Color: "notacolor", File: "ghost.png"},
	})
	s, err := cat.Sprite("ghost")
	require.NoError(t, err)
	assert.Equal(t, 64, s.Mask.Count())
}

func TestFileIsScaledToTableSize(t *testing.T) {
	cat := NewCatalog(map[string]prefabs.SpriteSpec{
		"small_ship": {Width: 32, Height: 32, File: "main_ship.png"},
	})
	s, err := cat.Sprite("small_ship")
	require.NoError(t, err)
	assert.Equal(t, 32, s.Width())
	assert.Equal(t, 32, s.Height())
	assert.Positive(t, s.Mask.Count())
}

func TestMaskImageRoundTrip(t *testing.T) {
	cat := NewCatalog(map[string]prefabs.SpriteSpec{
		"d": {Width: 24, Height: 24, Shape: ShapeDiamond, Color: "gold"},
	})
	s, err := cat.Sprite("d")
	require.NoError(t, err)

	img := MaskImage(s.Mask, parseColor("white"))
	back := component.MaskFromImage(img)
	assert.Equal(t, s.Mask.Count(), back.Count())
	assert.Equal(t, s.Mask.Bounds(), back.Bounds())

	outline := MaskImage(s.Mask.Outline(1), parseColor("red"))
	assert.Equal(t, s.Mask.Outline(1).Count(), component.MaskFromImage(outline).Count())
}
