package component

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskFromImageThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{A: 127})
	img.SetNRGBA(2, 0, color.NRGBA{A: 128})

	m := MaskFromImage(img)
	require.Equal(t, 3, m.Width())
	require.Equal(t, 1, m.Height())
	assert.True(t, m.Get(0, 0))
	assert.False(t, m.Get(1, 0))
	assert.True(t, m.Get(2, 0))
	assert.Equal(t, 2, m.Count())
}

func TestMaskOverlap(t *testing.T) {
	square := FilledMask(4, 4)

	ring := NewMask(6, 6)
	for i := 0; i < 6; i++ {
		ring.Set(i, 0, true)
		ring.Set(i, 5, true)
		ring.Set(0, i, true)
		ring.Set(5, i, true)
	}
	dot := FilledMask(1, 1)

	cases := []struct {
		name   string
		a, b   *Mask
		dx, dy int
		expect bool
	}{
		{"same_position", square, square, 0, 0, true},
		{"touching_edge_no_overlap", square, square, 4, 0, false},
		{"one_pixel_overlap", square, square, 3, 3, true},
		{"negative_offset", square, square, -3, -3, true},
		{"far_apart", square, square, 40, 40, false},
		{"inside_hole", ring, dot, 2, 2, false},
		{"on_ring", ring, dot, 5, 2, true},
		{"nil_mask", square, nil, 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expect, c.a.Overlap(c.b, c.dx, c.dy))
		})
	}
}

func TestMaskBoundsAndOutline(t *testing.T) {
	m := NewMask(8, 8)
	m.Set(2, 3, true)
	m.Set(4, 5, true)
	assert.Equal(t, image.Rect(2, 3, 5, 6), m.Bounds())
	assert.Equal(t, image.Rectangle{}, NewMask(4, 4).Bounds())

	out := m.Outline(1)
	assert.False(t, out.Get(2, 3))
	assert.True(t, out.Get(1, 3))
	assert.True(t, out.Get(3, 4))
	assert.False(t, out.Get(7, 0))
}

func TestMaskOutOfRange(t *testing.T) {
	m := FilledMask(2, 2)
	m.Set(5, 5, true)
	assert.False(t, m.Get(-1, 0))
	assert.False(t, m.Get(2, 0))
	assert.Equal(t, 4, m.Count())
}

func TestMaskFromAlpha(t *testing.T) {
	diag := MaskFromAlpha(4, 4, func(x, y int) bool { return x == y })
	assert.Equal(t, 4, diag.Count())
	assert.True(t, diag.Get(2, 2))
	assert.False(t, diag.Get(2, 1))

	assert.Zero(t, MaskFromAlpha(4, 4, nil).Count())
	assert.Equal(t, 12, FilledMask(3, 4).Count())
}
