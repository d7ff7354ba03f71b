package component

import (
	"image"
	"math/bits"
)

// AlphaThreshold is the alpha value (0-255) a pixel must exceed to count as
// opaque when a mask is built from an image.
const AlphaThreshold = 127

// Mask is a per-pixel opacity map used for exact collision tests.
type Mask struct {
	width  int
	height int
	words  []uint64
}

// NewMask allocates an empty (fully transparent) mask.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n := (width*height + 63) / 64
	return &Mask{width: width, height: height, words: make([]uint64, n)}
}

// FilledMask returns a mask with every pixel opaque.
func FilledMask(width, height int) *Mask {
	return MaskFromAlpha(width, height, func(x, y int) bool { return true })
}

// MaskFromAlpha builds a width x height mask, marking the pixels opaque
// reports true for.
func MaskFromAlpha(width, height int, opaque func(x, y int) bool) *Mask {
	m := NewMask(width, height)
	if opaque == nil {
		return m
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if opaque(x, y) {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// MaskFromImage derives a mask from img's alpha channel.
func MaskFromImage(img image.Image) *Mask {
	if img == nil {
		return NewMask(0, 0)
	}
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a>>8 > AlphaThreshold {
				m.Set(x-b.Min.X, y-b.Min.Y, true)
			}
		}
	}
	return m
}

func (m *Mask) Width() int {
	if m == nil {
		return 0
	}
	return m.width
}

func (m *Mask) Height() int {
	if m == nil {
		return 0
	}
	return m.height
}

// Get reports whether the pixel at (x, y) is opaque. Out of range is transparent.
func (m *Mask) Get(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	i := y*m.width + x
	return m.words[i/64]&(1<<(uint(i)%64)) != 0
}

// Set marks the pixel at (x, y). Out of range writes are dropped.
func (m *Mask) Set(x, y int, opaque bool) {
	if m == nil || x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	i := y*m.width + x
	if opaque {
		m.words[i/64] |= 1 << (uint(i) % 64)
	} else {
		m.words[i/64] &^= 1 << (uint(i) % 64)
	}
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Bounds returns the tight rectangle around the opaque pixels, or an empty
// rectangle if there are none.
func (m *Mask) Bounds() image.Rectangle {
	r := image.Rectangle{}
	if m == nil {
		return r
	}
	first := true
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !m.Get(x, y) {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if first {
				r = px
				first = false
				continue
			}
			r = r.Union(px)
		}
	}
	return r
}

// Overlap reports whether m and other share an opaque pixel when other's
// top-left corner is placed at (dx, dy) in m's coordinates.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}
	x0, x1 := max(0, dx), min(m.width, dx+other.width)
	y0, y1 := max(0, dy), min(m.height, dy+other.height)
	if x0 >= x1 || y0 >= y1 {
		return false
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Get(x, y) && other.Get(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// Outline returns the transparent pixels lying within thickness of an opaque
// pixel. Debug views draw it around sprites.
func (m *Mask) Outline(thickness int) *Mask {
	if m == nil {
		return NewMask(0, 0)
	}
	out := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.Get(x, y) {
				continue
			}
			found := false
			ymin, ymax := max(0, y-thickness), min(m.height-1, y+thickness)
			xmin, xmax := max(0, x-thickness), min(m.width-1, x+thickness)
			for yy := ymin; yy <= ymax && !found; yy++ {
				for xx := xmin; xx <= xmax; xx++ {
					if m.Get(xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.Set(x, y, true)
			}
		}
	}
	return out
}
