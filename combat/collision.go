package combat

import (
	"github.com/jakecoffman/cp"
	"github.com/justin-david-todd/phoenix-clone/component"
)

// Masked is anything placed on screen with a collision mask.
type Masked interface {
	Position() (x, y float64)
	Mask() *component.Mask
}

// Collide reports whether a and b share an opaque pixel. b's mask is tested
// at the integer offset of its position from a's.
func Collide(a, b Masked) bool {
	if a == nil || b == nil {
		return false
	}
	ma, mb := a.Mask(), b.Mask()
	if ma == nil || mb == nil {
		return false
	}

	ax, ay := a.Position()
	bx, by := b.Position()
	dx, dy := int(bx-ax), int(by-ay)

	if !boundsOf(ma, 0, 0).Intersects(boundsOf(mb, dx, dy)) {
		return false
	}
	return ma.Overlap(mb, dx, dy)
}

// boundsOf returns the mask's pixel rectangle placed at (x, y). It only
// skips the mask scan for far-apart pairs; Overlap gives the same answer
// without it. The right and top edges are pulled in by one pixel since cp
// treats touching boxes as intersecting.
func boundsOf(m *component.Mask, x, y int) cp.BB {
	return cp.BB{
		L: float64(x),
		B: float64(y),
		R: float64(x + m.Width() - 1),
		T: float64(y + m.Height() - 1),
	}
}
