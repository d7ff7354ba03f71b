package combat

import (
	"testing"

	"github.com/justin-david-todd/phoenix-clone/component"
	"github.com/stretchr/testify/assert"
)

type placed struct {
	x, y float64
	mask *component.Mask
}

func (p placed) Position() (float64, float64) { return p.x, p.y }
func (p placed) Mask() *component.Mask { return p.mask }

func ring(size int) *component.Mask {
	m := component.NewMask(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

func TestCollide(t *testing.T) {
	square := component.FilledMask(32, 32)
	dot := component.FilledMask(4, 4)
	hollow := ring(32)

	cases := []struct {
		name   string
		a, b   Masked
		expect bool
	}{
		{"same_position", placed{10, 10, square}, placed{10, 10, square}, true},
		{"disjoint_boxes", placed{0, 0, square}, placed{100, 0, square}, false},
		{"touching_edges", placed{0, 0, square}, placed{32, 0, square}, false},
		{"one_pixel_overlap", placed{0, 0, square}, placed{31, 31, square}, true},
		{"negative_offset", placed{50, 50, square}, placed{20, 20, square}, true},
		{"inside_hollow", placed{0, 0, hollow}, placed{14, 14, dot}, false},
		{"on_hollow_rim", placed{0, 0, hollow}, placed{-2, 14, dot}, true},
		{"fractional_truncates", placed{0, 0, square}, placed{31.9, 0, square}, true},
		{"nil_mask", placed{0, 0, nil}, placed{0, 0, square}, false},
		{"empty_mask", placed{0, 0, component.NewMask(0, 0)}, placed{0, 0, square}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expect, Collide(c.a, c.b))
			assert.Equal(t, c.expect, Collide(c.b, c.a), "symmetric")
		})
	}
}
