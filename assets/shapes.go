package assets

import (
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// Placeholder shapes understood by the sprite catalog.
const (
	ShapeRect         = "rect"
	ShapeDiamond      = "diamond"
	ShapeEllipse      = "ellipse"
	ShapeTriangleUp   = "triangle_up"
	ShapeTriangleDown = "triangle_down"
	ShapeBolt         = "bolt"
	ShapeRing         = "ring"
	ShapeBlank        = "blank"
)

func parseColor(name string) color.NRGBA {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		c = colornames.Magenta
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// placeholder rasterizes a flat-colored shape. Pixels are sampled at their
// centers so the result is symmetric for even sizes.
func placeholder(width, height int, shape string, clr color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	rx, ry := float64(width)/2, float64(height)/2

	inside := shapeFunc(shape)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nx := (float64(x) + 0.5 - rx) / rx
			ny := (float64(y) + 0.5 - ry) / ry
			if inside(nx, ny) {
				img.SetNRGBA(x, y, clr)
			}
		}
	}
	return img
}

// shapeFunc returns a predicate over coordinates normalized to [-1, 1].
func shapeFunc(shape string) func(nx, ny float64) bool {
	switch strings.ToLower(shape) {
	case ShapeDiamond:
		return func(nx, ny float64) bool { return math.Abs(nx)+math.Abs(ny) <= 1 }
	case ShapeEllipse:
		return func(nx, ny float64) bool { return nx*nx+ny*ny <= 1 }
	case ShapeTriangleUp:
		return func(nx, ny float64) bool { return math.Abs(nx) <= (ny+1)/2 }
	case ShapeTriangleDown:
		return func(nx, ny float64) bool { return math.Abs(nx) <= (1-ny)/2 }
	case ShapeBolt:
		return func(nx, ny float64) bool { return math.Abs(nx) <= 0.5 }
	case ShapeRing:
		return func(nx, ny float64) bool {
			d := nx*nx + ny*ny
			return d <= 1 && d >= 0.36
		}
	case ShapeBlank:
		return func(float64, float64) bool { return false }
	default:
		return func(float64, float64) bool { return true }
	}
}
