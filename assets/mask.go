package assets

import (
	"image"
	"image/color"

	"github.com/justin-david-todd/phoenix-clone/component"
)

// MaskImage paints the opaque pixels of m in clr for debug overlays.
func MaskImage(m *component.Mask, clr color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}
