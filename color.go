package render2d

import "image/color"

// RGBA is a non-premultiplied color with float32 components in [0, 1].
// Vertex colors are written into GPU buffers without conversion, so RGBA
// uses float32 rather than float64.
type RGBA struct {
	R, G, B, A float32
}

// White is the default vertex color.
var White = RGBA{R: 1, G: 1, B: 1, A: 1}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

func clamp255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
