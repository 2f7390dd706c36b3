package lottie

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with components in [0, 1]. Alpha lives on the
// owning node's opacity, not on the color.
type Color struct {
	R, G, B float64
}

// ColorWhite is the default color of fills, strokes and solid layers.
var ColorWhite = Color{1, 1, 1}

// Add returns the channel-wise sum c+o.
func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }

// Mul returns c with every channel scaled by s.
func (c Color) Mul(s float64) Color { return Color{c.R * s, c.G * s, c.B * s} }

// Colorful converts c to a go-colorful color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// RGB255 returns c clamped and scaled to 8-bit channels.
func (c Color) RGB255() (r, g, b uint8) {
	return c.Colorful().Clamped().RGB255()
}

// colorFromColorful converts a go-colorful color back into a Color.
func colorFromColorful(c colorful.Color) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// SolidColorHex parses a "#rrggbb" solid-layer color.
func SolidColorHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ColorWhite, err
	}
	return colorFromColorful(c), nil
}
