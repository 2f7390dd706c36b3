package lottie

import (
	"slices"
)

// GradientData is the raw, flat gradient array ("g"."k"): colorPoints runs of
// [offset, r, g, b] followed by any number of [offset, alpha] pairs. The two
// halves are positioned independently and may have different counts.
type GradientData []float64

// Lerp interpolates every entry of d towards to. Arrays of different length
// cannot be interpolated and d is returned unchanged.
func (d GradientData) Lerp(to GradientData, t float64) GradientData {
	if len(d) != len(to) {
		return d
	}
	out := make(GradientData, len(d))
	for i, v := range d {
		out[i] = v*(1-t) + to[i]*t
	}
	return out
}

// GradientStop is one renderer-ready gradient stop.
type GradientStop struct {
	Offset float64
	Color  Color
	Alpha  float64
}

type colorStop struct {
	offset float64
	color  Color
}

type alphaStop struct {
	offset float64
	alpha  float64
}

// Stops merges the color and alpha halves of d into one RGBA stop list.
//
// The result has a stop at every color offset and every alpha offset, in
// ascending order, with equal offsets collapsed into one stop. Color at an
// alpha-only offset and alpha at a color-only offset are interpolated
// linearly between the neighboring stops of the other half and clamped past
// its ends. Without alpha stops every stop is opaque.
//
// colorPoints is the number of color stops; a negative value, or one that
// does not fit, treats the whole array as color stops.
func (d GradientData) Stops(colorPoints int) []GradientStop {
	colors, alphas := d.split(colorPoints)
	if len(colors) == 0 {
		return nil
	}

	offsets := make([]float64, 0, len(colors)+len(alphas))
	for _, c := range colors {
		offsets = append(offsets, c.offset)
	}
	for _, a := range alphas {
		offsets = append(offsets, a.offset)
	}
	slices.Sort(offsets)
	offsets = slices.Compact(offsets)

	stops := make([]GradientStop, len(offsets))
	for i, off := range offsets {
		stops[i] = GradientStop{
			Offset: off,
			Color:  colorAtOffset(colors, off),
			Alpha:  alphaAtOffset(alphas, off),
		}
	}
	return stops
}

func (d GradientData) split(colorPoints int) ([]colorStop, []alphaStop) {
	if colorPoints < 0 || colorPoints*4 > len(d) {
		colorPoints = len(d) / 4
	}
	colors := make([]colorStop, colorPoints)
	for i := range colors {
		v := d[i*4 : i*4+4]
		colors[i] = colorStop{offset: v[0], color: Color{v[1], v[2], v[3]}}
	}
	rest := d[colorPoints*4:]
	alphas := make([]alphaStop, len(rest)/2)
	for i := range alphas {
		alphas[i] = alphaStop{offset: rest[i*2], alpha: rest[i*2+1]}
	}
	slices.SortStableFunc(colors, func(a, b colorStop) int { return cmpFloat(a.offset, b.offset) })
	slices.SortStableFunc(alphas, func(a, b alphaStop) int { return cmpFloat(a.offset, b.offset) })
	return colors, alphas
}

// colorAtOffset returns the color at off, blended between the neighboring
// color stops.
func colorAtOffset(stops []colorStop, off float64) Color {
	if off <= stops[0].offset {
		return stops[0].color
	}
	last := stops[len(stops)-1]
	if off >= last.offset {
		return last.color
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if a.offset <= off && off < b.offset {
			t := (off - a.offset) / (b.offset - a.offset)
			return colorFromColorful(a.color.Colorful().BlendRgb(b.color.Colorful(), t))
		}
	}
	return last.color
}

// alphaAtOffset returns the alpha at off, interpolated between the
// neighboring alpha stops. No stops means fully opaque.
func alphaAtOffset(stops []alphaStop, off float64) float64 {
	if len(stops) == 0 {
		return 1
	}
	if off <= stops[0].offset {
		return stops[0].alpha
	}
	last := stops[len(stops)-1]
	if off >= last.offset {
		return last.alpha
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if a.offset <= off && off < b.offset {
			t := (off - a.offset) / (b.offset - a.offset)
			return a.alpha + t*(b.alpha-a.alpha)
		}
	}
	return last.alpha
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Gradient is the part shared by gradient fills and strokes. Highlight
// length and angle only matter for radial gradients.
type Gradient struct {
	Type            GradientType
	Start           Animatable[Vec2]
	End             Animatable[Vec2]
	HighlightLength Animatable[float64]
	HighlightAngle  Animatable[float64]
	Opacity         Animatable[float64]
	Colors          Animatable[GradientData]
	// ColorPoints is the number of color stops at the front of Colors; -1
	// when unknown.
	ColorPoints int
	Enabled     bool
}

func newGradient() Gradient {
	return Gradient{
		Type:        GradientLinear,
		Opacity:     Static(100.0),
		ColorPoints: -1,
		Enabled:     true,
	}
}

// OpacityAt returns the gradient opacity at frame as a fraction.
func (g *Gradient) OpacityAt(frame float64) float64 { return g.Opacity.Value(frame) / 100 }

// StopsAt returns the merged RGBA stops at frame.
func (g *Gradient) StopsAt(frame float64) []GradientStop {
	return g.Colors.Value(frame).Stops(g.ColorPoints)
}

func (g *Gradient) hasKeyframes() bool {
	return !g.Start.IsStatic() || !g.End.IsStatic() ||
		!g.HighlightLength.IsStatic() || !g.HighlightAngle.IsStatic() ||
		!g.Opacity.IsStatic() || !g.Colors.IsStatic()
}

// GradientFill paints the interior of its sibling outlines with a gradient.
type GradientFill struct {
	Gradient
	FillRule FillRule
}

// NewGradientFill creates an enabled, opaque linear gradient fill.
func NewGradientFill() *GradientFill {
	return &GradientFill{Gradient: newGradient()}
}

// GradientStroke paints the outline of its sibling shapes with a gradient.
type GradientStroke struct {
	Gradient
	Width      Animatable[float64]
	Cap        CapStyle
	Join       JoinStyle
	MiterLimit float64
	Dash       Dash
}

// NewGradientStroke creates an enabled, opaque linear gradient stroke.
func NewGradientStroke() *GradientStroke {
	return &GradientStroke{Gradient: newGradient()}
}

// WidthAt returns the stroke width at frame.
func (g *GradientStroke) WidthAt(frame float64) float64 { return g.Width.Value(frame) }

// HasDash reports whether the stroke is dashed.
func (g *GradientStroke) HasDash() bool { return g.Dash.Len() > 0 }

// DashInfo evaluates the dash entries at frame into buf and returns how many
// were written.
func (g *GradientStroke) DashInfo(frame float64, buf []float64) int {
	return g.Dash.Info(frame, buf)
}

func (g *GradientStroke) hasKeyframes() bool {
	return g.Gradient.hasKeyframes() || !g.Width.IsStatic() || g.Dash.hasKeyframes()
}
