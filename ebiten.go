package lottie

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GeoM converts m into an ebiten geometry matrix.
func (m Matrix) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// ColorScale returns a premultiplied ebiten color scale for c at the given
// alpha fraction.
func (c Color) ColorScale(alpha float64) ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := float32(clamp01(alpha))
	cs.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	return cs
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
// Overlay has no fixed-function equivalent and draws as source-over.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	}
	return ebiten.BlendSourceOver
}

// AppendVectorPath replays p into dst after transforming every point by m.
func (p *Path) AppendVectorPath(dst *vector.Path, m Matrix) {
	p.Elements(func(verb PathVerb, pts []Vec2) bool {
		switch verb {
		case PathMoveTo:
			q := m.Apply(pts[0])
			dst.MoveTo(float32(q.X), float32(q.Y))
		case PathCubicTo:
			c1, c2, e := m.Apply(pts[0]), m.Apply(pts[1]), m.Apply(pts[2])
			dst.CubicTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(e.X), float32(e.Y))
		case PathClose:
			dst.Close()
		}
		return true
	})
}
