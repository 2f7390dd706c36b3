package lottie

import "math"

// Vec2 is a 2D vector used for positions, sizes, tangents, and scale
// throughout the model.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Size is the pixel size of a composition or asset.
type Size struct {
	Width, Height float64
}

// Box is an axis-aligned bounding box from Min to Max. Y grows downward.
type Box struct {
	Min, Max Vec2
}

// Empty reports whether b encloses no area.
func (b Box) Empty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// ContainsPoint reports whether p lies in b, edges included.
func (b Box) ContainsPoint(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Transform returns the smallest box enclosing the four corners of b after
// mapping them through m.
func (b Box) Transform(m Matrix) Box {
	corners := [4]Vec2{
		m.Apply(b.Min),
		m.Apply(Vec2{b.Max.X, b.Min.Y}),
		m.Apply(b.Max),
		m.Apply(Vec2{b.Min.X, b.Max.Y}),
	}
	out := Box{Min: corners[0], Max: corners[0]}
	for _, c := range corners[1:] {
		out.Min.X = math.Min(out.Min.X, c.X)
		out.Min.Y = math.Min(out.Min.Y, c.Y)
		out.Max.X = math.Max(out.Max.X, c.X)
		out.Max.Y = math.Max(out.Max.Y, c.Y)
	}
	return out
}

// BlendMode selects a layer compositing operation.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over
	BlendMultiply                  // source * destination
	BlendScreen                    // 1 - (1-src)*(1-dst)
	BlendOverlay                   // multiply or screen depending on destination
)

// NodeType is the tag of the closed node variant.
type NodeType uint8

const (
	NodeTypeComposition    NodeType = iota + 1 // composition root
	NodeTypeLayer                              // layer (group with timing, masks, matte)
	NodeTypeShapeGroup                         // shape group
	NodeTypeTransform                          // transform
	NodeTypeFill                               // solid fill
	NodeTypeStroke                             // solid stroke
	NodeTypeGradientFill                       // gradient fill
	NodeTypeGradientStroke                     // gradient stroke
	NodeTypeRect                               // rectangle primitive
	NodeTypeEllipse                            // ellipse primitive
	NodeTypeShapePath                          // free-form path
	NodeTypePolystar                           // star or polygon primitive
	NodeTypeTrim                               // trim path operator
	NodeTypeRepeater                           // repeater operator
)

var nodeTypeNames = [...]string{
	NodeTypeComposition:    "Composition",
	NodeTypeLayer:          "Layer",
	NodeTypeShapeGroup:     "ShapeGroup",
	NodeTypeTransform:      "Transform",
	NodeTypeFill:           "Fill",
	NodeTypeStroke:         "Stroke",
	NodeTypeGradientFill:   "GradientFill",
	NodeTypeGradientStroke: "GradientStroke",
	NodeTypeRect:           "Rect",
	NodeTypeEllipse:        "Ellipse",
	NodeTypeShapePath:      "ShapePath",
	NodeTypePolystar:       "Polystar",
	NodeTypeTrim:           "Trim",
	NodeTypeRepeater:       "Repeater",
}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) && nodeTypeNames[t] != "" {
		return nodeTypeNames[t]
	}
	return "NodeType(?)"
}

// MatteType is the track-matte relationship of a layer with the layer above it.
type MatteType uint8

const (
	MatteNone MatteType = iota
	MatteAlpha
	MatteAlphaInverted
	MatteLuma
	MatteLumaInverted
)

// LayerType identifies what a layer draws.
type LayerType uint8

const (
	LayerPrecomp LayerType = iota
	LayerSolid
	LayerImage
	LayerNull
	LayerShape
	LayerText
)

// FillRule selects how the interior of a path is determined.
type FillRule uint8

const (
	FillRuleNonZero FillRule = iota // "winding"
	FillRuleEvenOdd
)

// CapStyle is the stroke end-cap style.
type CapStyle uint8

const (
	CapFlat CapStyle = iota
	CapRound
	CapSquare
)

// JoinStyle is the stroke corner style.
type JoinStyle uint8

const (
	JoinMiter JoinStyle = iota
	JoinRound
	JoinBevel
)

// GradientType selects the gradient geometry.
type GradientType uint8

const (
	GradientLinear GradientType = iota + 1
	GradientRadial
)

// PolystarType selects between star and polygon geometry.
type PolystarType uint8

const (
	PolystarStar PolystarType = iota + 1
	PolystarPolygon
)

// TrimType controls whether sibling shapes are trimmed as one concatenated
// path or each on its own.
type TrimType uint8

const (
	TrimSimultaneous TrimType = iota
	TrimIndividual
)

// MaskMode is the boolean operation a mask applies to the layer.
type MaskMode uint8

const (
	MaskNone MaskMode = iota
	MaskAdd
	MaskSubtract
	MaskIntersect
	MaskDifference
)

// Direction is the winding direction of a generated primitive outline.
type Direction uint8

const (
	DirectionCW Direction = iota
	DirectionCCW
)

// directionCCWCode is the raw direction code that selects counter-clockwise
// winding. Every other code winds clockwise.
const directionCCWCode = 3

func directionFromCode(code int) Direction {
	if code == directionCCWCode {
		return DirectionCCW
	}
	return DirectionCW
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
