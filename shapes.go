package lottie

import (
	"math"
	"sync"
)

// Rect is an animatable rectangle primitive centered on Position. Building
// the rounded outline is left to the rasterizer.
type Rect struct {
	Position  Animatable[Vec2]
	Size      Animatable[Vec2]
	Roundness Animatable[float64]
	// DirectionCode is the raw winding code ("d"); 3 means counter-clockwise.
	DirectionCode int
}

// Direction returns the winding direction of the generated outline.
func (r *Rect) Direction() Direction { return directionFromCode(r.DirectionCode) }

func (r *Rect) hasKeyframes() bool {
	return !r.Position.IsStatic() || !r.Size.IsStatic() || !r.Roundness.IsStatic()
}

// Ellipse is an animatable ellipse primitive centered on Position.
type Ellipse struct {
	Position      Animatable[Vec2]
	Size          Animatable[Vec2]
	DirectionCode int
}

// Direction returns the winding direction of the generated outline.
func (e *Ellipse) Direction() Direction { return directionFromCode(e.DirectionCode) }

func (e *Ellipse) hasKeyframes() bool {
	return !e.Position.IsStatic() || !e.Size.IsStatic()
}

// Polystar is a star or regular polygon primitive. InnerRadius and
// InnerRoundness are evaluated for polygons too, even though polygon
// geometry ignores them.
type Polystar struct {
	Type           PolystarType
	Position       Animatable[Vec2]
	Points         Animatable[float64]
	InnerRadius    Animatable[float64]
	OuterRadius    Animatable[float64]
	InnerRoundness Animatable[float64]
	OuterRoundness Animatable[float64]
	Rotation       Animatable[float64]
	DirectionCode  int
}

// NewPolystar creates a polygon with zeroed parameters.
func NewPolystar() *Polystar {
	return &Polystar{Type: PolystarPolygon}
}

// Direction returns the winding direction of the generated outline.
func (p *Polystar) Direction() Direction { return directionFromCode(p.DirectionCode) }

func (p *Polystar) hasKeyframes() bool {
	return !p.Position.IsStatic() || !p.Points.IsStatic() ||
		!p.InnerRadius.IsStatic() || !p.OuterRadius.IsStatic() ||
		!p.InnerRoundness.IsStatic() || !p.OuterRoundness.IsStatic() ||
		!p.Rotation.IsStatic()
}

// ShapePath is a free-form bezier outline.
type ShapePath struct {
	Shape         Animatable[ShapeData]
	DirectionCode int

	// A static shape builds its Path once under once and keeps it.
	static bool
	once   sync.Once
	path   *Path
}

// Direction returns the winding direction of the outline.
func (s *ShapePath) Direction() Direction { return directionFromCode(s.DirectionCode) }

// IsStatic reports whether the outline was found to have no keyframes. It is
// false until the owning composition is resolved.
func (s *ShapePath) IsStatic() bool { return s.static }

// Path returns the concrete outline at frame. For a static shape the path
// is built on first use and the same *Path is returned afterwards; callers
// MUST NOT mutate it. Animated shapes get a freshly built path every call.
func (s *ShapePath) Path(frame float64) *Path {
	if s.static {
		s.once.Do(func() {
			s.path = new(Path)
			s.Shape.Value(frame).ToPath(s.path)
		})
		return s.path
	}
	p := new(Path)
	s.Shape.Value(frame).ToPath(p)
	return p
}

// PathInto writes the outline at frame into p, reusing its storage.
func (s *ShapePath) PathInto(frame float64, p *Path) {
	s.Shape.Value(frame).ToPath(p)
}

func (s *ShapePath) warm() {
	if s.static {
		s.Path(0)
	}
}

// Trim keeps a sub-range of its sibling outlines. Start and End are
// percentages; Offset is in degrees of a full turn.
type Trim struct {
	Start  Animatable[float64]
	End    Animatable[float64]
	Offset Animatable[float64]
	Type   TrimType
}

// StartAt returns the start of the kept range as a fraction.
func (t *Trim) StartAt(frame float64) float64 { return t.Start.Value(frame) / 100 }

// EndAt returns the end of the kept range as a fraction.
func (t *Trim) EndAt(frame float64) float64 { return t.End.Value(frame) / 100 }

// OffsetAt returns the range offset as a fraction of a full turn.
func (t *Trim) OffsetAt(frame float64) float64 {
	return math.Mod(t.Offset.Value(frame), 360) / 360
}

func (t *Trim) hasKeyframes() bool {
	return !t.Start.IsStatic() || !t.End.IsStatic() || !t.Offset.IsStatic()
}

// Repeater produces Copies transformed copies of its sibling shapes. The
// copy geometry is built by the rasterizer; Transform is the per-copy step
// and StartOpacity/EndOpacity fade across the copies.
type Repeater struct {
	Copies       Animatable[float64]
	Offset       Animatable[float64]
	Transform    *Transform
	StartOpacity Animatable[float64]
	EndOpacity   Animatable[float64]
}

// NewRepeater creates a repeater with one copy and no fade.
func NewRepeater() *Repeater {
	return &Repeater{
		Copies:       Static(1.0),
		Transform:    NewTransform(),
		StartOpacity: Static(100.0),
		EndOpacity:   Static(100.0),
	}
}

// CopiesAt returns the copy count at frame.
func (r *Repeater) CopiesAt(frame float64) float64 { return r.Copies.Value(frame) }

// OffsetAt returns the copy offset at frame.
func (r *Repeater) OffsetAt(frame float64) float64 { return r.Offset.Value(frame) }

// StartOpacityAt returns the first copy's opacity as a fraction.
func (r *Repeater) StartOpacityAt(frame float64) float64 { return r.StartOpacity.Value(frame) / 100 }

// EndOpacityAt returns the last copy's opacity as a fraction.
func (r *Repeater) EndOpacityAt(frame float64) float64 { return r.EndOpacity.Value(frame) / 100 }

func (r *Repeater) hasKeyframes() bool {
	return !r.Copies.IsStatic() || !r.Offset.IsStatic() ||
		!r.StartOpacity.IsStatic() || !r.EndOpacity.IsStatic()
}
