package lottie

// PathVerb is one command of a Path.
type PathVerb uint8

const (
	PathMoveTo  PathVerb = iota // consumes 1 point
	PathCubicTo                 // consumes 3 points: two controls, one endpoint
	PathClose                   // consumes 1 point: the sub-path start
)

// Path is a concrete outline: a verb list over a flat point list. It is what
// a rasterizer consumes once a ShapeData has been evaluated for a frame.
type Path struct {
	Points []Vec2
	Verbs  []PathVerb

	start Vec2
}

// Reset empties the path, keeping its storage.
func (p *Path) Reset() {
	p.Points = p.Points[:0]
	p.Verbs = p.Verbs[:0]
	p.start = Vec2{}
}

// Reserve makes room for at least points more points and verbs more verbs.
// Fresh storage is allocated with exactly the requested capacity.
func (p *Path) Reserve(points, verbs int) {
	if need := len(p.Points) + points; cap(p.Points) < need {
		grown := make([]Vec2, len(p.Points), need)
		copy(grown, p.Points)
		p.Points = grown
	}
	if need := len(p.Verbs) + verbs; cap(p.Verbs) < need {
		grown := make([]PathVerb, len(p.Verbs), need)
		copy(grown, p.Verbs)
		p.Verbs = grown
	}
}

// MoveTo starts a new sub-path at pt.
func (p *Path) MoveTo(pt Vec2) {
	p.Points = append(p.Points, pt)
	p.Verbs = append(p.Verbs, PathMoveTo)
	p.start = pt
}

// CubicTo appends a cubic bezier segment.
func (p *Path) CubicTo(c1, c2, end Vec2) {
	p.Points = append(p.Points, c1, c2, end)
	p.Verbs = append(p.Verbs, PathCubicTo)
}

// Close closes the current sub-path back to its start point.
func (p *Path) Close() {
	p.Points = append(p.Points, p.start)
	p.Verbs = append(p.Verbs, PathClose)
}

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool {
	return len(p.Verbs) == 0
}

// Elements calls fn for every command with the points it consumes.
// Iteration stops when fn returns false.
func (p *Path) Elements(fn func(verb PathVerb, pts []Vec2) bool) {
	i := 0
	for _, v := range p.Verbs {
		n := 1
		if v == PathCubicTo {
			n = 3
		}
		if i+n > len(p.Points) {
			return
		}
		if !fn(v, p.Points[i:i+n]) {
			return
		}
		i += n
	}
}
