package lottie

// ShapeData is a flat bezier outline. Points[0] is the start point and every
// following run of three points is one cubic segment: two control points and
// an endpoint. Closed appends a closing segment when converted to a Path.
type ShapeData struct {
	Points []Vec2
	Closed bool
}

// Empty reports whether the outline has no points.
func (s ShapeData) Empty() bool {
	return len(s.Points) == 0
}

// Lerp interpolates every point of s towards the matching point of to. The
// closed flag is taken from s. Outlines with different point counts cannot be
// morphed and produce an empty ShapeData. t=0 and t=1 reproduce s and to
// exactly.
func (s ShapeData) Lerp(to ShapeData, t float64) ShapeData {
	if len(s.Points) != len(to.Points) {
		return ShapeData{}
	}
	out := ShapeData{
		Points: make([]Vec2, len(s.Points)),
		Closed: s.Closed,
	}
	for i, p := range s.Points {
		out.Points[i] = p.Mul(1 - t).Add(to.Points[i].Mul(t))
	}
	return out
}

// ToPath replaces the contents of p with the outline.
//
// Storage is sized up front: n points need n+1 slots (the close appends the
// start point) and n/3+2 verbs (one move, n/3 cubics, one close).
func (s ShapeData) ToPath(p *Path) {
	p.Reset()
	n := len(s.Points)
	if n == 0 {
		return
	}
	p.Reserve(n+1, n/3+2)
	p.MoveTo(s.Points[0])
	for i := 1; i+2 < n; i += 3 {
		p.CubicTo(s.Points[i], s.Points[i+1], s.Points[i+2])
	}
	if s.Closed {
		p.Close()
	}
}
