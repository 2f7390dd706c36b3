package lottie

import "testing"

// setupBenchComposition creates a composition with n shape layers, each
// holding an animated group with a path, a fill and a stroke.
func setupBenchComposition(n int) *Composition {
	root := NewLayerNode("root", NewLayer(0))
	shape := square(true)
	moved := square(true)
	for i := range moved.Points {
		moved.Points[i] = moved.Points[i].Add(Vec2{5, 5})
	}
	ease := NewCubicBezier(0.42, 0, 0.58, 1)
	for i := 0; i < n; i++ {
		tr := NewTransform()
		tr.Position = Animated(Keyframe[Vec2]{StartFrame: 0, EndFrame: 60, EndValue: Vec2{float64(i), 100}, Interpolator: ease})
		tr.Rotation = Animated(Keyframe[float64]{StartFrame: 0, EndFrame: 60, EndValue: 360, Interpolator: ease})
		sp := &ShapePath{Shape: Animated(Keyframe[ShapeData]{StartFrame: 0, EndFrame: 60, StartValue: shape, EndValue: moved})}
		stroke := NewStroke()
		stroke.Width = Static(2.0)
		g := NewShapeGroup("g", tr, NewShapePathNode("p", sp), NewFillNode("f", NewFill()), NewStrokeNode("s", stroke))
		l := NewLayer(i + 1)
		l.OutFrame = 60
		ln := NewLayerNode("l", l)
		ln.AddChild(g)
		root.AddChild(ln)
	}
	c := NewComposition(Size{512, 512}, Timeline{0, 61, 30}, root)
	c.Resolve()
	return c
}

// evaluate does what a rasterizer does per frame: every matrix, opacity
// and path of every visible layer.
func evaluate(n *Node, frame float64, p *Path) {
	switch n.Type {
	case NodeTypeLayer:
		if !n.Layer.Visible(frame) && n.Layer.OutFrame != 0 {
			return
		}
		_ = n.Layer.Transform.Matrix(frame)
	case NodeTypeShapeGroup:
		_ = n.Group.Transform.Matrix(frame)
	case NodeTypeShapePath:
		n.ShapePath.PathInto(frame, p)
	case NodeTypeFill:
		_ = n.Fill.Color.Value(frame)
		_ = n.Fill.OpacityAt(frame)
	case NodeTypeStroke:
		_ = n.Stroke.WidthAt(frame)
		_ = n.Stroke.OpacityAt(frame)
	}
	for _, child := range n.Children() {
		evaluate(child, frame, p)
	}
}

func BenchmarkEvaluate_1000Layers(b *testing.B) {
	c := setupBenchComposition(1000)
	var p Path
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		evaluate(c.Root, c.FrameAtPos(float64(i%60)/60), &p)
	}
}

func BenchmarkResolve_1000Layers(b *testing.B) {
	for i := 0; i < b.N; i++ {
		setupBenchComposition(1000)
	}
}

func BenchmarkAnimatableValue_ManySegments(b *testing.B) {
	frames := make([]Keyframe[float64], 200)
	for i := range frames {
		frames[i] = Keyframe[float64]{StartFrame: float64(i), EndFrame: float64(i + 1), StartValue: float64(i), EndValue: float64(i + 1)}
	}
	p := Animated(frames...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Value(float64(i%2000) / 10)
	}
}

func BenchmarkGradientStops(b *testing.B) {
	data := GradientData{
		0, 1, 0, 0,
		0.3, 1, 1, 0,
		0.7, 0, 1, 1,
		1, 0, 0, 1,
		0, 1, 0.5, 0.2, 1, 1,
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = data.Stops(4)
	}
}

func BenchmarkCubicBezier(b *testing.B) {
	ip := NewCubicBezier(0.25, 0.1, 0.25, 1)
	for i := 0; i < b.N; i++ {
		_ = ip.Value(float64(i%1000) / 1000)
	}
}
