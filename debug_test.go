package lottie

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCleanTree(t *testing.T) {
	g := NewShapeGroup("g", nil, animatedFill(), staticFill())
	c := NewComposition(Size{1, 1}, Timeline{0, 10, 30}, shapeLayer(0, NoParent, shapeLayer(1, NoParent, g), shapeLayer(2, 1)))
	if err := c.Validate(); err != nil {
		t.Errorf("Validate = %v", err)
	}
}

func TestValidateDuplicateAndUnknownParent(t *testing.T) {
	root := shapeLayer(0, NoParent,
		shapeLayer(1, NoParent),
		shapeLayer(1, NoParent),
		shapeLayer(2, 77),
	)
	err := NewComposition(Size{1, 1}, Timeline{0, 10, 30}, root).Validate()
	if !errors.Is(err, ErrDuplicateLayerID) {
		t.Errorf("missing duplicate id: %v", err)
	}
	if !errors.Is(err, ErrUnknownParent) {
		t.Errorf("missing unknown parent: %v", err)
	}
}

func TestValidateReportsLocation(t *testing.T) {
	tr := NewTransform()
	tr.Rotation = Animated(linearSegment(0, 10, 0, 1), linearSegment(12, 20, 1, 2))
	root := layerWith(NewShapeGroup("body", tr, staticFill()))
	err := NewComposition(Size{1, 1}, Timeline{0, 20, 30}, root).Validate()
	if !errors.Is(err, ErrKeyframeGap) {
		t.Fatalf("err = %v, want gap", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "root/layer/body.transform.rotation") {
		t.Errorf("location missing from %q", msg)
	}
}

func TestValidateCoversEveryNodeKind(t *testing.T) {
	bad := func() Animatable[float64] {
		return Animated(linearSegment(0, 10, 0, 1), linearSegment(5, 20, 1, 2))
	}
	badVec := Animated(Keyframe[Vec2]{StartFrame: 0, EndFrame: 10}, Keyframe[Vec2]{StartFrame: 5, EndFrame: 20})

	stroke := NewStroke()
	stroke.Dash.Values = []Animatable[float64]{bad()}
	gs := NewGradientStroke()
	gs.Width = bad()
	gf := NewGradientFill()
	gf.HighlightAngle = bad()
	star := NewPolystar()
	star.OuterRoundness = bad()
	rep := NewRepeater()
	rep.Transform.Skew = bad()
	shape := &ShapePath{Shape: Animated(Keyframe[ShapeData]{
		StartFrame: 0, EndFrame: 1,
		StartValue: ShapeData{Points: make([]Vec2, 1)},
	})}

	nodes := []*Node{
		NewStrokeNode("stroke", stroke),
		NewGradientStrokeNode("gstroke", gs),
		NewGradientFillNode("gfill", gf),
		NewRectNode("rect", &Rect{Size: badVec}),
		NewEllipseNode("ellipse", &Ellipse{Position: badVec}),
		NewPolystarNode("star", star),
		NewTrimNode("trim", &Trim{Offset: bad()}),
		NewRepeaterNode("repeater", rep),
		NewShapePathNode("shape", shape),
	}
	for _, n := range nodes {
		err := NewComposition(Size{1, 1}, Timeline{0, 20, 30}, layerWith(n)).Validate()
		if err == nil {
			t.Errorf("%s: problem not reported", n.Name)
		}
	}

	l := NewLayer(1)
	m := NewMask()
	m.Opacity = bad()
	l.AddMask(m)
	if err := NewComposition(Size{1, 1}, Timeline{0, 20, 30}, NewLayerNode("l", l)).Validate(); !errors.Is(err, ErrKeyframeOverlap) {
		t.Errorf("mask problem not reported: %v", err)
	}
}

func TestValidateAssets(t *testing.T) {
	c := NewComposition(Size{1, 1}, Timeline{0, 10, 30}, layerWith())
	c.AddAsset(&Asset{Type: AssetPrecomp, RefID: "p", Layers: []*Node{shapeLayer(3, NoParent), shapeLayer(3, NoParent)}})
	err := c.Validate()
	if !errors.Is(err, ErrDuplicateLayerID) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), `asset "p"`) {
		t.Errorf("asset location missing from %q", err)
	}
}

func TestValidateDoesNotChangeEvaluation(t *testing.T) {
	f := NewFill()
	f.Opacity = Animated(linearSegment(0, 10, 0, 100), linearSegment(5, 20, 0, 100))
	before := f.Opacity.Value(7)
	c := NewComposition(Size{1, 1}, Timeline{0, 20, 30}, layerWith(NewFillNode("f", f)))
	_ = c.Validate()
	c.Resolve()
	assertNear(t, "value", f.Opacity.Value(7), before)
}
