package lottie

import (
	"errors"
	"fmt"
	"strconv"
)

// Problems reported by Validate. None of them stop evaluation; each has a
// defined fallback.
var (
	ErrKeyframeOverlap  = errors.New("keyframe segments overlap")
	ErrKeyframeGap      = errors.New("gap between keyframe segments")
	ErrShapeMismatch    = errors.New("shape keyframes differ in point count")
	ErrDuplicateLayerID = errors.New("duplicate layer id")
	ErrUnknownParent    = errors.New("parent layer id not found")
)

// Validate reports overlapping or gapped segments and, for shape
// properties, segments whose endpoints disagree in point count.
func (a *Animatable[T]) Validate() error {
	var errs []error
	for i := range a.keyframes {
		k := &a.keyframes[i]
		if sd, ok := any(k.StartValue).(ShapeData); ok {
			ed := any(k.EndValue).(ShapeData)
			if len(sd.Points) != len(ed.Points) {
				errs = append(errs, fmt.Errorf("segment %d: %w (%d vs %d)",
					i, ErrShapeMismatch, len(sd.Points), len(ed.Points)))
			}
		}
		if i == 0 {
			continue
		}
		prev := &a.keyframes[i-1]
		switch {
		case k.StartFrame < prev.EndFrame:
			errs = append(errs, fmt.Errorf("segment %d starts at %g before %g: %w",
				i, k.StartFrame, prev.EndFrame, ErrKeyframeOverlap))
		case k.StartFrame > prev.EndFrame:
			errs = append(errs, fmt.Errorf("segment %d starts at %g after %g: %w",
				i, k.StartFrame, prev.EndFrame, ErrKeyframeGap))
		}
	}
	return errors.Join(errs...)
}

// validator collects problems with a readable location prefix.
type validator struct {
	errs []error
}

func (v *validator) add(where string, err error) {
	if err != nil {
		v.errs = append(v.errs, fmt.Errorf("%s: %w", where, err))
	}
}

func checkProp[T Value](v *validator, where, prop string, a *Animatable[T]) {
	v.add(where+"."+prop, a.Validate())
}

// problems returns every property and structure problem of the composition.
func (c *Composition) problems() []error {
	v := &validator{}
	if c.Root != nil {
		v.node(c.Root, "root")
	}
	for id, a := range c.Assets {
		where := "asset " + strconv.Quote(id)
		for i, n := range a.Layers {
			v.node(n, where+"["+strconv.Itoa(i)+"]")
		}
		v.siblings(a.Layers, where)
	}
	return v.errs
}

// siblings checks one layer list for duplicate ids and dangling parents.
func (v *validator) siblings(nodes []*Node, where string) {
	ids := make(map[int]bool)
	for _, n := range nodes {
		if n.Type != NodeTypeLayer {
			continue
		}
		if ids[n.Layer.ID] {
			v.add(where, fmt.Errorf("layer %q id %d: %w", n.Name, n.Layer.ID, ErrDuplicateLayerID))
		}
		ids[n.Layer.ID] = true
	}
	for _, n := range nodes {
		if n.Type == NodeTypeLayer && n.Layer.HasParent() && !ids[n.Layer.ParentID] {
			v.add(where, fmt.Errorf("layer %q parent %d: %w", n.Name, n.Layer.ParentID, ErrUnknownParent))
		}
	}
}

func (v *validator) node(n *Node, where string) {
	if n.Name != "" {
		where += "/" + n.Name
	} else {
		where += "/" + n.Type.String()
	}
	switch n.Type {
	case NodeTypeLayer:
		l := n.Layer
		v.group(&l.Group, where)
		checkProp(v, where, "timeRemap", &l.TimeRemap)
		for i, m := range l.Masks {
			mw := where + ".mask[" + strconv.Itoa(i) + "]"
			checkProp(v, mw, "shape", &m.Shape)
			checkProp(v, mw, "opacity", &m.Opacity)
		}
		v.siblings(l.Children, where)
	case NodeTypeShapeGroup:
		v.group(n.Group, where)
	case NodeTypeTransform:
		v.transform(n.Transform, where)
	case NodeTypeFill:
		checkProp(v, where, "color", &n.Fill.Color)
		checkProp(v, where, "opacity", &n.Fill.Opacity)
	case NodeTypeStroke:
		s := n.Stroke
		checkProp(v, where, "color", &s.Color)
		checkProp(v, where, "opacity", &s.Opacity)
		checkProp(v, where, "width", &s.Width)
		v.dash(&s.Dash, where)
	case NodeTypeGradientFill:
		v.gradient(&n.GradientFill.Gradient, where)
	case NodeTypeGradientStroke:
		g := n.GradientStroke
		v.gradient(&g.Gradient, where)
		checkProp(v, where, "width", &g.Width)
		v.dash(&g.Dash, where)
	case NodeTypeRect:
		r := n.Rect
		checkProp(v, where, "position", &r.Position)
		checkProp(v, where, "size", &r.Size)
		checkProp(v, where, "roundness", &r.Roundness)
	case NodeTypeEllipse:
		checkProp(v, where, "position", &n.Ellipse.Position)
		checkProp(v, where, "size", &n.Ellipse.Size)
	case NodeTypeShapePath:
		checkProp(v, where, "shape", &n.ShapePath.Shape)
	case NodeTypePolystar:
		p := n.Polystar
		checkProp(v, where, "position", &p.Position)
		checkProp(v, where, "points", &p.Points)
		checkProp(v, where, "innerRadius", &p.InnerRadius)
		checkProp(v, where, "outerRadius", &p.OuterRadius)
		checkProp(v, where, "innerRoundness", &p.InnerRoundness)
		checkProp(v, where, "outerRoundness", &p.OuterRoundness)
		checkProp(v, where, "rotation", &p.Rotation)
	case NodeTypeTrim:
		checkProp(v, where, "start", &n.Trim.Start)
		checkProp(v, where, "end", &n.Trim.End)
		checkProp(v, where, "offset", &n.Trim.Offset)
	case NodeTypeRepeater:
		r := n.Repeater
		checkProp(v, where, "copies", &r.Copies)
		checkProp(v, where, "offset", &r.Offset)
		checkProp(v, where, "startOpacity", &r.StartOpacity)
		checkProp(v, where, "endOpacity", &r.EndOpacity)
		if r.Transform != nil {
			v.transform(r.Transform, where+".transform")
		}
	}
}

func (v *validator) group(g *Group, where string) {
	if g.Transform != nil {
		v.transform(g.Transform, where+".transform")
	}
	for _, child := range g.Children {
		v.node(child, where)
	}
}

func (v *validator) transform(t *Transform, where string) {
	checkProp(v, where, "rotation", &t.Rotation)
	checkProp(v, where, "scale", &t.Scale)
	checkProp(v, where, "position", &t.Position)
	checkProp(v, where, "x", &t.X)
	checkProp(v, where, "y", &t.Y)
	checkProp(v, where, "anchor", &t.Anchor)
	checkProp(v, where, "opacity", &t.Opacity)
	checkProp(v, where, "skew", &t.Skew)
	checkProp(v, where, "skewAxis", &t.SkewAxis)
}

func (v *validator) gradient(g *Gradient, where string) {
	checkProp(v, where, "start", &g.Start)
	checkProp(v, where, "end", &g.End)
	checkProp(v, where, "highlightLength", &g.HighlightLength)
	checkProp(v, where, "highlightAngle", &g.HighlightAngle)
	checkProp(v, where, "opacity", &g.Opacity)
	checkProp(v, where, "colors", &g.Colors)
}

func (v *validator) dash(d *Dash, where string) {
	for i := range d.Values {
		checkProp(v, where, "dash["+strconv.Itoa(i)+"]", &d.Values[i])
	}
}
