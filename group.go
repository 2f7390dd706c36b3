package lottie

// Group is an ordered list of child nodes drawn under one transform.
type Group struct {
	Children  []*Node
	Transform *Transform
}

// layerCaps collects the capability flags of the innermost enclosing layer.
type layerCaps struct {
	pathOperator bool
	repeater     bool
	gradient     bool
}

// resolver performs the one-time bottom-up pass over an assembled tree. It
// fixes every static flag, the layer capability flags and the layer ID
// indices, and optionally warms the two lazy caches.
type resolver struct {
	assets map[string]*Asset
	warm   bool

	// Static result per precomp asset; assetPending guards reference cycles.
	assetStatic  map[string]bool
	assetPending map[string]bool

	nodes, layers int
}

// node resolves n and its subtree and returns whether it is static.
func (r *resolver) node(n *Node, caps *layerCaps) bool {
	r.nodes++
	var static bool
	switch n.Type {
	case NodeTypeLayer:
		static = r.layer(n.Layer)
	case NodeTypeShapeGroup:
		static = r.group(n.Group, caps)
	case NodeTypeTransform:
		static = r.transform(n.Transform)
	case NodeTypeFill:
		static = !n.Fill.hasKeyframes()
	case NodeTypeStroke:
		static = !n.Stroke.hasKeyframes()
	case NodeTypeGradientFill:
		caps.gradient = true
		static = !n.GradientFill.hasKeyframes()
	case NodeTypeGradientStroke:
		caps.gradient = true
		static = !n.GradientStroke.hasKeyframes()
	case NodeTypeRect:
		static = !n.Rect.hasKeyframes()
	case NodeTypeEllipse:
		static = !n.Ellipse.hasKeyframes()
	case NodeTypeShapePath:
		sp := n.ShapePath
		sp.static = sp.Shape.IsStatic()
		if r.warm {
			sp.warm()
		}
		static = sp.static
	case NodeTypePolystar:
		static = !n.Polystar.hasKeyframes()
	case NodeTypeTrim:
		caps.pathOperator = true
		static = !n.Trim.hasKeyframes()
	case NodeTypeRepeater:
		caps.repeater = true
		static = !n.Repeater.hasKeyframes()
		if n.Repeater.Transform != nil && !r.transform(n.Repeater.Transform) {
			static = false
		}
	}
	n.static = static
	n.resolved = true
	return static
}

// group resolves a group's transform and children. Every child is visited;
// the result does not short-circuit.
func (r *resolver) group(g *Group, caps *layerCaps) bool {
	static := true
	if g.Transform != nil && !r.transform(g.Transform) {
		static = false
	}
	for _, child := range g.Children {
		if !r.node(child, caps) {
			static = false
		}
	}
	return static
}

func (r *resolver) transform(t *Transform) bool {
	t.static = !t.hasKeyframes()
	if r.warm {
		t.warm()
	}
	return t.static
}

// layer resolves a layer. Capability flags are gathered from the layer's
// own shapes only; nested layers keep theirs.
func (r *resolver) layer(l *Layer) bool {
	r.layers++
	var caps layerCaps
	static := r.group(&l.Group, &caps)
	indexLayers(l.Children)

	for _, m := range l.Masks {
		m.static = !m.hasKeyframes()
		if !m.static {
			static = false
		}
	}
	if !l.TimeRemap.IsStatic() {
		static = false
	}
	if l.LayerType == LayerPrecomp && l.PrecompRefID != "" && !r.asset(l.PrecompRefID) {
		static = false
	}

	l.hasPathOperator = caps.pathOperator
	l.hasRepeater = caps.repeater
	l.hasGradient = caps.gradient
	l.hasMask = len(l.Masks) > 0
	l.static = static
	l.resolved = true
	return static
}

// asset resolves the layers of a precomp asset once and returns whether all
// of them are static. Missing assets count as static; a reference cycle
// counts as animated.
func (r *resolver) asset(refID string) bool {
	if static, ok := r.assetStatic[refID]; ok {
		return static
	}
	a, ok := r.assets[refID]
	if !ok {
		return true
	}
	if r.assetPending[refID] {
		return false
	}
	r.assetPending[refID] = true

	static := true
	var caps layerCaps
	for _, n := range a.Layers {
		if !r.node(n, &caps) {
			static = false
		}
	}
	indexLayers(a.Layers)

	delete(r.assetPending, refID)
	r.assetStatic[refID] = static
	return static
}
