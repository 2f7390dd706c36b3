package lottie

// Node is the element of the composition tree. It is a closed tagged
// variant: Type selects which one of the payload pointers is set, and every
// consumer dispatches with a switch on Type.
type Node struct {
	Type NodeType
	Name string

	// Payload (exactly one is non-nil, selected by Type)
	Layer          *Layer
	Group          *Group
	Transform      *Transform
	Fill           *Fill
	Stroke         *Stroke
	GradientFill   *GradientFill
	GradientStroke *GradientStroke
	Rect           *Rect
	Ellipse        *Ellipse
	ShapePath      *ShapePath
	Polystar       *Polystar
	Trim           *Trim
	Repeater       *Repeater

	// Fixed by Composition.Resolve.
	static   bool
	resolved bool
}

// IsStatic reports whether the node and its whole subtree have no
// keyframes. It is false until the owning composition is resolved, and
// never changes afterwards.
func (n *Node) IsStatic() bool {
	return n.static
}

// Children returns the ordered child list of a layer or shape group, and nil
// for every other node. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	switch n.Type {
	case NodeTypeLayer:
		return n.Layer.Children
	case NodeTypeShapeGroup:
		return n.Group.Children
	}
	return nil
}

// container returns the Group of a layer or shape group node.
func (n *Node) container() *Group {
	switch n.Type {
	case NodeTypeLayer:
		return &n.Layer.Group
	case NodeTypeShapeGroup:
		return n.Group
	}
	return nil
}

// AddChild appends child to a layer or shape group.
// Panics if child is nil, n is not a container, or the tree is resolved.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("lottie: cannot add nil child")
	}
	g := n.container()
	if g == nil {
		panic("lottie: " + n.Type.String() + " node cannot have children")
	}
	if n.resolved {
		panic("lottie: cannot add child to a resolved tree")
	}
	g.Children = append(g.Children, child)
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, fn)
	}
}

// --- Constructors ---

// NewShapeGroup creates a shape group. A nil transform is replaced with the
// identity transform.
func NewShapeGroup(name string, tr *Transform, children ...*Node) *Node {
	if tr == nil {
		tr = NewTransform()
	}
	g := &Group{Transform: tr}
	n := &Node{Name: name, Type: NodeTypeShapeGroup, Group: g}
	for _, child := range children {
		n.AddChild(child)
	}
	return n
}

// NewLayerNode wraps a layer. A nil layer transform is replaced with the
// identity transform.
func NewLayerNode(name string, l *Layer) *Node {
	if l.Transform == nil {
		l.Transform = NewTransform()
	}
	return &Node{Name: name, Type: NodeTypeLayer, Layer: l}
}

// NewTransformNode wraps a free-standing transform.
func NewTransformNode(name string, t *Transform) *Node {
	return &Node{Name: name, Type: NodeTypeTransform, Transform: t}
}

// NewFillNode wraps a fill.
func NewFillNode(name string, f *Fill) *Node {
	return &Node{Name: name, Type: NodeTypeFill, Fill: f}
}

// NewStrokeNode wraps a stroke.
func NewStrokeNode(name string, s *Stroke) *Node {
	return &Node{Name: name, Type: NodeTypeStroke, Stroke: s}
}

// NewGradientFillNode wraps a gradient fill.
func NewGradientFillNode(name string, g *GradientFill) *Node {
	return &Node{Name: name, Type: NodeTypeGradientFill, GradientFill: g}
}

// NewGradientStrokeNode wraps a gradient stroke.
func NewGradientStrokeNode(name string, g *GradientStroke) *Node {
	return &Node{Name: name, Type: NodeTypeGradientStroke, GradientStroke: g}
}

// NewRectNode wraps a rectangle.
func NewRectNode(name string, r *Rect) *Node {
	return &Node{Name: name, Type: NodeTypeRect, Rect: r}
}

// NewEllipseNode wraps an ellipse.
func NewEllipseNode(name string, e *Ellipse) *Node {
	return &Node{Name: name, Type: NodeTypeEllipse, Ellipse: e}
}

// NewShapePathNode wraps a free-form path.
func NewShapePathNode(name string, s *ShapePath) *Node {
	return &Node{Name: name, Type: NodeTypeShapePath, ShapePath: s}
}

// NewPolystarNode wraps a star or polygon.
func NewPolystarNode(name string, p *Polystar) *Node {
	return &Node{Name: name, Type: NodeTypePolystar, Polystar: p}
}

// NewTrimNode wraps a trim operator.
func NewTrimNode(name string, t *Trim) *Node {
	return &Node{Name: name, Type: NodeTypeTrim, Trim: t}
}

// NewRepeaterNode wraps a repeater operator.
func NewRepeaterNode(name string, r *Repeater) *Node {
	return &Node{Name: name, Type: NodeTypeRepeater, Repeater: r}
}
