package lottie

// NoParent is the ParentID of a layer that is not parented.
const NoParent = -1

// SolidLayer is the fill of a solid layer.
type SolidLayer struct {
	Width, Height int
	Color         Color
}

// Layer is a group with timing, parenting, track matte and masks. Parenting
// is by ID among sibling layers, never by tree position.
type Layer struct {
	Group

	LayerType    LayerType
	MatteType    MatteType
	BlendMode    BlendMode
	ID           int
	ParentID     int
	InFrame      float64
	OutFrame     float64
	StartFrame   float64
	TimeStretch  float64
	PrecompRefID string
	TimeRemap    Animatable[float64]
	Solid        SolidLayer
	Bounds       Box
	Masks        []*Mask

	// Fixed by Composition.Resolve.
	static          bool
	resolved        bool
	hasPathOperator bool
	hasMask         bool
	hasRepeater     bool
	hasGradient     bool
	siblings        layerIndex
}

// NewLayer creates an unparented shape layer with an identity transform.
func NewLayer(id int) *Layer {
	return &Layer{
		Group:       Group{Transform: NewTransform()},
		LayerType:   LayerShape,
		ID:          id,
		ParentID:    NoParent,
		TimeStretch: 1,
		Solid:       SolidLayer{Color: ColorWhite},
	}
}

// IsStatic reports whether the layer and everything it draws have no
// keyframes. It is false until the owning composition is resolved.
func (l *Layer) IsStatic() bool { return l.static }

// HasPathOperator reports whether the layer's shapes contain a trim.
func (l *Layer) HasPathOperator() bool { return l.hasPathOperator }

// HasMask reports whether the layer has masks.
func (l *Layer) HasMask() bool { return l.hasMask }

// HasRepeater reports whether the layer's shapes contain a repeater.
func (l *Layer) HasRepeater() bool { return l.hasRepeater }

// HasGradient reports whether the layer's shapes contain a gradient fill or
// stroke.
func (l *Layer) HasGradient() bool { return l.hasGradient }

// HasParent reports whether the layer is parented to a sibling.
func (l *Layer) HasParent() bool { return l.ParentID != NoParent }

// Parent returns the sibling layer named by ParentID. It returns nil for an
// unparented layer, an unknown ID, or before the composition is resolved.
func (l *Layer) Parent() *Layer {
	if !l.HasParent() || l.siblings == nil {
		return nil
	}
	return l.siblings[l.ParentID]
}

// Visible reports whether frame lies in the layer's [InFrame, OutFrame) range.
func (l *Layer) Visible(frame float64) bool {
	return frame >= l.InFrame && frame < l.OutFrame
}

// LocalFrame maps a frame of the enclosing timeline to the layer's own
// timeline. An animated time remap (in seconds) takes precedence over the
// start offset and time stretch.
func (l *Layer) LocalFrame(frame, frameRate float64) float64 {
	if !l.TimeRemap.IsStatic() {
		return l.TimeRemap.Value(frame) * frameRate
	}
	stretch := l.TimeStretch
	if stretch == 0 {
		stretch = 1
	}
	return (frame - l.StartFrame) / stretch
}

// WorldMatrix returns the layer's transform at frame composed with the
// transforms of its parent chain. A parent cycle stops the chain once every
// sibling has been visited.
func (l *Layer) WorldMatrix(frame float64) Matrix {
	m := l.localMatrix(frame)
	for p, hops := l.Parent(), 0; p != nil && hops < len(l.siblings); p, hops = p.Parent(), hops+1 {
		m = p.localMatrix(frame).Multiply(m)
	}
	return m
}

func (l *Layer) localMatrix(frame float64) Matrix {
	if l.Transform == nil {
		return IdentityMatrix
	}
	return l.Transform.Matrix(frame)
}

// BoundsAt returns Bounds mapped to composition space at frame.
func (l *Layer) BoundsAt(frame float64) Box {
	return l.Bounds.Transform(l.WorldMatrix(frame))
}

// HitTest reports whether the composition-space point p falls inside the
// layer's Bounds at frame. A layer scaled to zero is never hit.
func (l *Layer) HitTest(frame float64, p Vec2) bool {
	if l.Bounds.Empty() {
		return false
	}
	inv, ok := l.WorldMatrix(frame).Invert()
	if !ok {
		return false
	}
	return l.Bounds.ContainsPoint(inv.Apply(p))
}

// layerIndex maps layer IDs to the layers of one sibling list.
type layerIndex map[int]*Layer

// indexLayers builds the ID index of a sibling list and points every layer
// in it at the index.
func indexLayers(nodes []*Node) layerIndex {
	var idx layerIndex
	for _, n := range nodes {
		if n.Type != NodeTypeLayer {
			continue
		}
		if idx == nil {
			idx = make(layerIndex)
		}
		if _, dup := idx[n.Layer.ID]; !dup {
			idx[n.Layer.ID] = n.Layer
		}
	}
	for _, n := range nodes {
		if n.Type == NodeTypeLayer {
			n.Layer.siblings = idx
		}
	}
	return idx
}
