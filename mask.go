package lottie

// Mask is a layer mask: an animatable outline combined with the layer
// content by Mode. A mask is NOT part of the node tree; its outline is in
// the coordinate space of the masked layer.
type Mask struct {
	Shape    Animatable[ShapeData]
	Opacity  Animatable[float64]
	Inverted bool
	Mode     MaskMode

	static bool
}

// NewMask creates an opaque additive mask with an empty outline.
func NewMask() *Mask {
	return &Mask{
		Opacity: Static(100.0),
		Mode:    MaskAdd,
	}
}

// OpacityAt returns the mask opacity at frame as a fraction.
func (m *Mask) OpacityAt(frame float64) float64 { return m.Opacity.Value(frame) / 100 }

// IsStatic reports whether the mask was found to have no keyframes. It is
// false until the owning composition is resolved.
func (m *Mask) IsStatic() bool { return m.static }

// Path writes the mask outline at frame into p.
func (m *Mask) Path(frame float64, p *Path) {
	m.Shape.Value(frame).ToPath(p)
}

func (m *Mask) hasKeyframes() bool {
	return !m.Shape.IsStatic() || !m.Opacity.IsStatic()
}

// AddMask appends a mask to the layer.
// Panics if m is nil or the layer belongs to a resolved tree.
func (l *Layer) AddMask(m *Mask) {
	if m == nil {
		panic("lottie: cannot add nil mask")
	}
	if l.resolved {
		panic("lottie: cannot add mask to a resolved tree")
	}
	l.Masks = append(l.Masks, m)
}

// ClearMasks removes every mask from the layer.
// Panics if the layer belongs to a resolved tree.
func (l *Layer) ClearMasks() {
	if l.resolved {
		panic("lottie: cannot clear masks of a resolved tree")
	}
	l.Masks = nil
}
