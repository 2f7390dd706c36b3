package lottie

// maxDashValues is the largest number of dash entries a stroke carries:
// dash, gap, dash, gap and offset.
const maxDashValues = 5

// Fill paints the interior of its sibling outlines with a solid color.
type Fill struct {
	Color    Animatable[Color]
	Opacity  Animatable[float64]
	FillRule FillRule
	Enabled  bool
}

// NewFill creates an enabled, opaque white fill.
func NewFill() *Fill {
	return &Fill{
		Color:   Static(ColorWhite),
		Opacity: Static(100.0),
		Enabled: true,
	}
}

// OpacityAt returns the fill opacity at frame as a fraction.
func (f *Fill) OpacityAt(frame float64) float64 { return f.Opacity.Value(frame) / 100 }

func (f *Fill) hasKeyframes() bool {
	return !f.Color.IsStatic() || !f.Opacity.IsStatic()
}

// Dash is an optional stroke dash pattern of up to five animatable entries.
// Depending on the count they read as alternating dash and gap lengths,
// with an odd trailing entry being the pattern offset.
type Dash struct {
	Values []Animatable[float64]
}

// Len returns the number of usable entries.
func (d *Dash) Len() int {
	return min(len(d.Values), maxDashValues)
}

// Info evaluates every entry at frame into buf and returns how many were
// written. Entries beyond len(buf) are dropped.
func (d *Dash) Info(frame float64, buf []float64) int {
	n := min(d.Len(), len(buf))
	for i := 0; i < n; i++ {
		buf[i] = d.Values[i].Value(frame)
	}
	return n
}

// Split separates evaluated dash values into the dash/gap pattern and the
// offset. An odd count means the last value is the offset.
func (d *Dash) Split(values []float64) (pattern []float64, offset float64) {
	if len(values)%2 == 1 {
		return values[:len(values)-1], values[len(values)-1]
	}
	return values, 0
}

func (d *Dash) hasKeyframes() bool {
	for i := range d.Values {
		if !d.Values[i].IsStatic() {
			return true
		}
	}
	return false
}

// Stroke paints the outline of its sibling shapes with a solid color.
type Stroke struct {
	Color      Animatable[Color]
	Opacity    Animatable[float64]
	Width      Animatable[float64]
	Cap        CapStyle
	Join       JoinStyle
	MiterLimit float64
	Dash       Dash
	Enabled    bool
}

// NewStroke creates an enabled, opaque white stroke of zero width.
func NewStroke() *Stroke {
	return &Stroke{
		Color:   Static(ColorWhite),
		Opacity: Static(100.0),
		Enabled: true,
	}
}

// OpacityAt returns the stroke opacity at frame as a fraction.
func (s *Stroke) OpacityAt(frame float64) float64 { return s.Opacity.Value(frame) / 100 }

// WidthAt returns the stroke width at frame.
func (s *Stroke) WidthAt(frame float64) float64 { return s.Width.Value(frame) }

// HasDash reports whether the stroke is dashed.
func (s *Stroke) HasDash() bool { return s.Dash.Len() > 0 }

// DashInfo evaluates the dash entries at frame into buf and returns how many
// were written.
func (s *Stroke) DashInfo(frame float64, buf []float64) int { return s.Dash.Info(frame, buf) }

func (s *Stroke) hasKeyframes() bool {
	return !s.Color.IsStatic() || !s.Opacity.IsStatic() || !s.Width.IsStatic() ||
		s.Dash.hasKeyframes()
}
