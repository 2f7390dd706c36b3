package lottie

import (
	"slices"
	"sort"
)

// Value is the closed set of types a property can be keyframed over.
type Value interface {
	float64 | Vec2 | Color | ShapeData | GradientData
}

// Keyframe is one time segment of an animated property: the value moves from
// StartValue at StartFrame to EndValue at EndFrame, eased by Interpolator.
//
// InTangent, OutTangent and Spatial only apply to Vec2 properties. When
// Spatial is set and either tangent is non-zero the value travels along the
// cubic bezier (start, start+OutTangent, end+InTangent, end) instead of the
// straight line between the endpoints.
type Keyframe[T Value] struct {
	StartFrame   float64
	EndFrame     float64
	Interpolator Interpolator
	StartValue   T
	EndValue     T

	InTangent  Vec2
	OutTangent Vec2
	Spatial    bool
}

// Progress returns the raw progress of frame through the segment. A
// zero-length segment reports 1: it is an instantaneous jump to EndValue.
func (k *Keyframe[T]) Progress(frame float64) float64 {
	if k.EndFrame == k.StartFrame {
		return 1
	}
	return (frame - k.StartFrame) / (k.EndFrame - k.StartFrame)
}

// Value evaluates the segment at frame.
func (k *Keyframe[T]) Value(frame float64) T {
	p := k.Progress(frame)
	if k.Interpolator != nil {
		p = k.Interpolator.Value(p)
	}
	return k.At(p)
}

// At returns the segment value at eased progress t.
func (k *Keyframe[T]) At(t float64) T {
	if k.Spatial && (!k.InTangent.IsZero() || !k.OutTangent.IsZero()) {
		if s, ok := any(k.StartValue).(Vec2); ok {
			e := any(k.EndValue).(Vec2)
			return any(cubicPoint(s, s.Add(k.OutTangent), e.Add(k.InTangent), e, t)).(T)
		}
	}
	return lerp(k.StartValue, k.EndValue, t)
}

// lerp interpolates linearly between a and b, returning exactly a at t=0
// and exactly b at t=1. Dispatch is on the closed Value set.
func lerp[T Value](a, b T, t float64) T {
	switch av := any(a).(type) {
	case float64:
		bv := any(b).(float64)
		return any(av*(1-t) + bv*t).(T)
	case Vec2:
		bv := any(b).(Vec2)
		return any(av.Mul(1 - t).Add(bv.Mul(t))).(T)
	case Color:
		bv := any(b).(Color)
		return any(av.Mul(1 - t).Add(bv.Mul(t))).(T)
	case ShapeData:
		return any(av.Lerp(any(b).(ShapeData), t)).(T)
	case GradientData:
		return any(av.Lerp(any(b).(GradientData), t)).(T)
	}
	return a
}

// cubicPoint samples the cubic bezier p0..p3 at t.
func cubicPoint(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Vec2{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Animatable is a property that is either a constant or a frame-ordered
// sequence of keyframe segments. The zero value is the constant zero of T.
type Animatable[T Value] struct {
	// Index is the property index ("ix") kept for external tooling. It does
	// not take part in evaluation.
	Index int

	value     T
	keyframes []Keyframe[T]
}

// Static returns a constant property.
func Static[T Value](v T) Animatable[T] {
	return Animatable[T]{value: v}
}

// Animated returns a keyframed property. The segments are copied and sorted
// by start frame, zero-length segments first among equal starts. With no segments the result is the static zero value.
func Animated[T Value](frames ...Keyframe[T]) Animatable[T] {
	if len(frames) == 0 {
		return Animatable[T]{}
	}
	kf := slices.Clone(frames)
	slices.SortStableFunc(kf, func(a, b Keyframe[T]) int {
		switch {
		case a.StartFrame < b.StartFrame:
			return -1
		case a.StartFrame > b.StartFrame:
			return 1
		}
		// A jump sorts ahead of a segment starting on the same frame.
		za, zb := a.EndFrame == a.StartFrame, b.EndFrame == b.StartFrame
		switch {
		case za && !zb:
			return -1
		case zb && !za:
			return 1
		}
		return 0
	})
	return Animatable[T]{keyframes: kf}
}

// IsStatic reports whether the property has no keyframes.
func (a *Animatable[T]) IsStatic() bool {
	return len(a.keyframes) == 0
}

// Keyframes returns the segments. The returned slice MUST NOT be mutated.
func (a *Animatable[T]) Keyframes() []Keyframe[T] {
	return a.keyframes
}

// Value evaluates the property at frame.
//
// Frames at or past the last segment's end return its end value and frames
// before the first segment's start return its start value. A frame that
// falls in a gap between segments returns the end value of the last segment
// starting before it. A frame exactly on a zero-length segment returns that
// segment's end value, even when another segment starts on the same frame.
func (a *Animatable[T]) Value(frame float64) T {
	n := len(a.keyframes)
	if n == 0 {
		return a.value
	}
	first, last := &a.keyframes[0], &a.keyframes[n-1]
	if frame >= last.EndFrame {
		return last.EndValue
	}
	if frame < first.StartFrame || (frame == first.StartFrame && first.EndFrame > first.StartFrame) {
		return first.StartValue
	}

	i := sort.Search(n, func(i int) bool { return a.keyframes[i].StartFrame > frame }) - 1
	for j := i; j >= 0 && a.keyframes[j].StartFrame == frame; j-- {
		if a.keyframes[j].EndFrame == frame {
			return a.keyframes[j].EndValue
		}
	}
	k := &a.keyframes[i]
	if frame >= k.EndFrame {
		return k.EndValue
	}
	return k.Value(frame)
}
