package lottie

import (
	"fmt"
	"math"
	"sync"

	"github.com/fogleman/ease"
	tween "github.com/tanema/gween/ease"
)

// Interpolator maps raw segment progress p in [0, 1] to eased progress.
type Interpolator interface {
	Value(p float64) float64
}

// InterpolatorFunc adapts an ordinary function to the Interpolator interface.
type InterpolatorFunc func(p float64) float64

// Value calls f(p).
func (f InterpolatorFunc) Value(p float64) float64 { return f(p) }

// Linear is the identity interpolator.
var Linear Interpolator = InterpolatorFunc(func(p float64) float64 { return p })

// TweenFunc adapts a gween easing function (begin 0, change 1, duration 1)
// to an Interpolator.
func TweenFunc(fn tween.TweenFunc) Interpolator {
	return InterpolatorFunc(func(p float64) float64 {
		return float64(fn(float32(p), 0, 1, 1))
	})
}

// presets are the named easing curves available without an explicit bezier.
var presets = map[string]func(float64) float64{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"inQuint":      ease.InQuint,
	"outQuint":     ease.OutQuint,
	"inOutQuint":   ease.InOutQuint,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

// Preset returns the named easing curve, if one exists.
func Preset(name string) (Interpolator, bool) {
	fn, ok := presets[name]
	if !ok {
		return nil, false
	}
	return InterpolatorFunc(fn), true
}

// --- Cubic bezier easing ---

const (
	splineTableSize      = 11
	splineSampleStep     = 1.0 / (splineTableSize - 1)
	newtonIterations     = 4
	newtonMinSlope       = 0.02
	subdivisionPrecision = 1e-7
	subdivisionMaxIter   = 10
)

// CubicBezier is the CSS-style timing curve through (0,0), (x1,y1), (x2,y2)
// and (1,1). Lottie keyframes carry its handles as "o" and "i".
type CubicBezier struct {
	x1, y1, x2, y2 float64
	linear         bool
	samples        [splineTableSize]float64
}

// NewCubicBezier builds the easing curve with control points (x1,y1) and
// (x2,y2). X coordinates are clamped to [0, 1] so the curve stays a function.
func NewCubicBezier(x1, y1, x2, y2 float64) *CubicBezier {
	b := &CubicBezier{
		x1: clamp01(x1), y1: y1,
		x2: clamp01(x2), y2: y2,
	}
	b.linear = b.x1 == b.y1 && b.x2 == b.y2
	if !b.linear {
		for i := range b.samples {
			b.samples[i] = bezierCalc(float64(i)*splineSampleStep, b.x1, b.x2)
		}
	}
	return b
}

// CubicBezierKey is the cache key for a bezier curve with the given handles.
func CubicBezierKey(x1, y1, x2, y2 float64) string {
	return fmt.Sprintf("%g_%g_%g_%g", x1, y1, x2, y2)
}

// Value returns the eased progress for p. Endpoints map exactly to 0 and 1.
func (b *CubicBezier) Value(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if b.linear {
		return p
	}
	return bezierCalc(b.tForX(p), b.y1, b.y2)
}

func (b *CubicBezier) tForX(x float64) float64 {
	intervalStart := 0.0
	sample := 1
	last := splineTableSize - 1
	for ; sample != last && b.samples[sample] <= x; sample++ {
		intervalStart += splineSampleStep
	}
	sample--

	dist := (x - b.samples[sample]) / (b.samples[sample+1] - b.samples[sample])
	guess := intervalStart + dist*splineSampleStep

	slope := bezierSlope(guess, b.x1, b.x2)
	switch {
	case slope >= newtonMinSlope:
		return b.newtonRaphson(x, guess)
	case slope == 0:
		return guess
	default:
		return b.binarySubdivide(x, intervalStart, intervalStart+splineSampleStep)
	}
}

func (b *CubicBezier) newtonRaphson(x, guess float64) float64 {
	for i := 0; i < newtonIterations; i++ {
		slope := bezierSlope(guess, b.x1, b.x2)
		if slope == 0 {
			return guess
		}
		guess -= (bezierCalc(guess, b.x1, b.x2) - x) / slope
	}
	return guess
}

func (b *CubicBezier) binarySubdivide(x, lo, hi float64) float64 {
	var cur, t float64
	for i := 0; i < subdivisionMaxIter; i++ {
		t = lo + (hi-lo)/2
		cur = bezierCalc(t, b.x1, b.x2) - x
		if cur > 0 {
			hi = t
		} else {
			lo = t
		}
		if math.Abs(cur) <= subdivisionPrecision {
			break
		}
	}
	return t
}

// bezierCalc evaluates one axis of the unit cubic at t.
func bezierCalc(t, a1, a2 float64) float64 {
	return ((bezierA(a1, a2)*t+bezierB(a1, a2))*t + bezierC(a1)) * t
}

// bezierSlope is d/dt of bezierCalc.
func bezierSlope(t, a1, a2 float64) float64 {
	return 3*bezierA(a1, a2)*t*t + 2*bezierB(a1, a2)*t + bezierC(a1)
}

func bezierA(a1, a2 float64) float64 { return 1 - 3*a2 + 3*a1 }
func bezierB(a1, a2 float64) float64 { return 3*a2 - 6*a1 }
func bezierC(a1 float64) float64     { return 3 * a1 }

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// --- Cache ---

// InterpolatorCache is the per-composition, name-keyed store of easing
// curves. Keyframes sharing a curve share one instance. It is safe for
// concurrent use.
type InterpolatorCache struct {
	mu     sync.RWMutex
	curves map[string]Interpolator
}

// NewInterpolatorCache creates an empty cache.
func NewInterpolatorCache() *InterpolatorCache {
	return &InterpolatorCache{curves: make(map[string]Interpolator)}
}

// Get returns the curve stored under name.
func (c *InterpolatorCache) Get(name string) (Interpolator, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ip, ok := c.curves[name]
	return ip, ok
}

// Put stores ip under name, replacing any previous entry.
func (c *InterpolatorCache) Put(name string, ip Interpolator) {
	c.mu.Lock()
	if c.curves == nil {
		c.curves = make(map[string]Interpolator)
	}
	c.curves[name] = ip
	c.mu.Unlock()
}

// Len returns the number of cached curves.
func (c *InterpolatorCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.curves)
}

// Bezier returns the cached bezier curve with the given handles, creating
// and storing it on first use.
func (c *InterpolatorCache) Bezier(x1, y1, x2, y2 float64) Interpolator {
	key := CubicBezierKey(x1, y1, x2, y2)
	if ip, ok := c.Get(key); ok {
		return ip
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if ip, ok := c.curves[key]; ok {
		return ip
	}
	if c.curves == nil {
		c.curves = make(map[string]Interpolator)
	}
	ip := NewCubicBezier(x1, y1, x2, y2)
	c.curves[key] = ip
	return ip
}

// Named looks name up in the cache and falls back to the built-in presets.
// A preset found this way is cached under name.
func (c *InterpolatorCache) Named(name string) (Interpolator, bool) {
	if ip, ok := c.Get(name); ok {
		return ip, true
	}
	ip, ok := Preset(name)
	if !ok {
		return nil, false
	}
	c.Put(name, ip)
	return ip, true
}
