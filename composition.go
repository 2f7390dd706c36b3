package lottie

import (
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"
)

// AssetType identifies what an asset holds.
type AssetType uint8

const (
	AssetPrecomp AssetType = iota // a list of layers
	AssetImage                    // an image file reference
	AssetChars                    // glyph outlines
)

// Asset is a reusable resource referenced by ID. Precomp assets own their
// layer list; image assets only record where the pixels live, decoding is
// left to an image loader.
type Asset struct {
	Type   AssetType
	RefID  string
	Layers []*Node
	Width  int
	Height int
	Path   string
}

// Timeline is the frame range and rate of a composition.
type Timeline struct {
	StartFrame float64
	EndFrame   float64
	FrameRate  float64
}

// Composition is the root of a parsed animation: it owns the root layer,
// the timeline, the asset map and the interpolator cache.
//
// A composition is assembled once, then Resolve fixes every derived flag.
// After Resolve the tree is read-only and all evaluation methods may be
// called from multiple goroutines.
type Composition struct {
	Version       string
	BlendMode     BlendMode
	Root          *Node
	Interpolators *InterpolatorCache
	Assets        map[string]*Asset

	size     Size
	timeline Timeline

	debug      bool
	warmCaches bool

	once   sync.Once
	static bool
	layers layerIndex
}

// NewComposition creates a composition around root, which must be a layer
// node (or nil for an empty composition).
func NewComposition(size Size, tl Timeline, root *Node) *Composition {
	if root != nil && root.Type != NodeTypeLayer {
		panic("lottie: composition root must be a layer node")
	}
	return &Composition{
		Root:          root,
		Interpolators: NewInterpolatorCache(),
		Assets:        make(map[string]*Asset),
		size:          size,
		timeline:      tl,
		warmCaches:    true,
	}
}

// Type returns NodeTypeComposition.
func (c *Composition) Type() NodeType { return NodeTypeComposition }

// AddAsset registers an asset under its RefID.
// Panics if the composition is already resolved.
func (c *Composition) AddAsset(a *Asset) {
	if c.isResolved() {
		panic("lottie: cannot add asset to a resolved composition")
	}
	if c.Assets == nil {
		c.Assets = make(map[string]*Asset)
	}
	c.Assets[a.RefID] = a
}

// SetDebugMode enables or disables debug mode. When enabled, Resolve
// validates the tree and logs every problem found at warn level, along with
// timing of the resolve pass.
func (c *Composition) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// SetWarmCaches controls whether Resolve populates the static transform and
// static path caches up front. It is on by default so the resolved tree can
// be handed to concurrent readers without any first-use writes.
func (c *Composition) SetWarmCaches(enabled bool) {
	c.warmCaches = enabled
}

// Resolve performs the one-time bottom-up pass over the assembled tree. It
// fixes every static flag and layer capability flag, builds the layer ID
// indices and, if enabled, warms the lazy caches. Calls after the first are
// no-ops; the flags describe the tree's topology and are never recomputed.
func (c *Composition) Resolve() {
	c.once.Do(c.resolve)
}

func (c *Composition) resolve() {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	r := &resolver{
		assets:       c.Assets,
		warm:         c.warmCaches,
		assetStatic:  make(map[string]bool),
		assetPending: make(map[string]bool),
	}
	c.static = true
	if c.Root != nil {
		var caps layerCaps
		c.static = r.node(c.Root, &caps)
		c.layers = indexLayers(c.Root.Layer.Children)
	}
	for id, a := range c.Assets {
		if a.Type == AssetPrecomp {
			r.asset(id)
		}
	}

	log := Logger()
	log.Debug("lottie: composition resolved",
		slog.Int("nodes", r.nodes),
		slog.Int("layers", r.layers),
		slog.Int("assets", len(c.Assets)),
		slog.Bool("static", c.static))

	if c.debug {
		log.Debug("lottie: resolve timing", slog.Duration("elapsed", time.Since(t0)))
		for _, err := range c.problems() {
			log.Warn("lottie: malformed animation data", slog.String("error", err.Error()))
		}
	}
}

func (c *Composition) isResolved() bool {
	return c.Root != nil && c.Root.resolved
}

// LayerByID returns the top-level layer with the given ID. Layers inside
// precomp assets are found through their own siblings (see Layer.Parent).
func (c *Composition) LayerByID(id int) (*Layer, bool) {
	l, ok := c.layers[id]
	return l, ok
}

// --- Timeline ---

// IsStatic reports whether nothing in the composition is animated. It is
// false until the composition is resolved.
func (c *Composition) IsStatic() bool { return c.static }

// Size returns the composition size.
func (c *Composition) Size() Size { return c.size }

// StartFrame returns the first frame of the timeline.
func (c *Composition) StartFrame() float64 { return c.timeline.StartFrame }

// EndFrame returns the end frame of the timeline.
func (c *Composition) EndFrame() float64 { return c.timeline.EndFrame }

// FrameRate returns the timeline rate in frames per second.
func (c *Composition) FrameRate() float64 { return c.timeline.FrameRate }

// FrameDuration returns the number of frame steps in the timeline:
// EndFrame - StartFrame - 1.
func (c *Composition) FrameDuration() float64 {
	return c.timeline.EndFrame - c.timeline.StartFrame - 1
}

// Duration returns the play time in seconds. A static composition reports
// its start frame.
func (c *Composition) Duration() float64 {
	if c.IsStatic() {
		return c.StartFrame()
	}
	return c.FrameDuration() / c.FrameRate()
}

// FrameAtPos maps a playback position in [0, 1] to a frame. pos is clamped;
// a static composition always answers StartFrame.
func (c *Composition) FrameAtPos(pos float64) float64 {
	pos = math.Max(0, math.Min(1, pos))
	if c.IsStatic() {
		return c.StartFrame()
	}
	return c.StartFrame() + pos*c.FrameDuration()
}

// Validate reports every malformed property and structural problem in the
// tree. Evaluation never depends on it: each problem has a defined
// fallback. Validate may be called before or after Resolve.
func (c *Composition) Validate() error {
	return errors.Join(c.problems()...)
}
