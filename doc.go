// Package lottie is the animation model and time-evaluation engine for
// Lottie (Bodymovin) vector animations.
//
// A parser builds a tree of typed nodes, hands it to a [Composition] and
// calls [Composition.Resolve] once. From then on the tree is read-only and a
// rasterizer asks it for values at any frame: matrices, opacities, colors,
// outlines, dash patterns and gradient stops. This package never parses
// JSON and never draws.
//
// # Quick start
//
//	root := lottie.NewLayerNode("root", lottie.NewLayer(0))
//	comp := lottie.NewComposition(lottie.Size{Width: 512, Height: 512},
//		lottie.Timeline{StartFrame: 0, EndFrame: 61, FrameRate: 30}, root)
//	// ... add layers and shapes ...
//	comp.Resolve()
//
//	frame := comp.FrameAtPos(0.5)
//	m := layer.Transform.Matrix(frame)
//
// # Properties
//
// Every animatable value is an [Animatable], either constant ([Static]) or
// a list of [Keyframe] segments ([Animated]). Evaluation never fails: frames
// before the first segment or after the last are clamped, a zero-length
// segment is an instant jump, and shapes that cannot be morphed evaluate to
// an empty outline. [Composition.Validate] reports such data without
// changing how it evaluates.
//
// Easing curves come from the composition's [InterpolatorCache], which
// shares one [CubicBezier] per distinct handle pair and also knows the
// named presets of [Preset].
//
// # Node tree
//
// A [Node] is a closed tagged variant: [Node.Type] selects which payload
// pointer is set. Create nodes with the typed constructors: [NewLayerNode],
// [NewShapeGroup], [NewFillNode], [NewShapePathNode] and others.
//
// Resolve computes, bottom-up and once, whether every node is static. Static
// transforms compute their matrix once and static paths are built once;
// both caches are populated during Resolve unless disabled, so a resolved
// composition can be evaluated from many goroutines without locking.
//
// # Playback
//
// [Player] advances a composition in real time from a per-tick Update(dt)
// and reports the frame to draw. The ebiten helpers ([Matrix.GeoM],
// [Color.ColorScale], [BlendMode.EbitenBlend], [Path.AppendVectorPath])
// convert evaluated values for an Ebitengine renderer; see examples/basic.
//
// # Logging and configuration
//
// Nothing is logged unless [SetLogger] installs a logger. [LoadConfig] reads
// YAML options (debug mode, cache warming, named curves) which
// [Composition.Configure] applies.
package lottie
