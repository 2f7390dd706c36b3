package lottie

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Player advances a composition timeline in real time. Call Update(dt)
// once per tick and read Frame to know what to draw.
//
// There is no global clock; users call Update themselves.
type Player struct {
	comp  *Composition
	tween *gween.Tween
	pos   float64

	// Loop restarts playback from the first frame once the end is reached.
	Loop bool
	// Done is set when a non-looping player reaches the end.
	Done bool
}

// NewPlayer creates a player that runs the composition once from start to
// end at its own frame rate. fn eases playback position; nil plays linearly.
// A static composition is finished immediately.
func NewPlayer(comp *Composition, fn ease.TweenFunc) *Player {
	if fn == nil {
		fn = ease.Linear
	}
	p := &Player{comp: comp}
	if comp.IsStatic() {
		p.Done = true
		return p
	}
	d := comp.Duration()
	if d <= 0 {
		p.Done = true
		return p
	}
	p.tween = gween.New(0, 1, float32(d), fn)
	return p
}

// Update advances playback by dt seconds and returns the playback position
// in [0, 1].
func (p *Player) Update(dt float32) float64 {
	if p.Done || p.tween == nil {
		return p.pos
	}
	val, finished := p.tween.Update(dt)
	p.pos = float64(val)
	if finished {
		if p.Loop {
			p.tween.Reset()
			p.pos = 0
		} else {
			p.pos = 1
			p.Done = true
		}
	}
	return p.pos
}

// Position returns the current playback position in [0, 1].
func (p *Player) Position() float64 { return p.pos }

// Frame returns the composition frame at the current position.
func (p *Player) Frame() float64 { return p.comp.FrameAtPos(p.pos) }

// Reset rewinds to the first frame.
func (p *Player) Reset() {
	p.pos = 0
	if p.tween != nil {
		p.tween.Reset()
		p.Done = false
	}
}
