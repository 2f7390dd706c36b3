package lottie

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestPlayerReachesEnd(t *testing.T) {
	c := animatedComp(Timeline{StartFrame: 0, EndFrame: 61, FrameRate: 30})
	p := NewPlayer(c, nil)

	// Two seconds in exact halves to avoid float32 accumulation drift.
	p.Update(1.0)
	if math.Abs(p.Frame()-30) > 0.01 {
		t.Errorf("Frame = %f, want ~30", p.Frame())
	}
	if p.Done {
		t.Fatal("Done before the end")
	}
	p.Update(1.0)
	if !p.Done {
		t.Fatal("expected Done after full duration")
	}
	assertNear(t, "end frame", p.Frame(), 60)

	// Further updates are ignored.
	p.Update(5)
	assertNear(t, "position", p.Position(), 1)
}

func TestPlayerLoops(t *testing.T) {
	c := animatedComp(Timeline{StartFrame: 0, EndFrame: 31, FrameRate: 30})
	p := NewPlayer(c, ease.Linear)
	p.Loop = true

	p.Update(0.5)
	p.Update(0.5)
	if p.Done {
		t.Fatal("looping player should never be done")
	}
	assertNear(t, "wrapped position", p.Position(), 0)

	p.Update(0.5)
	if math.Abs(p.Frame()-15) > 0.01 {
		t.Errorf("Frame = %f, want ~15 on second pass", p.Frame())
	}
}

func TestPlayerEased(t *testing.T) {
	c := animatedComp(Timeline{StartFrame: 0, EndFrame: 101, FrameRate: 100})
	p := NewPlayer(c, ease.InQuad)
	p.Update(0.5)
	if math.Abs(p.Position()-0.25) > 0.01 {
		t.Errorf("Position = %f, want ~0.25", p.Position())
	}
}

func TestPlayerReset(t *testing.T) {
	c := animatedComp(Timeline{StartFrame: 10, EndFrame: 41, FrameRate: 30})
	p := NewPlayer(c, nil)
	p.Update(0.5)
	p.Update(0.5)
	if !p.Done {
		t.Fatal("expected Done")
	}
	p.Reset()
	if p.Done {
		t.Error("Reset should clear Done")
	}
	assertNear(t, "frame after reset", p.Frame(), 10)
}

func TestPlayerStaticComposition(t *testing.T) {
	c := staticComp(Timeline{StartFrame: 4, EndFrame: 64, FrameRate: 30})
	p := NewPlayer(c, nil)
	if !p.Done {
		t.Error("static composition should finish immediately")
	}
	p.Update(1)
	assertNear(t, "frame", p.Frame(), 4)
	p.Reset()
	if !p.Done {
		t.Error("Reset should not restart a static composition")
	}
}
