package lottie

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestGradientStopsMergeRedBlue(t *testing.T) {
	// Color stops red@0, blue@1; one alpha stop 0.5@0.5.
	data := GradientData{
		0, 1, 0, 0,
		1, 0, 0, 1,
		0.5, 0.5,
	}
	got := data.Stops(2)
	want := []GradientStop{
		{Offset: 0, Color: Color{1, 0, 0}, Alpha: 0.5},
		{Offset: 0.5, Color: Color{0.5, 0, 0.5}, Alpha: 0.5},
		{Offset: 1, Color: Color{0, 0, 1}, Alpha: 0.5},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("stops mismatch (-want +got):\n%s", diff)
	}
}

func TestGradientStopsAlphaInterpolated(t *testing.T) {
	data := GradientData{
		0.25, 1, 1, 1,
		0, 0, // alpha 0 at 0
		1, 1, // alpha 1 at 1
	}
	got := data.Stops(1)
	want := []GradientStop{
		{Offset: 0, Color: Color{1, 1, 1}, Alpha: 0},
		{Offset: 0.25, Color: Color{1, 1, 1}, Alpha: 0.25},
		{Offset: 1, Color: Color{1, 1, 1}, Alpha: 1},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("stops mismatch (-want +got):\n%s", diff)
	}
}

func TestGradientStopsCoincidentOffsets(t *testing.T) {
	data := GradientData{
		0, 1, 0, 0,
		1, 0, 1, 0,
		0, 0.2,
		1, 0.8,
	}
	got := data.Stops(2)
	want := []GradientStop{
		{Offset: 0, Color: Color{1, 0, 0}, Alpha: 0.2},
		{Offset: 1, Color: Color{0, 1, 0}, Alpha: 0.8},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("stops mismatch (-want +got):\n%s", diff)
	}
}

func TestGradientStopsNoAlphaOpaque(t *testing.T) {
	data := GradientData{0, 0, 0, 0, 0.5, 1, 1, 1, 1, 0, 0, 0}
	for _, cp := range []int{3, -1, 99} {
		got := data.Stops(cp)
		if len(got) != 3 {
			t.Fatalf("colorPoints %d: %d stops, want 3", cp, len(got))
		}
		for _, s := range got {
			assertNear(t, "alpha", s.Alpha, 1)
		}
	}
}

func TestGradientStopsUnsortedInput(t *testing.T) {
	data := GradientData{
		1, 0, 0, 1,
		0, 1, 0, 0,
	}
	got := data.Stops(2)
	if got[0].Offset != 0 || got[0].Color != (Color{1, 0, 0}) {
		t.Errorf("first stop = %+v, want red at 0", got[0])
	}
}

func TestGradientStopsEmpty(t *testing.T) {
	if got := (GradientData{}).Stops(-1); got != nil {
		t.Errorf("empty data = %v, want nil", got)
	}
}

func TestGradientDataLerp(t *testing.T) {
	a := GradientData{0, 0, 0, 0}
	b := GradientData{1, 1, 1, 1}
	if diff := cmp.Diff(GradientData{0.5, 0.5, 0.5, 0.5}, a.Lerp(b, 0.5), approx); diff != "" {
		t.Errorf("lerp (-want +got):\n%s", diff)
	}
	short := GradientData{1, 2}
	if diff := cmp.Diff(a, a.Lerp(short, 0.5)); diff != "" {
		t.Errorf("length mismatch should return start (-want +got):\n%s", diff)
	}
}

func TestGradientStopsAt(t *testing.T) {
	g := NewGradientFill()
	g.ColorPoints = 2
	g.Colors = Animated(Keyframe[GradientData]{
		StartFrame: 0, EndFrame: 10,
		StartValue: GradientData{0, 0, 0, 0, 1, 0, 0, 0},
		EndValue:   GradientData{0, 1, 1, 1, 1, 1, 1, 1},
	})
	stops := g.StopsAt(5)
	if len(stops) != 2 {
		t.Fatalf("%d stops, want 2", len(stops))
	}
	assertNear(t, "r", stops[0].Color.R, 0.5)
	assertNear(t, "opacity", g.OpacityAt(5), 1)
}

func TestGradientDefaults(t *testing.T) {
	f := NewGradientFill()
	if f.Type != GradientLinear || !f.Enabled || f.ColorPoints != -1 {
		t.Errorf("fill defaults = %+v", f.Gradient)
	}
	s := NewGradientStroke()
	s.Width = Static(3.0)
	s.Dash.Values = []Animatable[float64]{Static(5.0), Static(2.0)}
	assertNear(t, "width", s.WidthAt(0), 3)
	if !s.HasDash() {
		t.Error("HasDash = false")
	}
	buf := make([]float64, 5)
	if n := s.DashInfo(0, buf); n != 2 {
		t.Errorf("DashInfo = %d, want 2", n)
	}
}
