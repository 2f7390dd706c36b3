package lottie

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.WarmCaches || cfg.Debug {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	src := `
debug: true
logLevel: debug
curves:
  snappy:
    bezier: [0.6, 0, 0.4, 1]
  bounce:
    preset: outBounce
`
	cfg, err := LoadConfig(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		WarmCaches: true,
		Debug:      true,
		LogLevel:   "debug",
		Curves: map[string]CurveConfig{
			"snappy": {Bezier: []float64{0.6, 0, 0.4, 1}},
			"bounce": {Preset: "outBounce"},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("empty config (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad yaml", "debug: [unclosed"},
		{"short bezier", "curves:\n  x:\n    bezier: [1, 2]\n"},
		{"unknown preset", "curves:\n  x:\n    preset: wobble\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(strings.NewReader(tt.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigLevel(t *testing.T) {
	for name, want := range map[string]string{
		"debug": "DEBUG", "WARN": "WARN", "error": "ERROR", "": "INFO", "chatty": "INFO",
	} {
		if got := (Config{LogLevel: name}).Level().String(); got != want {
			t.Errorf("Level(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestConfigNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := Config{LogLevel: "warn"}.NewLogger(&buf)
	log.Info("hidden")
	log.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("level filtering wrong: %q", buf.String())
	}
}

func TestCompositionConfigure(t *testing.T) {
	cfg := Config{
		Debug:      true,
		WarmCaches: false,
		Curves: map[string]CurveConfig{
			"snappy": {Bezier: []float64{0.6, 0, 0.4, 1}},
			"bounce": {Preset: "outBounce"},
		},
	}
	c := NewComposition(Size{1, 1}, Timeline{0, 10, 30}, layerWith())
	c.Configure(cfg)
	if !c.debug || c.warmCaches {
		t.Errorf("debug=%v warm=%v", c.debug, c.warmCaches)
	}
	ip, ok := c.Interpolators.Get("snappy")
	if !ok {
		t.Fatal("snappy curve not registered")
	}
	if ip.Value(0) != 0 || ip.Value(1) != 1 {
		t.Error("bezier endpoints wrong")
	}
	if _, ok := c.Interpolators.Get("bounce"); !ok {
		t.Error("bounce preset not registered")
	}
}
