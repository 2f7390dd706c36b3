package lottie

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config holds runtime options that are usually loaded from a YAML file.
//
//	warmCaches: true
//	debug: false
//	logLevel: info
//	curves:
//	  snappy:
//	    bezier: [0.6, 0, 0.4, 1]
//	  bounce:
//	    preset: outBounce
type Config struct {
	WarmCaches bool                   `yaml:"warmCaches"`
	Debug      bool                   `yaml:"debug"`
	LogLevel   string                 `yaml:"logLevel"`
	Curves     map[string]CurveConfig `yaml:"curves"`
}

// CurveConfig names an easing curve: either one of the presets or the four
// control values of a cubic bezier. Bezier wins when both are set.
type CurveConfig struct {
	Preset string    `yaml:"preset"`
	Bezier []float64 `yaml:"bezier"`
}

// DefaultConfig returns the options used when no file is given.
func DefaultConfig() Config {
	return Config{
		WarmCaches: true,
		LogLevel:   "info",
	}
}

// LoadConfig decodes a YAML config from r. Keys missing from the document
// keep their DefaultConfig values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("lottie: decode config: %w", err)
	}
	for name, c := range cfg.Curves {
		if len(c.Bezier) != 0 && len(c.Bezier) != 4 {
			return Config{}, fmt.Errorf("lottie: curve %q: bezier needs 4 values, got %d", name, len(c.Bezier))
		}
		if len(c.Bezier) == 0 {
			if _, ok := Preset(c.Preset); !ok {
				return Config{}, fmt.Errorf("lottie: curve %q: unknown preset %q", name, c.Preset)
			}
		}
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level. Unknown names mean info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger returns a text logger writing to w at the configured level.
// Pass the result to SetLogger to route lottie's logs there.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}

// Configure applies cfg to the composition: debug mode, cache warming and
// the named curves, which are registered in the interpolator cache.
// It must be called before Resolve.
func (c *Composition) Configure(cfg Config) {
	c.SetDebugMode(cfg.Debug)
	c.SetWarmCaches(cfg.WarmCaches)
	if c.Interpolators == nil {
		c.Interpolators = NewInterpolatorCache()
	}
	for name, curve := range cfg.Curves {
		if len(curve.Bezier) == 4 {
			b := curve.Bezier
			c.Interpolators.Put(name, NewCubicBezier(b[0], b[1], b[2], b[3]))
			continue
		}
		if ip, ok := Preset(curve.Preset); ok {
			c.Interpolators.Put(name, ip)
		}
	}
}
