package pythagoras

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable constants of the fractal. The zero-config
// defaults reproduce the classic demo exactly; a TOML file can override
// any subset of fields.
type Config struct {
	SurfaceWidth   int      `toml:"surface_width"`
	SurfaceHeight  int      `toml:"surface_height"`
	BaseWidth      float64  `toml:"base_width"`
	MaxDepth       int      `toml:"max_depth"`
	GrowIntervalMS int      `toml:"grow_interval_ms"`
	CacheCapacity  int      `toml:"cache_capacity"`
	RampStops      []string `toml:"ramp_stops"`
	RampFallback   string   `toml:"ramp_fallback"`
}

// DefaultConfig returns the built-in constants.
func DefaultConfig() Config {
	return Config{
		SurfaceWidth:   DefaultSurfaceWidth,
		SurfaceHeight:  DefaultSurfaceHeight,
		BaseWidth:      DefaultBaseWidth,
		MaxDepth:       DefaultMaxDepth,
		GrowIntervalMS: int(DefaultGrowInterval / time.Millisecond),
		CacheCapacity:  DefaultCacheCapacity,
		RampStops:      DefaultRampStops,
		RampFallback:   DefaultRampFallback,
	}
}

// LoadConfig reads a TOML file over the defaults, so a partial file only
// overrides the fields it names.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// GrowInterval returns the growth interval as a duration.
func (c Config) GrowInterval() time.Duration {
	return time.Duration(c.GrowIntervalMS) * time.Millisecond
}

// Validate checks the configuration for values the engine cannot work with.
func (c Config) Validate() error {
	if c.SurfaceWidth <= 0 || c.SurfaceHeight <= 0 {
		return fmt.Errorf("config: surface %dx%d must be positive", c.SurfaceWidth, c.SurfaceHeight)
	}
	if c.BaseWidth < 1 {
		return fmt.Errorf("config: base width %v must be at least 1", c.BaseWidth)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: max depth %d must be non-negative", c.MaxDepth)
	}
	if c.GrowIntervalMS <= 0 {
		return fmt.Errorf("config: grow interval %dms must be positive", c.GrowIntervalMS)
	}
	if len(c.RampStops) < 2 {
		return fmt.Errorf("config: need at least 2 ramp stops, got %d", len(c.RampStops))
	}
	return nil
}

// Ramp builds the color ramp described by the configuration.
func (c Config) Ramp() (*Ramp, error) {
	return NewRamp(c.RampStops, DefaultRampSize, c.RampFallback)
}
