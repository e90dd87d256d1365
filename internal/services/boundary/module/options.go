package module

import (
	"time"

	"chalie/internal/platform/config"
)

// Options holds configuration settings for the boundary module
type Options struct {
	FastWindow   int
	SlowWindow   int
	LeakRate     float64
	BoundaryBase float64
	StateTTL     time.Duration
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	bf := cfg.Prefix("CORE_BOUNDARY_")
	return Options{
		FastWindow:   bf.MayInt("FAST_WINDOW", 4),
		SlowWindow:   bf.MayInt("SLOW_WINDOW", 18),
		LeakRate:     bf.MayFloat64("LEAK_RATE", 0.4),
		BoundaryBase: bf.MayFloat64("BOUNDARY_BASE", 2.5),
		StateTTL:     bf.MayDuration("STATE_TTL", 24*time.Hour),
	}
}
