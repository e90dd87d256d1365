package module

import (
	"time"

	"chalie/internal/platform/config"
)

// Options holds configuration settings for the focus module
type Options struct {
	DefaultTTL  time.Duration
	MaxModifier float64
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	ff := cfg.Prefix("CORE_FOCUS_")
	return Options{
		DefaultTTL:  ff.MayDuration("DEFAULT_TTL", 2*time.Hour),
		MaxModifier: ff.MayFloat64("MAX_MODIFIER", 3.0),
	}
}
