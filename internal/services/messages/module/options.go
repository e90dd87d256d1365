package module

import "chalie/internal/platform/config"

// Options holds configuration settings for the messages module
type Options struct {
	HardLimit int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	mf := cfg.Prefix("CORE_MESSAGES_")
	return Options{
		HardLimit: mf.MayInt("HARD_LIMIT", 1000),
	}
}
