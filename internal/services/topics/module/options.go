package module

import "chalie/internal/platform/config"

// Options holds configuration settings for the topics module
type Options struct {
	HardLimit int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	tf := cfg.Prefix("CORE_TOPICS_")
	return Options{
		HardLimit: tf.MayInt("HARD_LIMIT", 500),
	}
}
